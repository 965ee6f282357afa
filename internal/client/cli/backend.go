package cli

import (
	"context"

	"github.com/dmitrijs2005/healthgate/internal/auth"
	"github.com/dmitrijs2005/healthgate/internal/core"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"github.com/dmitrijs2005/healthgate/internal/prediction"

	gs "github.com/dmitrijs2005/healthgate/internal/server/grpc"
)

// DiseaseView is what the "diseases" command prints for one entry.
type DiseaseView struct {
	Type      models.DiseaseType
	Title     string
	Available bool
	Reason    string
}

// Backend is the gateway as seen from the REPL.
type Backend interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context)
	Identity() (string, bool)
	Predict(ctx context.Context, disease models.DiseaseType, fields []string) (*models.PredictionResult, error)
	Diseases(ctx context.Context) ([]DiseaseView, error)
	Close() error
}

type localBackend struct {
	gate     *auth.Gate
	session  *auth.Session
	pipeline *prediction.Pipeline
	close    func() error
}

// NewLocalBackend runs the gateway in-process with one session for the
// lifetime of the REPL. Close releases the core.
func NewLocalBackend(c *core.Core) Backend {
	return &localBackend{
		gate:     c.Gate,
		session:  auth.NewSession(),
		pipeline: c.Pipeline,
		close:    c.Close,
	}
}

func (b *localBackend) Register(ctx context.Context, username string, password []byte) error {
	return b.gate.Register(ctx, b.session, username, password)
}

func (b *localBackend) Login(ctx context.Context, username string, password []byte) error {
	return b.gate.Login(ctx, b.session, username, password)
}

func (b *localBackend) Logout(ctx context.Context) {
	b.gate.Logout(ctx, b.session)
}

func (b *localBackend) Identity() (string, bool) {
	return b.session.CurrentIdentity()
}

func (b *localBackend) Predict(ctx context.Context, disease models.DiseaseType, fields []string) (*models.PredictionResult, error) {
	return b.pipeline.Predict(ctx, b.session, disease, fields)
}

func (b *localBackend) Diseases(context.Context) ([]DiseaseView, error) {
	infos := b.pipeline.Diseases()
	out := make([]DiseaseView, 0, len(infos))
	for _, info := range infos {
		out = append(out, DiseaseView{
			Type:      info.Spec.Type,
			Title:     info.Spec.Title,
			Available: info.Available,
			Reason:    info.Reason,
		})
	}
	return out, nil
}

func (b *localBackend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// remoteClient is the subset of the gRPC client the REPL uses.
type remoteClient interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context)
	Identity() (string, bool)
	Predict(ctx context.Context, disease models.DiseaseType, fields []string) (*models.PredictionResult, error)
	Diseases(ctx context.Context) ([]gs.DiseaseStatus, error)
	Close() error
}

type remoteBackend struct {
	remoteClient
}

// NewRemoteBackend talks to a gateway server through c.
func NewRemoteBackend(c *gs.Client) Backend {
	return &remoteBackend{remoteClient: c}
}

func (b *remoteBackend) Diseases(ctx context.Context) ([]DiseaseView, error) {
	statuses, err := b.remoteClient.Diseases(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DiseaseView, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, DiseaseView{
			Type:      s.Type,
			Title:     s.Title,
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return out, nil
}
