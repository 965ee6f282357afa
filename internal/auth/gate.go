package auth

import (
	"context"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/logging"
)

// CredentialStore is what the Gate needs from the credential store.
type CredentialStore interface {
	Register(ctx context.Context, username string, password []byte) error
	Verify(ctx context.Context, username string, password []byte) (bool, error)
}

// Gate drives session transitions from credential store results.
type Gate struct {
	store  CredentialStore
	logger logging.Logger
}

func NewGate(store CredentialStore, logger logging.Logger) *Gate {
	return &Gate{store: store, logger: logger.With("module", "auth")}
}

// Login authenticates s as username when the password verifies.
func (g *Gate) Login(ctx context.Context, s *Session, username string, password []byte) error {
	if err := s.RequireAuthenticated(); err == nil {
		return common.ErrAlreadyAuthenticated
	}

	ok, err := g.store.Verify(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		g.logger.Info(ctx, "login failed", "username", username)
		return common.ErrInvalidCredentials
	}

	if err := s.authenticate(username); err != nil {
		return err
	}
	g.logger.Info(ctx, "login succeeded", "username", username)
	return nil
}

// Register creates the account and logs s in as the new user.
func (g *Gate) Register(ctx context.Context, s *Session, username string, password []byte) error {
	if err := s.RequireAuthenticated(); err == nil {
		return common.ErrAlreadyAuthenticated
	}

	if err := g.store.Register(ctx, username, password); err != nil {
		return err
	}

	return s.authenticate(username)
}

// Logout returns s to the unauthenticated state. It is a no-op for a session
// that is not logged in.
func (g *Gate) Logout(ctx context.Context, s *Session) {
	if id, ok := s.CurrentIdentity(); ok {
		s.clear()
		g.logger.Info(ctx, "logged out", "username", id)
	}
}
