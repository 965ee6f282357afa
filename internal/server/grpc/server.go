// Package grpc exposes the gateway over gRPC. Messages are
// google.protobuf.Struct values, so no generated code is needed on either
// side.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/healthgate/internal/auth"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/metrics"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"github.com/dmitrijs2005/healthgate/internal/prediction"
	"google.golang.org/grpc"
)

// Gate authenticates sessions against the credential store.
type Gate interface {
	Login(ctx context.Context, s *auth.Session, username string, password []byte) error
	Register(ctx context.Context, s *auth.Session, username string, password []byte) error
}

// Pipeline serves predictions and the disease list.
type Pipeline interface {
	Predict(ctx context.Context, session prediction.Authenticator, disease models.DiseaseType, raw []string) (*models.PredictionResult, error)
	Diseases() []prediction.DiseaseInfo
}

type GRPCServer struct {
	address   string
	gate      Gate
	pipeline  Pipeline
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	metrics   *metrics.Metrics
}

func NewGRPCServer(address string, l logging.Logger, gate Gate, pipeline Pipeline, secretKey string, tokenTTL time.Duration) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		gate:      gate,
		pipeline:  pipeline,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// WithMetrics records request and prediction counters into m.
func (s *GRPCServer) WithMetrics(m *metrics.Metrics) *GRPCServer {
	s.metrics = m
	return s
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))
	RegisterGatewayServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
