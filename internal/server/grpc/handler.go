package grpc

import (
	"context"

	"github.com/dmitrijs2005/healthgate/internal/auth"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Register takes {"username", "password"}, creates the account and returns
// {"username", "access_token"} so the caller is logged in right away.
func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	username, password := credentialsFromStruct(req)

	if err := s.gate.Register(ctx, auth.NewSession(), username, password); err != nil {
		s.logger.Info(ctx, "Registration rejected", "username", username, "error", err)
		return nil, toStatus(err)
	}

	return s.issueToken(ctx, username)
}

// Login takes {"username", "password"} and returns {"username",
// "access_token"}.
func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	username, password := credentialsFromStruct(req)

	if err := s.gate.Login(ctx, auth.NewSession(), username, password); err != nil {
		return nil, toStatus(err)
	}

	return s.issueToken(ctx, username)
}

func (s *GRPCServer) issueToken(ctx context.Context, username string) (*structpb.Struct, error) {
	token, err := auth.GenerateToken(username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, toStatus(err)
	}
	return structpb.NewStruct(map[string]any{
		fieldUsername:    username,
		fieldAccessToken: token,
	})
}

// Predict takes {"disease", "fields": [string...]} and returns
// {"request_id", "disease", "outcome", "label", "diagnosis"}. Requires the
// access_token metadata.
func (s *GRPCServer) Predict(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	pr, err := predictRequestFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	disease := pr.Disease
	if dt, err := models.ParseDiseaseType(string(disease)); err == nil {
		disease = dt
	}

	res, err := s.pipeline.Predict(ctx, sessionFromContext(ctx), disease, pr.Fields)
	if err != nil {
		return nil, toStatus(err)
	}
	s.metrics.ObservePrediction(string(res.Disease), string(res.Outcome))
	return predictionResultToStruct(res)
}

// ListDiseases returns {"diseases": [{"type", "title", "fields", "available",
// "reason"}...]}.
func (s *GRPCServer) ListDiseases(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return diseasesToStruct(s.pipeline.Diseases())
}

// Ping returns {"status": "OK", "models_available": n}.
func (s *GRPCServer) Ping(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	n := 0
	for _, d := range s.pipeline.Diseases() {
		if d.Available {
			n++
		}
	}
	return structpb.NewStruct(map[string]any{
		fieldStatus:        "OK",
		"models_available": n,
	})
}
