// Package prediction runs a single diagnosis request end to end: session
// check, model lookup, input validation, optional scaling, inference and
// label mapping.
package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/healthgate/internal/diseases"
	"github.com/dmitrijs2005/healthgate/internal/inference"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"github.com/dmitrijs2005/healthgate/internal/validation"
	"github.com/google/uuid"
)

// Authenticator is the caller's session.
type Authenticator interface {
	RequireAuthenticated() error
	CurrentIdentity() (string, bool)
}

// ModelLookup resolves the loaded artifact for a disease.
type ModelLookup interface {
	Lookup(dt models.DiseaseType) (*inference.Artifact, error)
}

// DiseaseInfo describes one disease for a presentation layer.
type DiseaseInfo struct {
	Spec      *diseases.Spec
	Available bool
	Reason    string
}

type Pipeline struct {
	catalog *diseases.Catalog
	models  ModelLookup
	logger  logging.Logger
	newID   func() string
}

func New(catalog *diseases.Catalog, lookup ModelLookup, logger logging.Logger) *Pipeline {
	return &Pipeline{
		catalog: catalog,
		models:  lookup,
		logger:  logger.With("module", "prediction"),
		newID:   uuid.NewString,
	}
}

// Predict classifies one submission. Field values are never logged.
func (p *Pipeline) Predict(ctx context.Context, session Authenticator, disease models.DiseaseType, raw []string) (*models.PredictionResult, error) {
	if err := session.RequireAuthenticated(); err != nil {
		p.logger.Warn(ctx, "prediction rejected", "disease", disease, "reason", err)
		return nil, err
	}
	identity, _ := session.CurrentIdentity()
	requestID := p.newID()
	log := p.logger.With("request_id", requestID, "user", identity, "disease", disease)

	spec, err := p.catalog.Get(disease)
	if err != nil {
		log.Info(ctx, "prediction rejected", "reason", err)
		return nil, err
	}

	artifact, err := p.models.Lookup(spec.Type)
	if err != nil {
		log.Warn(ctx, "prediction rejected", "reason", err)
		return nil, err
	}

	x, err := validation.Validate(spec, raw)
	if err != nil {
		// the error text may quote the offending value
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			log.Info(ctx, "prediction rejected", "reason", ve.Kind.String(), "field", ve.Field)
		}
		return nil, err
	}

	if artifact.HasScaler() {
		if x, err = artifact.Scaler.Transform(x); err != nil {
			log.Error(ctx, "scaling failed", "error", err)
			return nil, fmt.Errorf("scale %s input: %w", spec.Type, err)
		}
	}

	label, err := artifact.Predictor.Predict(x)
	if err != nil {
		log.Error(ctx, "inference failed", "error", err)
		return nil, fmt.Errorf("predict %s: %w", spec.Type, err)
	}

	outcome, text, err := spec.Diagnosis(label)
	if err != nil {
		log.Error(ctx, "inference failed", "error", err)
		return nil, err
	}

	log.Info(ctx, "prediction served", "outcome", outcome)

	return &models.PredictionResult{
		RequestID: requestID,
		Disease:   spec.Type,
		Outcome:   outcome,
		Label:     label,
		Diagnosis: text,
	}, nil
}

// Diseases lists every disease in catalog order with its model availability.
func (p *Pipeline) Diseases() []DiseaseInfo {
	specs := p.catalog.All()
	out := make([]DiseaseInfo, 0, len(specs))
	for _, spec := range specs {
		info := DiseaseInfo{Spec: spec, Available: true}
		if _, err := p.models.Lookup(spec.Type); err != nil {
			info.Available = false
			info.Reason = err.Error()
		}
		out = append(out, info)
	}
	return out
}
