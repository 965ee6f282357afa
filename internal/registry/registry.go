// Package registry loads one model artifact per supported disease at
// startup and serves them read-only afterwards.
package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/healthgate/internal/artifacts"
	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/diseases"
	"github.com/dmitrijs2005/healthgate/internal/inference"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/models"
)

// DefaultLoadTimeout bounds each artifact load when Load is given zero.
const DefaultLoadTimeout = 10 * time.Second

// Status reports whether a disease model is usable and, if not, why.
type Status struct {
	Disease   models.DiseaseType
	Available bool
	Reason    string
}

type entry struct {
	artifact *inference.Artifact
	err      error
}

// Registry maps each disease in the catalog to its artifact or to the error
// that prevented loading it. It is never modified after Load returns.
type Registry struct {
	catalog *diseases.Catalog
	entries map[models.DiseaseType]entry
}

// Load reads every artifact in the catalog concurrently. A failing artifact
// only disables its own disease.
func Load(ctx context.Context, src artifacts.Source, catalog *diseases.Catalog, timeout time.Duration, logger logging.Logger) *Registry {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	logger = logger.With("module", "registry")

	specs := catalog.All()
	results := make([]entry, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := loadOne(ctx, src, spec, timeout, logger)
			results[i] = entry{artifact: a, err: err}
		}()
	}
	wg.Wait()

	r := &Registry{
		catalog: catalog,
		entries: make(map[models.DiseaseType]entry, len(specs)),
	}
	for i, spec := range specs {
		e := results[i]
		r.entries[spec.Type] = e
		if e.err != nil {
			logger.Error(ctx, "model unavailable", "disease", spec.Type, "artifact", spec.ArtifactName, "error", e.err)
			continue
		}
		logger.Info(ctx, "model loaded", "disease", spec.Type, "features", e.artifact.NumFeatures(), "scaled", e.artifact.HasScaler())
	}
	return r
}

func loadOne(ctx context.Context, src artifacts.Source, spec *diseases.Spec, timeout time.Duration, logger logging.Logger) (*inference.Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		a   *inference.Artifact
		err error
	}
	done := make(chan result, 1)

	go func() {
		a, err := readArtifact(ctx, src, spec.ArtifactName)
		done <- result{a, err}
	}()

	var a *inference.Artifact
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("loading %s: %w", spec.ArtifactName, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		a = res.a
	}

	if err := checkCompatible(spec, a); err != nil {
		return nil, fmt.Errorf("%s: %w", spec.ArtifactName, err)
	}

	if a.HasScaler() && !spec.RequiresScaler {
		logger.Warn(ctx, "artifact carries a scaler the model does not use; ignoring it", "disease", spec.Type)
		a.Scaler = nil
	}
	return a, nil
}

func readArtifact(ctx context.Context, src artifacts.Source, name string) (*inference.Artifact, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	a, err := inference.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return a, nil
}

func checkCompatible(spec *diseases.Spec, a *inference.Artifact) error {
	if a.Disease != "" && a.Disease != string(spec.Type) {
		return fmt.Errorf("artifact is for %q, expected %q", a.Disease, spec.Type)
	}
	if n := a.NumFeatures(); n != len(spec.Fields) {
		return fmt.Errorf("model expects %d features, form has %d", n, len(spec.Fields))
	}
	if a.Features != nil && !slices.Equal(a.Features, spec.FieldNames()) {
		return errors.New("feature order does not match the form")
	}
	if spec.RequiresScaler && !a.HasScaler() {
		return errors.New("scaler required but missing")
	}
	return nil
}

// Lookup returns the artifact for dt, or an error wrapping
// common.ErrModelUnavailable with the load failure.
func (r *Registry) Lookup(dt models.DiseaseType) (*inference.Artifact, error) {
	e, ok := r.entries[dt]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownDiseaseType, dt)
	}
	if e.err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrModelUnavailable, dt, e.err)
	}
	return e.artifact, nil
}

// Available lists the loaded disease types in catalog order.
func (r *Registry) Available() []models.DiseaseType {
	var out []models.DiseaseType
	for _, spec := range r.catalog.All() {
		if r.entries[spec.Type].err == nil {
			out = append(out, spec.Type)
		}
	}
	return out
}

// Status reports every catalog disease in catalog order.
func (r *Registry) Status() []Status {
	specs := r.catalog.All()
	out := make([]Status, 0, len(specs))
	for _, spec := range specs {
		s := Status{Disease: spec.Type, Available: true}
		if err := r.entries[spec.Type].err; err != nil {
			s.Available = false
			s.Reason = err.Error()
		}
		out = append(out, s)
	}
	return out
}
