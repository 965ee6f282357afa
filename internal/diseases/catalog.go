// Package diseases holds the static description of each supported
// classifier: the ordered input fields, whether a scaler is required, and
// the diagnosis texts. Specs are built once and must not be modified.
package diseases

import (
	"fmt"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/models"
)

// Field is one model input. Domain documents the expected values for
// categorical inputs; it is informational and never enforced.
type Field struct {
	Name   string
	Prompt string
	Domain string
}

// Spec describes one disease type. The order of Fields is the feature order
// the trained model expects.
type Spec struct {
	Type           models.DiseaseType
	Title          string
	Fields         []Field
	RequiresScaler bool
	PositiveText   string
	NegativeText   string
	ArtifactName   string
}

// FieldNames returns the feature names in model order.
func (s *Spec) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Diagnosis maps a class label to its outcome and text. Only 0 and 1 are
// valid labels.
func (s *Spec) Diagnosis(label int) (models.Outcome, string, error) {
	switch label {
	case 1:
		return models.Positive, s.PositiveText, nil
	case 0:
		return models.Negative, s.NegativeText, nil
	default:
		return "", "", fmt.Errorf("%s model returned unexpected label %d", s.Type, label)
	}
}

// Catalog is the immutable set of specs known to the gateway.
type Catalog struct {
	specs map[models.DiseaseType]*Spec
	order []models.DiseaseType
}

// NewCatalog builds a Catalog from specs, keeping their order.
func NewCatalog(specs ...*Spec) *Catalog {
	c := &Catalog{specs: make(map[models.DiseaseType]*Spec, len(specs))}
	for _, s := range specs {
		c.specs[s.Type] = s
		c.order = append(c.order, s.Type)
	}
	return c
}

// Default returns the catalog of the four supported diseases.
func Default() *Catalog {
	return NewCatalog(diabetesSpec(), heartDiseaseSpec(), parkinsonsSpec(), breastCancerSpec())
}

// Get resolves a disease type, failing with common.ErrUnknownDiseaseType.
func (c *Catalog) Get(dt models.DiseaseType) (*Spec, error) {
	s, ok := c.specs[dt]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownDiseaseType, dt)
	}
	return s, nil
}

// All returns the specs in catalog order.
func (c *Catalog) All() []*Spec {
	out := make([]*Spec, 0, len(c.order))
	for _, dt := range c.order {
		out = append(out, c.specs[dt])
	}
	return out
}
