package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// FormatVersion is the only artifact document version this package reads.
const FormatVersion = 1

// ErrBadArtifact is wrapped by every decode or build failure.
var ErrBadArtifact = errors.New("bad model artifact")

// Document is the on-disk JSON form of a trained model bundle.
type Document struct {
	FormatVersion int            `json:"format_version"`
	Disease       string         `json:"disease"`
	Features      []string       `json:"features,omitempty"`
	Classifier    *ClassifierDoc `json:"classifier"`
	Scaler        *ScalerDoc     `json:"scaler,omitempty"`
}

// ClassifierDoc describes a binary SVC. Linear models may carry either Coef
// or SupportVectors with DualCoef; the other kernels need the latter.
type ClassifierDoc struct {
	Kernel         string      `json:"kernel"`
	Classes        []int       `json:"classes"`
	Coef           []float64   `json:"coef,omitempty"`
	Intercept      float64     `json:"intercept"`
	Gamma          float64     `json:"gamma,omitempty"`
	Coef0          float64     `json:"coef0,omitempty"`
	Degree         int         `json:"degree,omitempty"`
	SupportVectors [][]float64 `json:"support_vectors,omitempty"`
	DualCoef       []float64   `json:"dual_coef,omitempty"`
}

type ScalerDoc struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Artifact is a decoded, ready-to-use model bundle.
type Artifact struct {
	Disease   string
	Features  []string
	Predictor Predictor
	Scaler    Scaler
}

func (a *Artifact) HasScaler() bool { return a.Scaler != nil }

// NumFeatures is the classifier input size.
func (a *Artifact) NumFeatures() int { return a.Predictor.NumFeatures() }

// Decode reads one JSON document from r and builds the artifact.
func Decode(r io.Reader) (*Artifact, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
	}
	return Build(&doc)
}

// Build validates doc and constructs its predictor and optional scaler.
func Build(doc *Document) (*Artifact, error) {
	if doc.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrBadArtifact, doc.FormatVersion)
	}
	if doc.Classifier == nil {
		return nil, fmt.Errorf("%w: missing classifier", ErrBadArtifact)
	}

	p, err := buildClassifier(doc.Classifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
	}

	a := &Artifact{
		Disease:   doc.Disease,
		Predictor: p,
	}

	if len(doc.Features) > 0 {
		if len(doc.Features) != p.NumFeatures() {
			return nil, fmt.Errorf("%w: %d feature names for a %d-feature classifier", ErrBadArtifact, len(doc.Features), p.NumFeatures())
		}
		a.Features = append([]string(nil), doc.Features...)
	}

	if doc.Scaler != nil {
		if err := checkFinite(doc.Scaler.Mean, doc.Scaler.Scale); err != nil {
			return nil, fmt.Errorf("%w: scaler: %v", ErrBadArtifact, err)
		}
		s, err := NewStandardScaler(doc.Scaler.Mean, doc.Scaler.Scale)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
		}
		if s.NumFeatures() != p.NumFeatures() {
			return nil, fmt.Errorf("%w: scaler has %d features, classifier %d", ErrBadArtifact, s.NumFeatures(), p.NumFeatures())
		}
		a.Scaler = s
	}

	return a, nil
}

func buildClassifier(c *ClassifierDoc) (*SVC, error) {
	if len(c.Classes) != 2 {
		return nil, fmt.Errorf("classifier must have exactly 2 classes, got %d", len(c.Classes))
	}
	classes := [2]int{c.Classes[0], c.Classes[1]}

	if err := checkFinite(c.Coef, c.DualCoef, []float64{c.Intercept, c.Gamma, c.Coef0}); err != nil {
		return nil, err
	}
	for _, sv := range c.SupportVectors {
		if err := checkFinite(sv); err != nil {
			return nil, err
		}
	}

	var kernel Kernel
	switch c.Kernel {
	case "linear":
		if len(c.Coef) > 0 {
			return NewLinearSVC(c.Coef, c.Intercept, classes)
		}
		kernel = LinearKernel{}
	case "rbf":
		if c.Gamma <= 0 {
			return nil, errors.New("rbf kernel needs a positive gamma")
		}
		kernel = RBFKernel{Gamma: c.Gamma}
	case "poly":
		if c.Gamma <= 0 || c.Degree < 1 {
			return nil, errors.New("poly kernel needs a positive gamma and degree")
		}
		kernel = PolyKernel{Gamma: c.Gamma, Coef0: c.Coef0, Degree: c.Degree}
	case "sigmoid":
		if c.Gamma <= 0 {
			return nil, errors.New("sigmoid kernel needs a positive gamma")
		}
		kernel = SigmoidKernel{Gamma: c.Gamma, Coef0: c.Coef0}
	default:
		return nil, fmt.Errorf("unsupported kernel %q", c.Kernel)
	}

	return NewKernelSVC(kernel, c.SupportVectors, c.DualCoef, c.Intercept, classes)
}

func checkFinite(vs ...[]float64) error {
	for _, v := range vs {
		for _, f := range v {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return errors.New("non-finite parameter")
			}
		}
	}
	return nil
}
