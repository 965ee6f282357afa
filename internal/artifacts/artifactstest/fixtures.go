// Package artifactstest provides small, hand-built model artifacts for the
// four supported diseases. The models are trivial but deterministic, so
// tests can pick inputs that land on either side of the boundary.
package artifactstest

import (
	"encoding/json"
	"testing/fstest"

	"github.com/dmitrijs2005/healthgate/internal/diseases"
	"github.com/dmitrijs2005/healthgate/internal/inference"
	"github.com/dmitrijs2005/healthgate/internal/models"
)

// Sample inputs, in form order.
var (
	// DiabeticInput is positive only because glucose and blood pressure are
	// compared after scaling.
	DiabeticInput    = []string{"2", "120", "70", "30", "80", "28.5", "0.5", "33"}
	NonDiabeticInput = []string{"2", "70", "120", "30", "80", "28.5", "0.5", "33"}
	// ScalerSensitiveInput is diabetic on raw values and non-diabetic once
	// scaled.
	ScalerSensitiveInput = []string{"2", "125", "90", "30", "80", "28.5", "0.5", "33"}

	FaultyHeartInput  = []string{"63", "1", "3", "145", "233", "1", "0", "150", "0", "2.3", "0", "0", "1"}
	HealthyHeartInput = []string{"41", "0", "1", "130", "204", "0", "0", "172", "0", "1.4", "2", "0", "2"}
)

// ParkinsonsInput returns 22 copies of v. Values near 1 are positive, near 0
// negative.
func ParkinsonsInput(v string) []string {
	return repeat(v, 22)
}

// BreastCancerInput returns a form with radius_mean set to radius and every
// other field 0. Radius above 17.5 is malignant.
func BreastCancerInput(radius string) []string {
	in := repeat("0", 30)
	in[0] = radius
	return in
}

func Diabetes() *inference.Document {
	coef := make([]float64, 8)
	coef[1] = 1
	coef[2] = -1
	return &inference.Document{
		FormatVersion: inference.FormatVersion,
		Disease:       string(models.Diabetes),
		Features:      featureNames(models.Diabetes),
		Classifier: &inference.ClassifierDoc{
			Kernel:    "linear",
			Classes:   []int{0, 1},
			Coef:      coef,
			Intercept: 0.5,
		},
		Scaler: &inference.ScalerDoc{
			Mean:  []float64{3, 120, 69, 20, 80, 32, 0.47, 33},
			Scale: []float64{3, 30, 19, 16, 115, 8, 0.33, 12},
		},
	}
}

func HeartDisease() *inference.Document {
	coef := make([]float64, 13)
	coef[0] = 0.05
	return &inference.Document{
		FormatVersion: inference.FormatVersion,
		Disease:       string(models.HeartDisease),
		Features:      featureNames(models.HeartDisease),
		Classifier: &inference.ClassifierDoc{
			Kernel:    "linear",
			Classes:   []int{0, 1},
			Coef:      coef,
			Intercept: -3,
		},
	}
}

func Parkinsons() *inference.Document {
	zeros := make([]float64, 22)
	ones := make([]float64, 22)
	for i := range ones {
		ones[i] = 1
	}
	return &inference.Document{
		FormatVersion: inference.FormatVersion,
		Disease:       string(models.Parkinsons),
		Classifier: &inference.ClassifierDoc{
			Kernel:         "rbf",
			Classes:        []int{0, 1},
			Gamma:          0.5,
			SupportVectors: [][]float64{zeros, ones},
			DualCoef:       []float64{-1, 1},
		},
	}
}

func BreastCancer() *inference.Document {
	coef := make([]float64, 30)
	coef[0] = 1
	mean := make([]float64, 30)
	mean[0] = 14
	scale := make([]float64, 30)
	for i := range scale {
		scale[i] = 1
	}
	scale[0] = 3.5
	return &inference.Document{
		FormatVersion: inference.FormatVersion,
		Disease:       string(models.BreastCancer),
		Features:      featureNames(models.BreastCancer),
		Classifier: &inference.ClassifierDoc{
			Kernel:    "linear",
			Classes:   []int{0, 1},
			Coef:      coef,
			Intercept: -1,
		},
		Scaler: &inference.ScalerDoc{Mean: mean, Scale: scale},
	}
}

// JSON encodes doc, panicking on failure.
func JSON(doc *inference.Document) []byte {
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return b
}

// DefaultFS holds all four artifacts under their catalog names.
func DefaultFS() fstest.MapFS {
	return fstest.MapFS{
		"diabetes.json":      {Data: JSON(Diabetes())},
		"heart_disease.json": {Data: JSON(HeartDisease())},
		"parkinsons.json":    {Data: JSON(Parkinsons())},
		"breast_cancer.json": {Data: JSON(BreastCancer())},
	}
}

func featureNames(dt models.DiseaseType) []string {
	spec, err := diseases.Default().Get(dt)
	if err != nil {
		panic(err)
	}
	return spec.FieldNames()
}

func repeat(v string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}
