// Package inference implements the classifiers and scalers behind the model
// artifacts, plus the JSON artifact format they are loaded from.
package inference

import (
	"errors"
	"fmt"
)

// ErrDimension is returned when a vector does not match a model's input size.
var ErrDimension = errors.New("feature dimension mismatch")

// Predictor classifies a single feature vector into a class label.
type Predictor interface {
	Predict(x []float64) (int, error)
	NumFeatures() int
}

// Scaler transforms a feature vector before it reaches a Predictor. It never
// modifies its input.
type Scaler interface {
	Transform(x []float64) ([]float64, error)
	NumFeatures() int
}

func checkDim(want int, x []float64) error {
	if len(x) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrDimension, want, len(x))
	}
	return nil
}
