package inference

import (
	"errors"
	"fmt"
)

// StandardScaler applies (x - mean) / scale per feature. A zero scale is
// treated as 1, the way scikit-learn stores constant features.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 {
		return nil, errors.New("scaler: empty mean")
	}
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("scaler: %d means for %d scales", len(mean), len(scale))
	}

	s := &StandardScaler{
		mean:  append([]float64(nil), mean...),
		scale: make([]float64, len(scale)),
	}
	for i, v := range scale {
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}
	return s, nil
}

func (s *StandardScaler) NumFeatures() int { return len(s.mean) }

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if err := checkDim(len(s.mean), x); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.mean[i]) / s.scale[i]
	}
	return out, nil
}
