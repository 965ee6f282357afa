package inference

import "math"

// Kernel is an SVM kernel function.
type Kernel interface {
	Eval(a, b []float64) float64
	Name() string
}

type LinearKernel struct{}

func (LinearKernel) Eval(a, b []float64) float64 { return dot(a, b) }
func (LinearKernel) Name() string                { return "linear" }

// RBFKernel is exp(-gamma * |a-b|^2).
type RBFKernel struct {
	Gamma float64
}

func (k RBFKernel) Eval(a, b []float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return math.Exp(-k.Gamma * d)
}

func (RBFKernel) Name() string { return "rbf" }

// PolyKernel is (gamma * <a,b> + coef0)^degree.
type PolyKernel struct {
	Gamma  float64
	Coef0  float64
	Degree int
}

func (k PolyKernel) Eval(a, b []float64) float64 {
	return math.Pow(k.Gamma*dot(a, b)+k.Coef0, float64(k.Degree))
}

func (PolyKernel) Name() string { return "poly" }

// SigmoidKernel is tanh(gamma * <a,b> + coef0).
type SigmoidKernel struct {
	Gamma float64
	Coef0 float64
}

func (k SigmoidKernel) Eval(a, b []float64) float64 {
	return math.Tanh(k.Gamma*dot(a, b) + k.Coef0)
}

func (SigmoidKernel) Name() string { return "sigmoid" }

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
