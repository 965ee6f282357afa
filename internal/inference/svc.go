package inference

import (
	"errors"
	"fmt"
)

// SVC is a binary support vector classifier with scikit-learn semantics:
// the decision value is sum(dual_coef[i] * K(sv[i], x)) + intercept and a
// positive decision selects Classes[1].
//
// For the linear kernel the weights are folded into Coef so prediction is a
// single dot product.
type SVC struct {
	kernel         Kernel
	supportVectors [][]float64
	dualCoef       []float64
	coef           []float64
	intercept      float64
	classes        [2]int
	nFeatures      int
}

// NewLinearSVC builds a linear classifier from its primal weights.
func NewLinearSVC(coef []float64, intercept float64, classes [2]int) (*SVC, error) {
	if len(coef) == 0 {
		return nil, errors.New("linear svc: empty coefficient vector")
	}
	return &SVC{
		kernel:    LinearKernel{},
		coef:      append([]float64(nil), coef...),
		intercept: intercept,
		classes:   classes,
		nFeatures: len(coef),
	}, nil
}

// NewKernelSVC builds a classifier from support vectors and dual
// coefficients. A linear kernel is folded into primal weights.
func NewKernelSVC(kernel Kernel, supportVectors [][]float64, dualCoef []float64, intercept float64, classes [2]int) (*SVC, error) {
	if kernel == nil {
		return nil, errors.New("svc: nil kernel")
	}
	if len(supportVectors) == 0 {
		return nil, errors.New("svc: no support vectors")
	}
	if len(dualCoef) != len(supportVectors) {
		return nil, fmt.Errorf("svc: %d dual coefficients for %d support vectors", len(dualCoef), len(supportVectors))
	}

	n := len(supportVectors[0])
	if n == 0 {
		return nil, errors.New("svc: empty support vector")
	}
	svs := make([][]float64, len(supportVectors))
	for i, sv := range supportVectors {
		if len(sv) != n {
			return nil, fmt.Errorf("svc: support vector %d has %d features, want %d", i, len(sv), n)
		}
		svs[i] = append([]float64(nil), sv...)
	}

	if _, ok := kernel.(LinearKernel); ok {
		coef := make([]float64, n)
		for i, sv := range svs {
			for j, v := range sv {
				coef[j] += dualCoef[i] * v
			}
		}
		return NewLinearSVC(coef, intercept, classes)
	}

	return &SVC{
		kernel:         kernel,
		supportVectors: svs,
		dualCoef:       append([]float64(nil), dualCoef...),
		intercept:      intercept,
		classes:        classes,
		nFeatures:      n,
	}, nil
}

func (m *SVC) NumFeatures() int { return m.nFeatures }

// Kernel returns the kernel name, e.g. "rbf".
func (m *SVC) Kernel() string { return m.kernel.Name() }

// Decision returns the signed distance of x from the separating surface.
func (m *SVC) Decision(x []float64) (float64, error) {
	if err := checkDim(m.nFeatures, x); err != nil {
		return 0, err
	}

	if m.coef != nil {
		return dot(m.coef, x) + m.intercept, nil
	}

	d := m.intercept
	for i, sv := range m.supportVectors {
		d += m.dualCoef[i] * m.kernel.Eval(sv, x)
	}
	return d, nil
}

func (m *SVC) Predict(x []float64) (int, error) {
	d, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	if d > 0 {
		return m.classes[1], nil
	}
	return m.classes[0], nil
}
