package model

import (
	"fmt"
	"math"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/stats"
)

// Kernel is a similarity between two points.
type Kernel interface {
	Name() string
	Eval(a, b core.Point2D) float64
}

// LinearKernel is the dot product.
type LinearKernel struct{}

func (LinearKernel) Name() string { return "linear" }

func (LinearKernel) Eval(a, b core.Point2D) float64 { return a.X*b.X + a.Y*b.Y }

// RBFKernel is exp(-Gamma·|a-b|²).
type RBFKernel struct{ Gamma float64 }

func (RBFKernel) Name() string { return "rbf" }

func (k RBFKernel) Eval(a, b core.Point2D) float64 {
	return math.Exp(-k.Gamma * stats.SquaredDistance(a, b))
}

// ParseKernel builds "linear" or "rbf" (with gamma).
func ParseKernel(name string, gamma float64) (Kernel, error) {
	switch name {
	case "linear":
		return LinearKernel{}, nil
	case "rbf":
		if !(gamma > 0) {
			return nil, invalidParam("gamma", gamma)
		}
		return RBFKernel{Gamma: gamma}, nil
	}
	return nil, fmt.Errorf("%w: kernel=%q", ErrInvalidParameter, name)
}

// SupportVectorMargin is the decision magnitude under which a training point
// is highlighted as a support vector.
const SupportVectorMargin = 1.05

// SVM is a kernel-margin classifier for visualisation. It does not solve the
// dual problem: each point first gets a raw score from unit ±1 coefficients,
// and only points scoring inside 1/C keep a coefficient of ±C.
type SVM struct {
	C      float64
	Kernel Kernel

	Points []core.LabeledPoint
	signs  []float64
	raw    []float64
	alpha  []float64
}

// NewSVM validates C > 0 and a non-nil kernel.
func NewSVM(c float64, k Kernel) (*SVM, error) {
	if !(c > 0) {
		return nil, invalidParam("C", c)
	}
	if k == nil {
		return nil, invalidParam("kernel", nil)
	}
	return &SVM{C: c, Kernel: k}, nil
}

// Fit assigns the heuristic coefficients. Label 1 is the positive class and
// every other label is negative.
func (m *SVM) Fit(points []core.LabeledPoint) error {
	if len(points) == 0 {
		return ErrEmptyDataset
	}
	m.Points = append([]core.LabeledPoint(nil), points...)
	n := len(points)
	m.signs = make([]float64, n)
	for i, p := range m.Points {
		m.signs[i] = -1
		if p.Label == 1 {
			m.signs[i] = 1
		}
	}
	m.raw = make([]float64, n)
	for i := range m.Points {
		m.raw[i] = m.expand(m.signs, m.Points[i].Point2D)
	}
	m.alpha = make([]float64, n)
	for i, r := range m.raw {
		if math.Abs(r) < 1/m.C {
			m.alpha[i] = m.signs[i] * m.C
		}
	}
	return nil
}

func (m *SVM) expand(coef []float64, x core.Point2D) float64 {
	s := 0.0
	for j, c := range coef {
		if c != 0 {
			s += c * m.Kernel.Eval(m.Points[j].Point2D, x)
		}
	}
	return s
}

// Decision is Σ α_j K(x_j, x) over the training points.
func (m *SVM) Decision(x core.Point2D) (float64, error) {
	if m.alpha == nil {
		return 0, ErrNotTrained
	}
	return m.expand(m.alpha, x), nil
}

// Classify returns 1 when the decision value is non-negative, else 0.
func (m *SVM) Classify(x core.Point2D) (int, error) {
	d, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	if d >= 0 {
		return 1, nil
	}
	return 0, nil
}

// IsSupportVector reports whether training point i lies within the
// highlighted margin |Decision| <= SupportVectorMargin.
func (m *SVM) IsSupportVector(i int) bool {
	if m.alpha == nil {
		return false
	}
	return math.Abs(m.expand(m.alpha, m.Points[i].Point2D)) <= SupportVectorMargin
}

// Coefficients are the heuristic α_i, either ±C or 0.
func (m *SVM) Coefficients() []float64 { return append([]float64(nil), m.alpha...) }

// RawDecisions are the unit-coefficient scores the coefficients were chosen from.
func (m *SVM) RawDecisions() []float64 { return append([]float64(nil), m.raw...) }

// Accuracy is the fraction of training points classified as their label.
func (m *SVM) Accuracy() float64 {
	truth := make([]int, len(m.Points))
	pred := make([]int, len(m.Points))
	for i, p := range m.Points {
		if p.Label == 1 {
			truth[i] = 1
		}
		pred[i], _ = m.Classify(p.Point2D)
	}
	return Accuracy(truth, pred)
}
