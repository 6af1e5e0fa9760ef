package model

import (
	"math"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/NeuralNetwork"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/optim"
)

// LogisticRegression (binary, one feature) trained by full-batch gradient
// descent with a sigmoid link. Points carry their 0/1 class in Label.
type LogisticRegression struct {
	W, B             float64
	Lr               float64
	Iterations       int
	DecisionBoundary float64 // probability at or above which class 1 is predicted

	x     []float64
	y     []float64
	steps int
	opt   *optim.SGD
}

// NewLogisticRegression copies the labelled points into a fresh (0, 0) state
// with the default 0.5 decision boundary.
func NewLogisticRegression(points []core.LabeledPoint, lr float64, iterations int) (*LogisticRegression, error) {
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}
	if !(lr > 0) {
		return nil, invalidParam("learningRate", lr)
	}
	if iterations < 0 {
		return nil, invalidParam("iterations", iterations)
	}
	m := &LogisticRegression{Lr: lr, Iterations: iterations, DecisionBoundary: 0.5, opt: optim.NewSGD(lr)}
	m.x = make([]float64, len(points))
	m.y = make([]float64, len(points))
	for i, p := range points {
		if p.Label != 0 && p.Label != 1 {
			return nil, invalidParam("label", p.Label)
		}
		m.x[i], m.y[i] = p.X, float64(p.Label)
	}
	return m, nil
}

// SetDecisionBoundary changes the classification threshold without retraining.
func (m *LogisticRegression) SetDecisionBoundary(t float64) error {
	if t < 0 || t > 1 {
		return invalidParam("decisionBoundary", t)
	}
	m.DecisionBoundary = t
	return nil
}

// Steps is the number of gradient steps applied so far.
func (m *LogisticRegression) Steps() int { return m.steps }

// Advance applies gradient steps until target have completed; a lower target
// restarts from (0, 0).
func (m *LogisticRegression) Advance(target int) error {
	if target < 0 {
		return invalidParam("iterations", target)
	}
	if target < m.steps {
		m.W, m.B, m.steps = 0, 0, 0
	}
	for m.steps < target {
		m.Step()
	}
	return nil
}

// AdvanceToFrame trains up to FrameToIteration(frame, Iterations) steps.
func (m *LogisticRegression) AdvanceToFrame(frame int) error {
	return AdvanceToFrame(m, frame, m.Iterations)
}

// Step applies one batch update with residual sigmoid(wx+b) - y.
func (m *LogisticRegression) Step() {
	n := float64(len(m.x))
	gw, gb := 0.0, 0.0
	for i := range m.x {
		r := NeuralNetwork.Sigmoid(m.W*m.x[i]+m.B) - m.y[i]
		gw += m.x[i] * r
		gb += r
	}
	params := []float64{m.W, m.B}
	m.opt.Step(params, []float64{gw / n, gb / n})
	m.W, m.B = params[0], params[1]
	m.steps++
}

// PredictProba is p(y=1 | x).
func (m *LogisticRegression) PredictProba(x float64) float64 {
	return NeuralNetwork.Sigmoid(m.W*x + m.B)
}

// Predict thresholds PredictProba at DecisionBoundary.
func (m *LogisticRegression) Predict(x float64) int {
	if m.PredictProba(x) >= m.DecisionBoundary {
		return 1
	}
	return 0
}

func (m *LogisticRegression) probaAll() []float64 {
	out := make([]float64, len(m.x))
	for i, x := range m.x {
		out[i] = m.PredictProba(x)
	}
	return out
}

// ErrorRate is the fraction of training points misclassified at DecisionBoundary.
func (m *LogisticRegression) ErrorRate() float64 {
	truth := make([]int, len(m.y))
	for i, v := range m.y {
		truth[i] = int(v)
	}
	return ErrorRate(truth, BinaryPredFromProba(m.probaAll(), m.DecisionBoundary))
}

// Loss is the binary cross-entropy on the training points.
func (m *LogisticRegression) Loss() float64 {
	loss, _ := NeuralNetwork.BCE(m.y, m.probaAll())
	return loss
}

// BoundaryX is the input at which the predicted probability equals
// DecisionBoundary; ok is false while w is zero or the boundary is 0 or 1.
func (m *LogisticRegression) BoundaryX() (x float64, ok bool) {
	t := m.DecisionBoundary
	if m.W == 0 || t <= 0 || t >= 1 {
		return 0, false
	}
	// sigmoid(wx+b) = t  =>  wx+b = ln(t/(1-t))
	return (logit(t) - m.B) / m.W, true
}

func logit(p float64) float64 { return math.Log(p / (1 - p)) }
