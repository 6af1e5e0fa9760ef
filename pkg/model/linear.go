package model

import (
	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/optim"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/stats"
)

// LinearRegression fits y = w·x + b by full-batch gradient descent on the
// mean squared error, starting from (0, 0).
type LinearRegression struct {
	W, B       float64
	Lr         float64
	Iterations int

	x, y  []float64
	steps int
	opt   *optim.SGD
}

// NewLinearRegression copies the training points into a fresh (0, 0) state.
func NewLinearRegression(points []core.Point2D, lr float64, iterations int) (*LinearRegression, error) {
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}
	if !(lr > 0) {
		return nil, invalidParam("learningRate", lr)
	}
	if iterations < 0 {
		return nil, invalidParam("iterations", iterations)
	}
	m := &LinearRegression{Lr: lr, Iterations: iterations, opt: optim.NewSGD(lr)}
	m.x, m.y = splitXY(points)
	return m, nil
}

func splitXY(points []core.Point2D) (x, y []float64) {
	x = make([]float64, len(points))
	y = make([]float64, len(points))
	for i, p := range points {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

// Steps is the number of gradient steps applied so far.
func (m *LinearRegression) Steps() int { return m.steps }

// Advance applies gradient steps until target have completed; a lower target
// restarts from (0, 0). Training is deterministic so replays are exact.
func (m *LinearRegression) Advance(target int) error {
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
func (m *LinearRegression) AdvanceToFrame(frame int) error {
	return AdvanceToFrame(m, frame, m.Iterations)
}

// Step applies one batch update: dw = mean(x·r), db = mean(r), r = wx+b-y.
func (m *LinearRegression) Step() {
	n := float64(len(m.x))
	gw, gb := 0.0, 0.0
	for i := range m.x {
		r := m.W*m.x[i] + m.B - m.y[i]
		gw += m.x[i] * r
		gb += r
	}
	params := []float64{m.W, m.B}
	m.opt.Step(params, []float64{gw / n, gb / n})
	m.W, m.B = params[0], params[1]
	m.steps++
}

// Predict evaluates the current line at x.
func (m *LinearRegression) Predict(x float64) float64 { return m.W*x + m.B }

func (m *LinearRegression) predictAll() []float64 {
	out := make([]float64, len(m.x))
	for i, x := range m.x {
		out[i] = m.Predict(x)
	}
	return out
}

// MSE is the training mean squared error of the current (w, b).
func (m *LinearRegression) MSE() float64 {
	res := m.predictAll()
	for i := range res {
		res[i] -= m.y[i]
	}
	return stats.MeanSquare(res)
}

// R2 is the coefficient of determination on the training points.
func (m *LinearRegression) R2() float64 { return R2(m.y, m.predictAll()) }
