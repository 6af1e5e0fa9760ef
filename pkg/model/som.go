package model

import (
	"math"
	"math/rand"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/stats"
)

// Neuron is one SOM unit: a weight vector (X, Y) in data space and fixed
// grid coordinates (I, J).
type Neuron struct {
	X, Y float64
	I, J int
}

func (n Neuron) Weight() core.Point2D { return core.Point2D{X: n.X, Y: n.Y} }

// SOM is a square self-organising map trained one random sample per step.
type SOM struct {
	GridSize     int
	LearningRate float64
	Sigma        float64
	Iterations   int
	RandomState  int64

	Data    []core.Point2D
	Neurons []Neuron // row-major: index = I*GridSize + J

	bmu   int
	steps int
	rnd   *rand.Rand
}

// SOMOption functional config
type SOMOption func(*SOM)

func WithSOMRandomState(seed int64) SOMOption { return func(s *SOM) { s.RandomState = seed } }

// NewSOM lays the grid on a regular lattice over [-0.5, 0.5]².
func NewSOM(data []core.Point2D, gridSize int, lr, sigma float64, iterations int, opts ...SOMOption) (*SOM, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if gridSize < 1 {
		return nil, invalidParam("gridSize", gridSize)
	}
	if !(lr > 0) {
		return nil, invalidParam("learningRate", lr)
	}
	if !(sigma > 0) {
		return nil, invalidParam("sigma", sigma)
	}
	if iterations < 1 {
		return nil, invalidParam("iterations", iterations)
	}
	s := &SOM{
		GridSize:     gridSize,
		LearningRate: lr,
		Sigma:        sigma,
		Iterations:   iterations,
		Data:         append([]core.Point2D(nil), data...),
	}
	for _, o := range opts {
		o(s)
	}
	if s.RandomState == 0 {
		s.RandomState = core.NewRand(0).Int63()
	}
	s.reset()
	return s, nil
}

func latticeCoord(k, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(k)/float64(n-1) - 0.5
}

func (s *SOM) reset() {
	s.rnd = core.NewRand(s.RandomState)
	s.Neurons = make([]Neuron, 0, s.GridSize*s.GridSize)
	for i := range s.GridSize {
		for j := range s.GridSize {
			s.Neurons = append(s.Neurons, Neuron{
				X: latticeCoord(j, s.GridSize),
				Y: latticeCoord(i, s.GridSize),
				I: i,
				J: j,
			})
		}
	}
	s.bmu = -1
	s.steps = 0
}

// Steps is the number of completed training steps.
func (s *SOM) Steps() int { return s.steps }

// Advance trains until target steps have completed. A target below Steps()
// rebuilds the lattice and replays the same sample sequence.
func (s *SOM) Advance(target int) error {
	if target < 0 {
		return invalidParam("iterations", target)
	}
	if target < s.steps {
		s.reset()
	}
	for s.steps < target {
		s.Step()
	}
	return nil
}

// AdvanceToFrame trains up to FrameToIteration(frame, Iterations) steps.
func (s *SOM) AdvanceToFrame(frame int) error {
	return AdvanceToFrame(s, frame, s.Iterations)
}

// Step draws one sample, finds its BMU and pulls every neuron toward it.
func (s *SOM) Step() {
	p := s.Data[s.rnd.Intn(len(s.Data))]
	s.bmu = s.FindBMU(p)

	decay := math.Exp(-float64(s.steps) / float64(s.Iterations))
	rate := s.LearningRate * decay
	sigma := s.Sigma * decay
	b := s.Neurons[s.bmu]
	for k := range s.Neurons {
		n := &s.Neurons[k]
		di, dj := float64(n.I-b.I), float64(n.J-b.J)
		influence := math.Exp(-(di*di + dj*dj) / (2 * sigma * sigma))
		n.X += rate * influence * (p.X - n.X)
		n.Y += rate * influence * (p.Y - n.Y)
	}
	s.steps++
}

// FindBMU returns the index of the neuron nearest to p; ties keep the lowest index.
func (s *SOM) FindBMU(p core.Point2D) int {
	best, bestD := 0, math.Inf(1)
	for k, n := range s.Neurons {
		if d := stats.SquaredDistance(n.Weight(), p); d < bestD {
			best, bestD = k, d
		}
	}
	return best
}

// BMU is the best matching unit of the latest step; ok is false before any step.
func (s *SOM) BMU() (Neuron, bool) {
	if s.bmu < 0 {
		return Neuron{}, false
	}
	return s.Neurons[s.bmu], true
}

// Neuron returns the unit at grid position (i, j).
func (s *SOM) Neuron(i, j int) Neuron { return s.Neurons[i*s.GridSize+j] }

// QuantizationError is the mean distance from each data point to its BMU.
func (s *SOM) QuantizationError() float64 {
	d := make([]float64, len(s.Data))
	for i, p := range s.Data {
		d[i] = stats.Euclidean(s.Neurons[s.FindBMU(p)].Weight(), p)
	}
	return stats.Mean(d)
}
