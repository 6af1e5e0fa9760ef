package model

import (
	"math"
	"math/rand"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/stats"
)

// KMeans partitions a fixed point set into K clusters one animation step at a
// time. There is no convergence check: the caller decides how many steps run.
type KMeans struct {
	K           int
	Bounds      core.Bounds // domain used for initial and re-seeded centroids
	RandomState int64

	Points      []core.Point2D
	Centroids   []core.Point2D
	Assignments []int

	steps int
	rnd   *rand.Rand
}

// KMeansOption functional config
type KMeansOption func(*KMeans)

func WithKMeansBounds(b core.Bounds) KMeansOption { return func(m *KMeans) { m.Bounds = b } }
func WithKMeansRandomState(seed int64) KMeansOption {
	return func(m *KMeans) { m.RandomState = seed }
}

// StepStats describes one K-Means iteration.
type StepStats struct {
	Step int
	// InertiaBefore is the sum of squared distances under the previous assignment.
	InertiaBefore float64
	// InertiaAssigned is the same sum right after reassignment, before the means move.
	InertiaAssigned float64
	// Inertia is measured after the centroid update and re-seeding.
	Inertia  float64
	Reseeded []int
}

// NewKMeans copies points and draws k random centroids inside the bounds.
func NewKMeans(points []core.Point2D, k int, opts ...KMeansOption) (*KMeans, error) {
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}
	if k < 1 {
		return nil, invalidParam("k", k)
	}
	m := &KMeans{
		K:      k,
		Bounds: core.UnitBounds,
		Points: append([]core.Point2D(nil), points...),
	}
	for _, o := range opts {
		o(m)
	}
	if m.RandomState == 0 {
		m.RandomState = core.NewRand(0).Int63()
	}
	m.reset()
	return m, nil
}

func (m *KMeans) reset() {
	m.rnd = core.NewRand(m.RandomState)
	m.Centroids = make([]core.Point2D, m.K)
	for k := range m.Centroids {
		m.Centroids[k] = m.Bounds.Sample(m.rnd)
	}
	m.Assignments = make([]int, len(m.Points))
	m.steps = 0
}

// Steps is the number of completed iterations.
func (m *KMeans) Steps() int { return m.steps }

// Advance runs iterations until target have completed. Lower targets replay
// from the seeded initial centroids, so a given target always yields the same state.
func (m *KMeans) Advance(target int) error {
	if target < 0 {
		return invalidParam("iterations", target)
	}
	if target < m.steps {
		m.reset()
	}
	for m.steps < target {
		m.Step()
	}
	return nil
}

// Run is Advance for callers thinking in iteration counts.
func (m *KMeans) Run(iterations int) error { return m.Advance(iterations) }

// Step performs assignment, mean update and empty-cluster re-seeding.
func (m *KMeans) Step() StepStats {
	st := StepStats{Step: m.steps + 1, InertiaBefore: m.Inertia()}

	// Assignment: first minimum wins ties, i.e. the lowest centroid index.
	for i, p := range m.Points {
		best, bestDist := 0, math.MaxFloat64
		for k, c := range m.Centroids {
			if d := stats.SquaredDistance(p, c); d < bestDist {
				best, bestDist = k, d
			}
		}
		m.Assignments[i] = best
	}
	st.InertiaAssigned = m.Inertia()

	// Update
	sums := make([]core.Point2D, m.K)
	counts := make([]int, m.K)
	for i, p := range m.Points {
		k := m.Assignments[i]
		counts[k]++
		sums[k].X += p.X
		sums[k].Y += p.Y
	}
	for k := range m.Centroids {
		if counts[k] == 0 {
			m.Centroids[k] = m.Bounds.Sample(m.rnd)
			st.Reseeded = append(st.Reseeded, k)
			continue
		}
		m.Centroids[k] = core.Point2D{X: sums[k].X / float64(counts[k]), Y: sums[k].Y / float64(counts[k])}
	}

	m.steps++
	st.Inertia = m.Inertia()
	return st
}

// Inertia is the sum of squared distances from each point to its assigned centroid.
func (m *KMeans) Inertia() float64 {
	s := 0.0
	for i, p := range m.Points {
		s += stats.SquaredDistance(p, m.Centroids[m.Assignments[i]])
	}
	return s
}

// Labeled returns the points annotated with their current cluster index.
func (m *KMeans) Labeled() []core.LabeledPoint {
	out := make([]core.LabeledPoint, len(m.Points))
	for i, p := range m.Points {
		out[i] = core.LabeledPoint{Point2D: p, Label: m.Assignments[i]}
	}
	return out
}

// Predict returns the index of the centroid nearest to p.
func (m *KMeans) Predict(p core.Point2D) int {
	best, bestDist := 0, math.MaxFloat64
	for k, c := range m.Centroids {
		if d := stats.SquaredDistance(p, c); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
