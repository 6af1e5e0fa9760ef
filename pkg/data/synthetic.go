package data

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
)

// ErrInvalidArgument is returned by generators asked for a negative size,
// negative noise or an unknown shape.
var ErrInvalidArgument = errors.New("data: invalid argument")

func invalidArg(name string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidArgument, name, v)
}

// MaxSVMPoints caps the kernel-margin essay's training set.
const MaxSVMPoints = 15

func clamp01(v float64) float64 { return math.Min(1, math.Max(0, v)) }

func uniform(rnd *rand.Rand, lo, hi float64) float64 { return lo + (hi-lo)*rnd.Float64() }

// Blobs draws perCluster Gaussian points (sd = spread) around k centres spaced
// evenly on a circle of radius 0.3 about (0.5, 0.5). Labels are the blob index
// and coordinates are clamped to the unit square.
func Blobs(rnd *rand.Rand, k, perCluster int, spread float64) ([]core.LabeledPoint, error) {
	if k < 1 {
		return nil, invalidArg("k", k)
	}
	if perCluster < 1 {
		return nil, invalidArg("perCluster", perCluster)
	}
	if spread < 0 {
		return nil, invalidArg("spread", spread)
	}
	out := make([]core.LabeledPoint, 0, k*perCluster)
	for c := range k {
		cx, cy := 0.5, 0.5
		if k > 1 {
			a := 2 * math.Pi * float64(c) / float64(k)
			cx, cy = 0.5+0.3*math.Cos(a), 0.5+0.3*math.Sin(a)
		}
		for range perCluster {
			out = append(out, core.LabeledPoint{
				Point2D: core.Point2D{
					X: clamp01(cx + rnd.NormFloat64()*spread),
					Y: clamp01(cy + rnd.NormFloat64()*spread),
				},
				Label: c,
			})
		}
	}
	return out, nil
}

// dbscanCentres are the fixed dense regions of the DBSCAN essay.
var dbscanCentres = []core.Point2D{{X: 0.25, Y: 0.3}, {X: 0.7, Y: 0.25}, {X: 0.5, Y: 0.72}}

// DBSCANPoints returns three tight groups of 20 points followed by
// noiseCount uniform points over the unit square. Group points carry their
// group index; noise points carry -1.
func DBSCANPoints(rnd *rand.Rand, noiseCount int) ([]core.LabeledPoint, error) {
	if noiseCount < 0 {
		return nil, invalidArg("noiseCount", noiseCount)
	}
	const perGroup = 20
	out := make([]core.LabeledPoint, 0, len(dbscanCentres)*perGroup+noiseCount)
	for g, c := range dbscanCentres {
		for range perGroup {
			out = append(out, core.LabeledPoint{
				Point2D: core.Point2D{
					X: clamp01(c.X + rnd.NormFloat64()*0.04),
					Y: clamp01(c.Y + rnd.NormFloat64()*0.04),
				},
				Label: g,
			})
		}
	}
	for range noiseCount {
		out = append(out, core.LabeledPoint{Point2D: core.UnitBounds.Sample(rnd), Label: -1})
	}
	return out, nil
}

// LinearPoints samples x uniformly in [-1, 1] and y = 2x + 1 + noise·U(-1, 1).
func LinearPoints(rnd *rand.Rand, n int, noise float64) ([]core.Point2D, error) {
	if n < 1 {
		return nil, invalidArg("n", n)
	}
	if noise < 0 {
		return nil, invalidArg("noise", noise)
	}
	out := make([]core.Point2D, n)
	for i := range out {
		x := uniform(rnd, -1, 1)
		out[i] = core.Point2D{X: x, Y: 2*x + 1 + noise*uniform(rnd, -1, 1)}
	}
	return out, nil
}

// LogisticPoints samples x uniformly in [-2, 2] and labels it 1 when
// sigmoid(3x) perturbed by noise·U(-0.5, 0.5) exceeds 0.5. Y holds the label
// so the points plot on the probability axis.
func LogisticPoints(rnd *rand.Rand, n int, noise float64) ([]core.LabeledPoint, error) {
	if n < 1 {
		return nil, invalidArg("n", n)
	}
	if noise < 0 {
		return nil, invalidArg("noise", noise)
	}
	out := make([]core.LabeledPoint, n)
	for i := range out {
		x := uniform(rnd, -2, 2)
		p := 1/(1+math.Exp(-3*x)) + noise*uniform(rnd, -0.5, 0.5)
		label := 0
		if p > 0.5 {
			label = 1
		}
		out[i] = core.LabeledPoint{Point2D: core.Point2D{X: x, Y: float64(label)}, Label: label}
	}
	return out, nil
}

// Ring samples n points on an annulus centred at the origin with mean radius
// radius and radial thickness width.
func Ring(rnd *rand.Rand, n int, radius, width float64) ([]core.Point2D, error) {
	if n < 1 {
		return nil, invalidArg("n", n)
	}
	if !(radius > 0) {
		return nil, invalidArg("radius", radius)
	}
	if width < 0 {
		return nil, invalidArg("width", width)
	}
	out := make([]core.Point2D, n)
	for i := range out {
		a := uniform(rnd, 0, 2*math.Pi)
		r := radius + width*uniform(rnd, -0.5, 0.5)
		out[i] = core.Point2D{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return out, nil
}

// SVMPoints returns n (at most MaxSVMPoints) points with alternating labels
// 1, 0, 1, ... For "linear" the classes are blobs around (0.5, 0.5) and
// (-0.5, -0.5); for "rbf" class 1 is an inner ring of radius 0.3 and class 0
// an outer ring of radius 0.8. noise widens both shapes.
func SVMPoints(rnd *rand.Rand, n int, noise float64, kernel string) ([]core.LabeledPoint, error) {
	if n < 1 || n > MaxSVMPoints {
		return nil, invalidArg("n", n)
	}
	if noise < 0 {
		return nil, invalidArg("noise", noise)
	}
	out := make([]core.LabeledPoint, n)
	switch kernel {
	case "linear":
		for i := range out {
			label, c := 1, 0.5
			if i%2 == 1 {
				label, c = 0, -0.5
			}
			spread := 0.15 + 0.3*noise
			out[i] = core.LabeledPoint{
				Point2D: core.Point2D{X: c + spread*uniform(rnd, -1, 1), Y: c + spread*uniform(rnd, -1, 1)},
				Label:   label,
			}
		}
	case "rbf":
		for i := range out {
			label, r := 1, 0.3
			if i%2 == 1 {
				label, r = 0, 0.8
			}
			r += 0.2 * noise * uniform(rnd, -1, 1)
			a := uniform(rnd, 0, 2*math.Pi)
			out[i] = core.LabeledPoint{Point2D: core.Point2D{X: r * math.Cos(a), Y: r * math.Sin(a)}, Label: label}
		}
	default:
		return nil, invalidArg("kernel", kernel)
	}
	return out, nil
}
