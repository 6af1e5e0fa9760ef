package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
)

// SquaredDistance is the squared Euclidean distance. Use it when only the
// ordering of distances matters.
func SquaredDistance(a, b core.Point2D) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Euclidean is the square root of SquaredDistance.
func Euclidean(a, b core.Point2D) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// VecDistance is the Euclidean distance between two equal length vectors.
func VecDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
