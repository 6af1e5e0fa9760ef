package core

import (
	"math/rand"
	"time"
)

// Point2D is a planar sample. Engines never mutate a point once generated.
type Point2D struct {
	X, Y float64
}

// Vec returns the point as a two element slice for gonum helpers.
func (p Point2D) Vec() []float64 { return []float64{p.X, p.Y} }

// LabeledPoint carries a cluster id (K-Means, DBSCAN) or a 0/1 class label
// (SVM, logistic regression) next to the point.
type LabeledPoint struct {
	Point2D
	Label int
}

// Points strips the labels.
func Points(lp []LabeledPoint) []Point2D {
	out := make([]Point2D, len(lp))
	for i := range lp {
		out[i] = lp[i].Point2D
	}
	return out
}

// Bounds is an axis aligned rectangle used as sampling domain and plot range.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// UnitBounds is the [0,1]x[0,1] square the synthetic essays live in.
var UnitBounds = Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}

// Sample draws a uniformly distributed point inside b.
func (b Bounds) Sample(rnd *rand.Rand) Point2D {
	return Point2D{
		X: b.MinX + rnd.Float64()*(b.MaxX-b.MinX),
		Y: b.MinY + rnd.Float64()*(b.MaxY-b.MinY),
	}
}

// Contains reports whether p lies inside b (edges included).
func (b Bounds) Contains(p Point2D) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// BoundsOf returns the bounding box of pts padded by pad on each side.
func BoundsOf(pts []Point2D, pad float64) Bounds {
	if len(pts) == 0 {
		return UnitBounds
	}
	b := Bounds{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
	b.MinX -= pad
	b.MaxX += pad
	b.MinY -= pad
	b.MaxY += pad
	return b
}

// NewRand returns a generator seeded with seed. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
