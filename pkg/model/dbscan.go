package model

import (
	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/stats"
)

// DBSCAN point labels. Cluster ids start at 1.
const (
	Unvisited = -2
	Noise     = -1
)

// DBSCAN is density based clustering over a planar point set.
type DBSCAN struct {
	Epsilon   float64
	MinPoints int
}

// DBSCANResult is the labelling of one Fit call.
type DBSCANResult struct {
	Labels   []int
	Core     []bool // neighbourhood had at least MinPoints members
	Clusters int
}

// NewDBSCAN validates epsilon > 0 and minPoints >= 1.
func NewDBSCAN(epsilon float64, minPoints int) (*DBSCAN, error) {
	if !(epsilon > 0) {
		return nil, invalidParam("epsilon", epsilon)
	}
	if minPoints < 1 {
		return nil, invalidParam("minPoints", minPoints)
	}
	return &DBSCAN{Epsilon: epsilon, MinPoints: minPoints}, nil
}

// neighbours returns every other point within epsilon of points[i].
func (d *DBSCAN) neighbours(points []core.Point2D, i int) []int {
	var out []int
	for j, p := range points {
		if j != i && stats.Euclidean(points[i], p) <= d.Epsilon {
			out = append(out, j)
		}
	}
	return out
}

// Fit labels every point. Points are visited in index order; a point keeps
// the first cluster that reaches it.
func (d *DBSCAN) Fit(points []core.Point2D) *DBSCANResult {
	res := &DBSCANResult{
		Labels: make([]int, len(points)),
		Core:   make([]bool, len(points)),
	}
	for i := range res.Labels {
		res.Labels[i] = Unvisited
	}

	for i := range points {
		if res.Labels[i] != Unvisited {
			continue
		}
		nbrs := d.neighbours(points, i)
		if len(nbrs) < d.MinPoints {
			res.Labels[i] = Noise
			continue
		}
		res.Clusters++
		id := res.Clusters
		res.Labels[i] = id
		res.Core[i] = true

		queued := make(map[int]bool, len(nbrs)+1)
		queued[i] = true
		for _, n := range nbrs {
			queued[n] = true
		}
		frontier := append([]int(nil), nbrs...)
		for q := 0; q < len(frontier); q++ {
			j := frontier[q]
			switch res.Labels[j] {
			case Noise:
				res.Labels[j] = id
			case Unvisited:
				res.Labels[j] = id
				jn := d.neighbours(points, j)
				if len(jn) < d.MinPoints {
					continue
				}
				res.Core[j] = true
				for _, n := range jn {
					if !queued[n] {
						queued[n] = true
						frontier = append(frontier, n)
					}
				}
			}
		}
	}
	return res
}

// NoiseCount is the number of points labelled Noise.
func (r *DBSCANResult) NoiseCount() int {
	n := 0
	for _, l := range r.Labels {
		if l == Noise {
			n++
		}
	}
	return n
}

// Labeled pairs the input points with their labels.
func (r *DBSCANResult) Labeled(points []core.Point2D) []core.LabeledPoint {
	out := make([]core.LabeledPoint, len(points))
	for i, p := range points {
		out[i] = core.LabeledPoint{Point2D: p, Label: r.Labels[i]}
	}
	return out
}
