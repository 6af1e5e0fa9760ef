package render

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

func sortedLabels(groups map[int]plotter.XYs) []int {
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// KMeans draws points coloured by assignment and the centroids as crosses.
func KMeans(m *model.KMeans) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("K-Means  step %d  inertia %.3f", m.Steps(), m.Inertia()), "x", "y")
	setBounds(p, m.Bounds)

	groups := groupByLabel(m.Labeled())
	for _, k := range sortedLabels(groups) {
		if err := addScatter(p, groups[k], glyph(ClassColor(k), 2.5, draw.CircleGlyph{}), fmt.Sprintf("cluster %d", k+1)); err != nil {
			return nil, err
		}
	}
	for k, c := range m.Centroids {
		if err := addScatter(p, toXYs([]core.Point2D{c}), glyph(ClassColor(k), 7, draw.CrossGlyph{}), ""); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DBSCAN draws core points as filled circles, border points as rings and
// noise as grey crosses.
func DBSCAN(points []core.Point2D, res *model.DBSCANResult) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("DBSCAN  %d clusters  %d noise", res.Clusters, res.NoiseCount()), "x", "y")
	setBounds(p, core.BoundsOf(points, 0.05))

	coreXY := map[int]plotter.XYs{}
	borderXY := map[int]plotter.XYs{}
	var noise plotter.XYs
	for i, pt := range points {
		xy := plotter.XY{X: pt.X, Y: pt.Y}
		switch l := res.Labels[i]; {
		case l == model.Noise || l == model.Unvisited:
			noise = append(noise, xy)
		case res.Core[i]:
			coreXY[l] = append(coreXY[l], xy)
		default:
			borderXY[l] = append(borderXY[l], xy)
		}
	}
	for _, id := range sortedLabels(coreXY) {
		if err := addScatter(p, coreXY[id], glyph(ClassColor(id-1), 3, draw.CircleGlyph{}), fmt.Sprintf("cluster %d", id)); err != nil {
			return nil, err
		}
	}
	for _, id := range sortedLabels(borderXY) {
		if err := addScatter(p, borderXY[id], glyph(ClassColor(id-1), 3, draw.RingGlyph{}), ""); err != nil {
			return nil, err
		}
	}
	if err := addScatter(p, noise, glyph(noiseColor, 3, draw.CrossGlyph{}), "noise"); err != nil {
		return nil, err
	}
	return p, nil
}
