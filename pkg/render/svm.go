package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

// SVM shades the decision surface over b, draws the training points by class
// and rings the points inside the highlighted margin.
func SVM(m *model.SVM, b core.Bounds, resolution int) (*plot.Plot, error) {
	if _, err := m.Decision(core.Point2D{}); err != nil {
		return nil, err
	}
	g, err := model.SampleGrid(b, resolution, resolution, func(pt core.Point2D) float64 {
		d, _ := m.Decision(pt)
		return d
	})
	if err != nil {
		return nil, err
	}

	p := newPlot(fmt.Sprintf("SVM (%s, C=%.2f)  accuracy %.0f%%", m.Kernel.Name(), m.C, 100*m.Accuracy()), "x", "y")
	hm := plotter.NewHeatMap(g, palette.Heat(16, 0.6))
	// Symmetric range keeps the zero level in the middle of the palette.
	span := 0.0
	for _, v := range g.Values {
		span = math.Max(span, math.Abs(v))
	}
	if span == 0 {
		span = 1
	}
	hm.Min, hm.Max = -span, span
	p.Add(hm)

	groups := groupByLabel(m.Points)
	for _, k := range sortedLabels(groups) {
		if err := addScatter(p, groups[k], glyph(ClassColor(k), 3.5, draw.CircleGlyph{}), fmt.Sprintf("class %d", k)); err != nil {
			return nil, err
		}
	}
	var sv plotter.XYs
	for i, pt := range m.Points {
		if m.IsSupportVector(i) {
			sv = append(sv, plotter.XY{X: pt.X, Y: pt.Y})
		}
	}
	if err := addScatter(p, sv, glyph(black, 7, draw.RingGlyph{}), "support vector"); err != nil {
		return nil, err
	}
	setBounds(p, b)
	return p, nil
}
