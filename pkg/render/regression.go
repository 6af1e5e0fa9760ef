package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

// Linear draws the training points and the current fitted line.
func Linear(m *model.LinearRegression, pts []core.Point2D) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Linear regression  step %d  w=%.3f b=%.3f  MSE %.4f", m.Steps(), m.W, m.B, m.MSE()), "x", "y")
	b := core.BoundsOf(pts, 0.1)
	if err := addScatter(p, toXYs(pts), glyph(positive, 2.5, draw.CircleGlyph{}), "data"); err != nil {
		return nil, err
	}
	fit := plotter.NewFunction(m.Predict)
	fit.XMin, fit.XMax = b.MinX, b.MaxX
	fit.Color = negative
	fit.Width = vg.Points(2)
	p.Add(fit)
	p.Legend.Add("fit", fit)
	setBounds(p, b)
	return p, nil
}

// Logistic draws the labelled points on the probability axis, the sigmoid
// curve, the probability threshold and, when defined, the boundary in x.
func Logistic(m *model.LogisticRegression, pts []core.LabeledPoint) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Logistic regression  step %d  error %.1f%%  loss %.3f", m.Steps(), 100*m.ErrorRate(), m.Loss()), "x", "p(y=1)")
	b := core.BoundsOf(core.Points(pts), 0.1)
	b.MinY, b.MaxY = -0.1, 1.1

	groups := groupByLabel(pts)
	for _, k := range sortedLabels(groups) {
		if err := addScatter(p, groups[k], glyph(ClassColor(k), 2.5, draw.CircleGlyph{}), fmt.Sprintf("class %d", k)); err != nil {
			return nil, err
		}
	}
	curve := plotter.NewFunction(m.PredictProba)
	curve.XMin, curve.XMax = b.MinX, b.MaxX
	curve.Color = black
	curve.Width = vg.Points(2)
	p.Add(curve)

	dashed := draw.LineStyle{Color: noiseColor, Width: vg.Points(1), Dashes: []vg.Length{vg.Points(4), vg.Points(3)}}
	t := m.DecisionBoundary
	if err := addSegment(p, plotter.XY{X: b.MinX, Y: t}, plotter.XY{X: b.MaxX, Y: t}, dashed); err != nil {
		return nil, err
	}
	if x, ok := m.BoundaryX(); ok && x >= b.MinX && x <= b.MaxX {
		if err := addSegment(p, plotter.XY{X: x, Y: b.MinY}, plotter.XY{X: x, Y: b.MaxY}, draw.LineStyle{Color: negative, Width: vg.Points(1.5)}); err != nil {
			return nil, err
		}
	}
	setBounds(p, b)
	return p, nil
}
