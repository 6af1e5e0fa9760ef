package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

// SOM draws the data, the neuron lattice linked along grid edges and the
// latest best matching unit.
func SOM(s *model.SOM) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Self-organising map  step %d  QE %.4f", s.Steps(), s.QuantizationError()), "x", "y")
	if err := addScatter(p, toXYs(s.Data), glyph(color.Gray{Y: 180}, 1.5, draw.CircleGlyph{}), "data"); err != nil {
		return nil, err
	}

	link := draw.LineStyle{Color: positive, Width: vg.Points(1)}
	weights := make([]core.Point2D, len(s.Neurons))
	for k, n := range s.Neurons {
		weights[k] = n.Weight()
		from := plotter.XY{X: n.X, Y: n.Y}
		if n.J+1 < s.GridSize {
			r := s.Neuron(n.I, n.J+1)
			if err := addSegment(p, from, plotter.XY{X: r.X, Y: r.Y}, link); err != nil {
				return nil, err
			}
		}
		if n.I+1 < s.GridSize {
			d := s.Neuron(n.I+1, n.J)
			if err := addSegment(p, from, plotter.XY{X: d.X, Y: d.Y}, link); err != nil {
				return nil, err
			}
		}
	}
	if err := addScatter(p, toXYs(weights), glyph(positive, 3, draw.CircleGlyph{}), "neurons"); err != nil {
		return nil, err
	}
	if bmu, ok := s.BMU(); ok {
		if err := addScatter(p, toXYs([]core.Point2D{bmu.Weight()}), glyph(negative, 6, draw.RingGlyph{}), "BMU"); err != nil {
			return nil, err
		}
	}
	setBounds(p, core.BoundsOf(append(weights, s.Data...), 0.05))
	return p, nil
}
