package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

// NeuronXY is the drawing position of neuron j in a layer of width n at
// column layer: layers are one unit apart and centred on y = 0.
func NeuronXY(layer, j, n int) plotter.XY {
	return plotter.XY{X: float64(layer), Y: float64(n-1)/2 - float64(j)}
}

// Network draws the perceptron as a layered graph. Edge width follows the
// weight magnitude and colour its sign; nodes are labelled with their
// activation for the fixed input.
func Network(m *model.Perceptron) (*plot.Plot, error) {
	act := m.Config.Activation
	p := newPlot(fmt.Sprintf("Perceptron  %s  step %d  MSE %.5f", act.Formula(), m.Steps(), m.MSE()), "", "")
	p.HideAxes()

	sizes := m.Network.Sizes()
	for l, layer := range m.Network.Layers {
		for j := range layer.Outputs() {
			for i := range layer.Inputs() {
				w := layer.Weights.At(j, i)
				style := draw.LineStyle{Color: positive, Width: vg.Points(0.5 + 2*math.Min(math.Abs(w), 2))}
				if w < 0 {
					style.Color = negative
				}
				if err := addSegment(p, NeuronXY(l, i, sizes[l]), NeuronXY(l+1, j, sizes[l+1]), style); err != nil {
					return nil, err
				}
			}
		}
	}

	var xys plotter.XYs
	var labels []string
	for l, a := range m.Activations() {
		for j, v := range a {
			xys = append(xys, NeuronXY(l, j, len(a)))
			labels = append(labels, fmt.Sprintf("%.3f", v))
		}
	}
	if err := addScatter(p, xys, glyph(black, 8, draw.RingGlyph{}), ""); err != nil {
		return nil, err
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	lbl.Offset = vg.Point{X: vg.Points(10)}
	p.Add(lbl)

	widest := 0
	for _, s := range sizes {
		widest = max(widest, s)
	}
	p.X.Min, p.X.Max = -0.5, float64(len(sizes)-1)+0.8
	p.Y.Min, p.Y.Max = -float64(widest)/2, float64(widest)/2
	return p, nil
}
