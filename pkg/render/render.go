// Package render turns engine state into gonum/plot figures. Renderers only
// read the structures the engines expose and never re-run an algorithm.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
)

// DPI maps canvas pixels onto plot lengths.
const DPI = 96

var ErrBadSize = errors.New("render: canvas size must be positive")

// Size is a canvas size in pixels.
type Size struct {
	Width, Height int
}

// DefaultSize is the square canvas the essays are drawn on.
var DefaultSize = Size{Width: 480, Height: 480}

func (s Size) lengths() (vg.Length, vg.Length, error) {
	if s.Width < 1 || s.Height < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrBadSize, s.Width, s.Height)
	}
	return vg.Length(s.Width) * vg.Inch / DPI, vg.Length(s.Height) * vg.Inch / DPI, nil
}

// Encode writes p to w in the given format ("png", "svg", "pdf", ...).
func Encode(w io.Writer, p *plot.Plot, size Size, format string) error {
	width, height, err := size.lengths()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes p to path; the file extension selects the format.
func Save(p *plot.Plot, size Size, path string) error {
	width, height, err := size.lengths()
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}

var (
	noiseColor = color.Gray{Y: 150}
	black      = color.Black
	positive   = color.RGBA{R: 40, G: 90, B: 220, A: 255}
	negative   = color.RGBA{R: 220, G: 50, B: 40, A: 255}
)

// ClassColor is the colour of class (or cluster) index i; negative indices
// are drawn grey.
func ClassColor(i int) color.Color {
	if i < 0 {
		return noiseColor
	}
	return plotutil.Color(i)
}

// lighten mixes c with white for region backgrounds.
func lighten(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	mix := func(v uint32) uint8 { return uint8((v>>8)/3 + 170) }
	return color.RGBA{R: mix(r), G: mix(g), B: mix(b), A: 255}
}

// classPalette colours class indices 0..n-1 for decision-region heat maps.
type classPalette int

func (n classPalette) Colors() []color.Color {
	cs := make([]color.Color, max(int(n), 2))
	for i := range cs {
		cs[i] = lighten(ClassColor(i))
	}
	return cs
}

func toXYs(pts []core.Point2D) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

// addScatter adds xys with the given style, skipping empty sets so an
// empty group never widens the axes to infinity.
func addScatter(p *plot.Plot, xys plotter.XYs, style draw.GlyphStyle, legend string) error {
	if len(xys) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle = style
	p.Add(s)
	if legend != "" {
		p.Legend.Add(legend, s)
	}
	return nil
}

func addSegment(p *plot.Plot, a, b plotter.XY, style draw.LineStyle) error {
	l, err := plotter.NewLine(plotter.XYs{a, b})
	if err != nil {
		return err
	}
	l.LineStyle = style
	p.Add(l)
	return nil
}

func glyph(c color.Color, radius float64, shape draw.GlyphDrawer) draw.GlyphStyle {
	return draw.GlyphStyle{Color: c, Radius: vg.Points(radius), Shape: shape}
}

func setBounds(p *plot.Plot, b core.Bounds) {
	p.X.Min, p.X.Max = b.MinX, b.MaxX
	p.Y.Min, p.Y.Max = b.MinY, b.MaxY
}

// groupByLabel splits labelled points into per-label coordinate sets.
func groupByLabel(pts []core.LabeledPoint) map[int]plotter.XYs {
	groups := map[int]plotter.XYs{}
	for _, p := range pts {
		groups[p.Label] = append(groups[p.Label], plotter.XY{X: p.X, Y: p.Y})
	}
	return groups
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}
