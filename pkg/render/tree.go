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

// NodePos is where a tree node is drawn: leaves sit on consecutive integer
// columns in left-to-right order, parents are centred over their children
// and Y is minus the depth.
type NodePos struct {
	Node   model.Node
	X, Y   float64
	Parent int // index into the layout, -1 for the root
}

// TreeLayout places every node of the tree rooted at root, in pre-order.
func TreeLayout(root model.Node) []NodePos {
	var out []NodePos
	leaf := 0
	var place func(n model.Node, depth, parent int) float64
	place = func(n model.Node, depth, parent int) float64 {
		idx := len(out)
		out = append(out, NodePos{Node: n, Y: -float64(depth), Parent: parent})
		switch v := n.(type) {
		case *model.Split:
			l := place(v.Left, depth+1, idx)
			r := place(v.Right, depth+1, idx)
			out[idx].X = (l + r) / 2
		default:
			out[idx].X = float64(leaf)
			leaf++
		}
		return out[idx].X
	}
	if root != nil {
		place(root, 0, -1)
	}
	return out
}

func nameOr(names []string, i int, prefix string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s%d", prefix, i)
}

// NodeLabel is the text drawn next to a node.
func NodeLabel(n model.Node, features, classes []string) string {
	switch v := n.(type) {
	case *model.Split:
		return fmt.Sprintf("%s <= %.2f\nimpurity %.3f\nn=%d", nameOr(features, v.Feature, "x"), v.Threshold, v.Impurity, v.Samples)
	case *model.Leaf:
		return fmt.Sprintf("%s\nimpurity %.3f\nn=%d", nameOr(classes, v.Value, "class "), v.Impurity, v.Samples)
	}
	return ""
}

func majority(n model.Node) int {
	var counts []int
	switch v := n.(type) {
	case *model.Split:
		counts = v.Counts
	case *model.Leaf:
		return v.Value
	}
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

// Tree draws the node-link diagram of a fitted tree.
func Tree(root model.Node, features, classes []string) (*plot.Plot, error) {
	if root == nil {
		return nil, model.ErrNotTrained
	}
	p := newPlot(fmt.Sprintf("Decision tree  depth %d  %d leaves", model.Depth(root), model.LeafCount(root)), "", "")
	p.HideAxes()

	layout := TreeLayout(root)
	edge := draw.LineStyle{Color: color.Gray{Y: 120}, Width: vg.Points(1)}
	for _, np := range layout {
		if np.Parent < 0 {
			continue
		}
		parent := layout[np.Parent]
		if err := addSegment(p, plotter.XY{X: parent.X, Y: parent.Y}, plotter.XY{X: np.X, Y: np.Y}, edge); err != nil {
			return nil, err
		}
	}

	xys := make(plotter.XYs, len(layout))
	labels := make([]string, len(layout))
	for i, np := range layout {
		xys[i] = plotter.XY{X: np.X, Y: np.Y}
		labels[i] = NodeLabel(np.Node, features, classes)
		shape := draw.GlyphDrawer(draw.SquareGlyph{})
		if _, ok := np.Node.(*model.Leaf); ok {
			shape = draw.CircleGlyph{}
		}
		if err := addScatter(p, xys[i:i+1], glyph(ClassColor(majority(np.Node)), 6, shape), ""); err != nil {
			return nil, err
		}
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].XAlign = draw.XCenter
		lbl.TextStyle[i].YAlign = draw.YTop
	}
	lbl.Offset = vg.Point{Y: -vg.Points(8)}
	p.Add(lbl)

	p.X.Min -= 0.6
	p.X.Max += 0.6
	p.Y.Min -= 0.8
	p.Y.Max += 0.3
	return p, nil
}

// DecisionRegions shades each cell of g by predicted class and overlays the
// labelled training points.
func DecisionRegions(title string, g *model.DecisionGrid, numClasses int, pts []core.LabeledPoint, xLabel, yLabel string) (*plot.Plot, error) {
	p := newPlot(title, xLabel, yLabel)
	hm := plotter.NewHeatMap(g, classPalette(numClasses))
	hm.Min, hm.Max = 0, float64(max(numClasses-1, 1))
	p.Add(hm)

	groups := groupByLabel(pts)
	for _, k := range sortedLabels(groups) {
		if err := addScatter(p, groups[k], glyph(ClassColor(k), 3, draw.CircleGlyph{}), ""); err != nil {
			return nil, err
		}
	}
	setBounds(p, g.Bounds)
	return p, nil
}

// Votes is a bar chart of the per-class vote counts of a forest decision.
func Votes(v model.VoteResult, classes []string) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Forest vote: %s", nameOr(classes, v.Final, "class ")), "", "trees")
	values := make(plotter.Values, len(v.Counts))
	names := make([]string, len(v.Counts))
	for i, c := range v.Counts {
		values[i] = float64(c)
		names[i] = nameOr(classes, i, "class ")
	}
	if len(values) == 0 {
		return p, nil
	}
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, err
	}
	bars.Color = ClassColor(v.Final)
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}
