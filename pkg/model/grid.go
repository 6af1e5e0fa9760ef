package model

import "github.com/Gowtham0810-hype/ML-VIS/pkg/core"

// DecisionGrid is a classifier sampled at cell centres over a rectangle.
// Its Dims/X/Y/Z methods follow the column/row convention of gonum/plot
// heat maps, so renderers can draw it directly.
type DecisionGrid struct {
	Bounds core.Bounds
	Cols   int
	Rows   int
	Values []float64 // row-major, row 0 at MinY
}

// SampleGrid evaluates f at the centre of every cell of a cols×rows grid.
func SampleGrid(b core.Bounds, cols, rows int, f func(core.Point2D) float64) (*DecisionGrid, error) {
	if cols < 1 {
		return nil, invalidParam("cols", cols)
	}
	if rows < 1 {
		return nil, invalidParam("rows", rows)
	}
	g := &DecisionGrid{Bounds: b, Cols: cols, Rows: rows, Values: make([]float64, cols*rows)}
	for r := range rows {
		for c := range cols {
			g.Values[r*cols+c] = f(core.Point2D{X: g.X(c), Y: g.Y(r)})
		}
	}
	return g, nil
}

func (g *DecisionGrid) Dims() (c, r int) { return g.Cols, g.Rows }

func (g *DecisionGrid) Z(c, r int) float64 { return g.Values[r*g.Cols+c] }

func (g *DecisionGrid) X(c int) float64 {
	w := (g.Bounds.MaxX - g.Bounds.MinX) / float64(g.Cols)
	return g.Bounds.MinX + (float64(c)+0.5)*w
}

func (g *DecisionGrid) Y(r int) float64 {
	h := (g.Bounds.MaxY - g.Bounds.MinY) / float64(g.Rows)
	return g.Bounds.MinY + (float64(r)+0.5)*h
}

// ClassifierGrid samples a class-index predictor. Prediction errors abort
// sampling and are returned.
func ClassifierGrid(b core.Bounds, cols, rows int, predict func(core.Point2D) (int, error)) (*DecisionGrid, error) {
	var firstErr error
	g, err := SampleGrid(b, cols, rows, func(p core.Point2D) float64 {
		if firstErr != nil {
			return 0
		}
		v, err := predict(p)
		if err != nil {
			firstErr = err
		}
		return float64(v)
	})
	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return g, nil
}
