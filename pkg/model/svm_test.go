package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/data"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

func TestSVMTwoPointExpansion(t *testing.T) {
	pts := []core.LabeledPoint{
		{Point2D: core.Point2D{X: 1}, Label: 1},
		{Point2D: core.Point2D{X: -1}, Label: 0},
	}
	m, err := model.NewSVM(0.1, model.LinearKernel{})
	require.NoError(t, err)
	require.NoError(t, m.Fit(pts))
	require.Equal(t, []float64{2, -2}, m.RawDecisions())
	require.Equal(t, []float64{0.1, -0.1}, m.Coefficients())

	d, err := m.Decision(core.Point2D{X: 2})
	require.NoError(t, err)
	require.InDelta(t, 0.4, d, 1e-12)
	c, err := m.Classify(core.Point2D{X: -2})
	require.NoError(t, err)
	require.Equal(t, 0, c)
	require.True(t, m.IsSupportVector(0))
	require.Equal(t, 1.0, m.Accuracy())

	// With C = 1 both raw scores sit outside 1/C: no coefficients, a zero
	// surface, and every point classified positive.
	m.C = 1
	require.NoError(t, m.Fit(pts))
	require.Equal(t, []float64{0, 0}, m.Coefficients())
	c, err = m.Classify(core.Point2D{X: -2})
	require.NoError(t, err)
	require.Equal(t, 1, c)
}

func TestSVMCoefficientsOnlyInsideMargin(t *testing.T) {
	pts, err := data.SVMPoints(core.NewRand(13), data.MaxSVMPoints, 0, "linear")
	require.NoError(t, err)
	for _, C := range []float64{0.1, 0.5, 1, 5, 10} {
		m, err := model.NewSVM(C, model.LinearKernel{})
		require.NoError(t, err)
		require.NoError(t, m.Fit(pts))
		raw := m.RawDecisions()
		for i, a := range m.Coefficients() {
			if a == 0 {
				require.GreaterOrEqual(t, math.Abs(raw[i]), 1/C)
				continue
			}
			require.Less(t, math.Abs(raw[i]), 1/C, "C=%v i=%d", C, i)
			require.Equal(t, C, math.Abs(a))
			if pts[i].Label == 1 {
				require.Greater(t, a, 0.0)
			} else {
				require.Less(t, a, 0.0)
			}
		}
	}
}

func TestRBFKernel(t *testing.T) {
	k, err := model.ParseKernel("rbf", 2)
	require.NoError(t, err)
	a, b := core.Point2D{X: 0, Y: 0}, core.Point2D{X: 1, Y: 1}
	require.InDelta(t, math.Exp(-4), k.Eval(a, b), 1e-12)
	require.Equal(t, 1.0, k.Eval(a, a))
	require.Equal(t, "rbf", k.Name())

	_, err = model.ParseKernel("rbf", 0)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
	_, err = model.ParseKernel("poly", 1)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestSVMOnRings(t *testing.T) {
	pts, err := data.SVMPoints(core.NewRand(14), data.MaxSVMPoints, 0, "rbf")
	require.NoError(t, err)
	m, err := model.NewSVM(0.1, model.RBFKernel{Gamma: 2})
	require.NoError(t, err)
	require.NoError(t, m.Fit(pts))
	// With 8 points of one class and 7 of the other no raw score reaches
	// 1/C = 10, so every point keeps a coefficient.
	for _, a := range m.Coefficients() {
		require.NotZero(t, a)
	}
	for i := range pts {
		d, err := m.Decision(pts[i].Point2D)
		require.NoError(t, err)
		require.Equal(t, math.Abs(d) <= model.SupportVectorMargin, m.IsSupportVector(i))
	}
}

func TestSVMValidation(t *testing.T) {
	_, err := model.NewSVM(0, model.LinearKernel{})
	require.ErrorIs(t, err, model.ErrInvalidParameter)
	_, err = model.NewSVM(1, nil)
	require.ErrorIs(t, err, model.ErrInvalidParameter)

	m, err := model.NewSVM(1, model.LinearKernel{})
	require.NoError(t, err)
	_, err = m.Classify(core.Point2D{})
	require.ErrorIs(t, err, model.ErrNotTrained)
	require.False(t, m.IsSupportVector(0))
	require.ErrorIs(t, m.Fit(nil), model.ErrEmptyDataset)
}

func TestDecisionGrid(t *testing.T) {
	g, err := model.SampleGrid(core.UnitBounds, 2, 2, func(p core.Point2D) float64 { return p.X + 2*p.Y })
	require.NoError(t, err)
	c, r := g.Dims()
	require.Equal(t, 2, c)
	require.Equal(t, 2, r)
	require.Equal(t, 0.25, g.X(0))
	require.Equal(t, 0.75, g.Y(1))
	require.InDelta(t, 0.75+2*0.25, g.Z(1, 0), 1e-12)
	require.InDelta(t, 0.25+2*0.75, g.Z(0, 1), 1e-12)

	_, err = model.SampleGrid(core.UnitBounds, 0, 2, nil)
	require.ErrorIs(t, err, model.ErrInvalidParameter)

	tree := model.NewDecisionTreeClassifier()
	_, err = model.ClassifierGrid(core.UnitBounds, 3, 3, func(p core.Point2D) (int, error) {
		return tree.PredictOne(p.Vec())
	})
	require.ErrorIs(t, err, model.ErrNotTrained)
}
