package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/data"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

func TestFrameToIteration(t *testing.T) {
	cases := []struct{ frame, iterations, want int }{
		{0, 100, 1},
		{50, 100, 51},
		{100, 100, 100},
		{99, 10, 10},
		{10, 10, 2},
		{-5, 10, 1},
		{500, 10, 10},
		{30, 0, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, model.FrameToIteration(c.frame, c.iterations), "frame=%d iterations=%d", c.frame, c.iterations)
	}
}

func TestRangeClamp(t *testing.T) {
	require.Equal(t, 6, model.MaxDepthRange.ClampInt(9))
	require.Equal(t, 0.05, model.EpsilonRange.Clamp(0.01))
	require.Equal(t, 0.3, model.LearningRateRange.Clamp(0.3))
	require.True(t, model.IterationsRange.Contains(200))
	require.False(t, model.IterationsRange.Contains(201))
}

func TestLinearRegressionConvergesOnNoiselessLine(t *testing.T) {
	pts, err := data.LinearPoints(core.NewRand(8), 60, 0)
	require.NoError(t, err)
	lr, err := model.NewLinearRegression(pts, 0.5, 200)
	require.NoError(t, err)
	require.Zero(t, lr.W)
	require.Zero(t, lr.B)

	require.NoError(t, lr.AdvanceToFrame(100))
	require.Equal(t, 200, lr.Steps())
	require.Less(t, math.Abs(lr.W-2), 0.1)
	require.Less(t, math.Abs(lr.B-1), 0.1)
	require.Less(t, lr.MSE(), 1e-3)
	require.Greater(t, lr.R2(), 0.99)
	require.InDelta(t, 2*0.5+1, lr.Predict(0.5), 0.1)
}

func TestLinearRegressionFirstStepIsMeanGradient(t *testing.T) {
	pts := []core.Point2D{{X: 1, Y: 3}, {X: -1, Y: -1}, {X: 2, Y: 5}}
	lr, err := model.NewLinearRegression(pts, 0.1, 10)
	require.NoError(t, err)
	require.NoError(t, lr.Advance(1))
	// From (0, 0) the residual is -y: dw = -mean(x·y), db = -mean(y).
	require.InDelta(t, 0.1*(3+1+10)/3.0, lr.W, 1e-12)
	require.InDelta(t, 0.1*(3-1+5)/3.0, lr.B, 1e-12)
}

func TestLinearRegressionScrubbingReplays(t *testing.T) {
	pts, err := data.LinearPoints(core.NewRand(9), 30, 0.3)
	require.NoError(t, err)
	a, err := model.NewLinearRegression(pts, 0.2, 100)
	require.NoError(t, err)
	require.NoError(t, a.AdvanceToFrame(80))
	require.NoError(t, a.AdvanceToFrame(20))

	b, err := model.NewLinearRegression(pts, 0.2, 100)
	require.NoError(t, err)
	require.NoError(t, b.AdvanceToFrame(20))
	require.Equal(t, model.FrameToIteration(20, 100), a.Steps())
	require.Equal(t, b.W, a.W)
	require.Equal(t, b.B, a.B)
}

func TestLinearRegressionValidation(t *testing.T) {
	pts := []core.Point2D{{X: 1, Y: 1}}
	_, err := model.NewLinearRegression(nil, 0.1, 10)
	require.ErrorIs(t, err, model.ErrEmptyDataset)
	_, err = model.NewLinearRegression(pts, 0, 10)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
	_, err = model.NewLinearRegression(pts, 0.1, -1)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
	m, err := model.NewLinearRegression(pts, 0.1, 0)
	require.NoError(t, err)
	require.NoError(t, m.AdvanceToFrame(100))
	require.Zero(t, m.Steps())
	require.ErrorIs(t, m.Advance(-1), model.ErrInvalidParameter)
}

func TestLogisticRegressionLearnsThreshold(t *testing.T) {
	pts, err := data.LogisticPoints(core.NewRand(10), 80, 0)
	require.NoError(t, err)
	m, err := model.NewLogisticRegression(pts, 0.5, 200)
	require.NoError(t, err)
	require.Equal(t, 0.5, m.DecisionBoundary)
	require.InDelta(t, math.Ln2, m.Loss(), 1e-12)

	require.NoError(t, m.AdvanceToFrame(100))
	require.Greater(t, m.W, 0.0)
	require.Less(t, m.Loss(), math.Ln2)
	require.LessOrEqual(t, m.ErrorRate(), 0.1)
	require.Equal(t, 1, m.Predict(1.5))
	require.Equal(t, 0, m.Predict(-1.5))

	x, ok := m.BoundaryX()
	require.True(t, ok)
	require.InDelta(t, 0.5, m.PredictProba(x), 1e-9)
}

func TestLogisticDecisionBoundaryChangesErrorRate(t *testing.T) {
	pts := []core.LabeledPoint{
		{Point2D: core.Point2D{X: -1}, Label: 0},
		{Point2D: core.Point2D{X: 1}, Label: 1},
		{Point2D: core.Point2D{X: 2}, Label: 1},
		{Point2D: core.Point2D{X: -2}, Label: 0},
	}
	m, err := model.NewLogisticRegression(pts, 0.3, 50)
	require.NoError(t, err)
	// Untrained every probability is exactly 0.5, so the default boundary
	// predicts class 1 everywhere.
	require.Equal(t, 0.5, m.ErrorRate())
	require.NoError(t, m.SetDecisionBoundary(1))
	require.Equal(t, 0.5, m.ErrorRate())
	_, ok := m.BoundaryX()
	require.False(t, ok)

	require.NoError(t, m.Advance(50))
	require.NoError(t, m.SetDecisionBoundary(0.5))
	require.Zero(t, m.ErrorRate())
	require.ErrorIs(t, m.SetDecisionBoundary(1.5), model.ErrInvalidParameter)
}

func TestLogisticRegressionValidation(t *testing.T) {
	_, err := model.NewLogisticRegression(nil, 0.1, 1)
	require.ErrorIs(t, err, model.ErrEmptyDataset)
	_, err = model.NewLogisticRegression([]core.LabeledPoint{{Label: 2}}, 0.1, 1)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
}
