package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/stats"
)

func TestImpurityOfPureLabels(t *testing.T) {
	for _, labels := range [][]int{{0}, {2, 2, 2}, {1, 1}} {
		assert.Equal(t, 0.0, stats.Gini(labels), "gini %v", labels)
		assert.Equal(t, 0.0, stats.Entropy(labels), "entropy %v", labels)
	}
}

func TestImpurityOfEvenBinarySplit(t *testing.T) {
	labels := []int{0, 1, 0, 1, 1, 0}
	require.Equal(t, 0.5, stats.Gini(labels))
	require.Equal(t, 1.0, stats.Entropy(labels))
}

func TestImpurityIsPositiveForMixedLabels(t *testing.T) {
	labels := []int{0, 0, 0, 2}
	assert.InDelta(t, 1-(0.75*0.75+0.25*0.25), stats.Gini(labels), 1e-12)
	want := -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25))
	assert.InDelta(t, want, stats.Entropy(labels), 1e-12)
	// class 1 is absent and must not produce NaN
	assert.False(t, math.IsNaN(stats.Entropy(labels)))
}

func TestCountsFromIndices(t *testing.T) {
	require.Equal(t, []int{1, 0, 3}, stats.Counts([]int{2, 0, 2, 2}))
	require.Empty(t, stats.Counts(nil))
	require.Equal(t, 0.0, stats.GiniFromCounts([]int{0, 0}))
}

func TestDistances(t *testing.T) {
	a, b := core.Point2D{X: 0, Y: 0}, core.Point2D{X: 3, Y: 4}
	require.Equal(t, 25.0, stats.SquaredDistance(a, b))
	require.Equal(t, 5.0, stats.Euclidean(a, b))
	require.Equal(t, 5.0, stats.VecDistance(a.Vec(), b.Vec()))
}

func TestSummaries(t *testing.T) {
	x := []float64{3, -1, 4, 1}
	require.Equal(t, 1.75, stats.Mean(x))
	require.Equal(t, 27.0/4, stats.MeanSquare(x))
	require.Equal(t, 0.0, stats.Mean(nil))
}
