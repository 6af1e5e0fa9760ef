package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/data"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
)

func blobPoints(t *testing.T) []core.Point2D {
	t.Helper()
	pts, err := data.Blobs(core.NewRand(11), 3, 40, 0.05)
	require.NoError(t, err)
	return core.Points(pts)
}

func TestKMeansAssignmentsStayInRange(t *testing.T) {
	pts := blobPoints(t)
	km, err := model.NewKMeans(pts, 3, model.WithKMeansRandomState(5))
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		st := km.Step()
		require.LessOrEqual(t, st.InertiaAssigned, st.InertiaBefore+1e-12, "step %d", st.Step)
		for _, a := range km.Assignments {
			require.GreaterOrEqual(t, a, 0)
			require.Less(t, a, 3)
		}
	}
	require.Equal(t, 15, km.Steps())
}

func TestKMeansAdvanceResumesAndReplays(t *testing.T) {
	pts := blobPoints(t)
	fresh := func(target int) *model.KMeans {
		km, err := model.NewKMeans(pts, 4, model.WithKMeansRandomState(99))
		require.NoError(t, err)
		require.NoError(t, km.Advance(target))
		return km
	}

	km := fresh(4)
	require.NoError(t, km.Advance(9))
	want := fresh(9)
	require.Equal(t, want.Centroids, km.Centroids)
	require.Equal(t, want.Assignments, km.Assignments)

	require.NoError(t, km.Advance(2))
	require.Equal(t, 2, km.Steps())
	require.Equal(t, fresh(2).Centroids, km.Centroids)

	require.ErrorIs(t, km.Advance(-1), model.ErrInvalidParameter)
}

func TestKMeansReseedsEmptyClusters(t *testing.T) {
	pts := make([]core.Point2D, 10)
	for i := range pts {
		pts[i] = core.Point2D{X: 0.5, Y: 0.5}
	}
	km, err := model.NewKMeans(pts, 3, model.WithKMeansRandomState(1))
	require.NoError(t, err)
	st := km.Step()
	require.Len(t, st.Reseeded, 2)
	for _, c := range km.Centroids {
		require.True(t, core.UnitBounds.Contains(c))
	}
	require.Zero(t, km.Inertia())
}

func TestKMeansSeparatesBlobs(t *testing.T) {
	pts := []core.Point2D{{X: 0.1, Y: 0.1}, {X: 0.12, Y: 0.1}, {X: 0.9, Y: 0.9}, {X: 0.88, Y: 0.9}}
	km, err := model.NewKMeans(pts, 2, model.WithKMeansRandomState(3))
	require.NoError(t, err)
	// keep stepping until no centroid is left empty by the initial draw
	require.NoError(t, km.Run(50))
	lab := km.Labeled()
	require.Equal(t, lab[0].Label, lab[1].Label)
	require.Equal(t, lab[2].Label, lab[3].Label)
	require.NotEqual(t, lab[0].Label, lab[2].Label)
	require.Equal(t, lab[0].Label, km.Predict(core.Point2D{X: 0, Y: 0}))
}

func TestKMeansValidation(t *testing.T) {
	_, err := model.NewKMeans(nil, 2)
	require.ErrorIs(t, err, model.ErrEmptyDataset)
	_, err = model.NewKMeans([]core.Point2D{{}}, 0)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
}
