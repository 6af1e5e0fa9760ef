package data_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/data"
)

func TestEmbeddedIris(t *testing.T) {
	iris := data.Iris()
	require.Len(t, iris, 150)

	counts := map[data.Species]int{}
	for _, s := range iris {
		counts[s.Species]++
		require.Greater(t, s.SepalLength, 4.0)
		require.Greater(t, s.SepalWidth, 1.9)
	}
	require.Equal(t, map[data.Species]int{data.Setosa: 50, data.Versicolor: 50, data.Virginica: 50}, counts)
	require.Equal(t, data.IrisSample{SepalLength: 5.1, SepalWidth: 3.5, Species: data.Setosa}, iris[0])

	X, y := data.IrisXY(iris)
	require.Len(t, X, 150)
	require.Equal(t, []float64{5.1, 3.5}, X[0])
	require.Equal(t, 2, y[149])

	// Each call returns an independent copy.
	iris[0].SepalLength = 0
	require.Equal(t, 5.1, data.Iris()[0].SepalLength)
}

func TestSpeciesJSON(t *testing.T) {
	b, err := json.Marshal(data.IrisSample{SepalLength: 6, SepalWidth: 3, Species: data.Virginica})
	require.NoError(t, err)
	require.JSONEq(t, `{"sepalLength":6,"sepalWidth":3,"species":"virginica"}`, string(b))

	_, err = data.LoadIris(strings.NewReader(`[{"sepalLength":1,"sepalWidth":1,"species":"rose"}]`))
	require.ErrorIs(t, err, data.ErrUnknownSpecies)

	sp, err := data.ParseSpecies("Iris-versicolor")
	require.NoError(t, err)
	require.Equal(t, data.Versicolor, sp)
	require.Equal(t, "versicolor", sp.String())

	for _, name := range []string{"iris-setosa", "IRIS-SETOSA", " Setosa "} {
		sp, err := data.ParseSpecies(name)
		require.NoError(t, err, name)
		require.Equal(t, data.Setosa, sp, name)
	}
	_, err = data.ParseSpecies("iris-")
	require.ErrorIs(t, err, data.ErrUnknownSpecies)
}

func TestReadIrisCSV(t *testing.T) {
	in := "sepal_length,sepal_width,species\n5.1,3.5,setosa\n7.0,3.2,Iris-versicolor\n"
	got, err := data.ReadIrisCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []data.IrisSample{
		{SepalLength: 5.1, SepalWidth: 3.5, Species: data.Setosa},
		{SepalLength: 7.0, SepalWidth: 3.2, Species: data.Versicolor},
	}, got)

	_, err = data.ReadIrisCSV(strings.NewReader("5.1,3.5,setosa\n5.0,abc,setosa\n"))
	require.ErrorIs(t, err, data.ErrMalformedRecord)
	require.Contains(t, err.Error(), "line 2")

	_, err = data.ReadIrisCSV(strings.NewReader(""))
	require.ErrorIs(t, err, data.ErrMalformedRecord)
}

func TestStreamIrisCSVSkipsBadRows(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("5.1,3.5,setosa\n")
	buf.WriteString("6.3,3.3\n")
	buf.WriteString("6.3,3.3,virginica\n")

	out := make(chan data.IrisSample)
	var skipped []int
	data.StreamIrisCSV(&buf, out, func(line int, err error) {
		assert.ErrorIs(t, err, data.ErrMalformedRecord)
		skipped = append(skipped, line)
	})
	var got []data.IrisSample
	for s := range out {
		got = append(got, s)
	}
	require.Len(t, got, 2)
	require.Equal(t, data.Virginica, got[1].Species)
	require.Equal(t, []int{2}, skipped)
}

func TestStreamIrisCSVStopsOnDone(t *testing.T) {
	in := strings.Repeat("5.1,3.5,setosa\n", 100)
	out := make(chan data.IrisSample)
	done := data.StreamIrisCSV(strings.NewReader(in), out, nil)
	<-out
	close(done)
	n := 0
	for range out {
		n++
	}
	require.Less(t, n, 99)
}

func TestBlobs(t *testing.T) {
	pts, err := data.Blobs(core.NewRand(1), 3, 10, 0.05)
	require.NoError(t, err)
	require.Len(t, pts, 30)
	for i, p := range pts {
		require.Equal(t, i/10, p.Label)
		require.True(t, core.UnitBounds.Contains(p.Point2D))
	}

	again, err := data.Blobs(core.NewRand(1), 3, 10, 0.05)
	require.NoError(t, err)
	require.Equal(t, pts, again)

	_, err = data.Blobs(core.NewRand(1), 0, 10, 0.05)
	require.ErrorIs(t, err, data.ErrInvalidArgument)
}

func TestDBSCANPoints(t *testing.T) {
	pts, err := data.DBSCANPoints(core.NewRand(3), 15)
	require.NoError(t, err)
	require.Len(t, pts, 75)
	for _, p := range pts[60:] {
		require.Equal(t, -1, p.Label)
	}
	_, err = data.DBSCANPoints(core.NewRand(3), -1)
	require.ErrorIs(t, err, data.ErrInvalidArgument)
}

func TestLinearPointsNoiseless(t *testing.T) {
	pts, err := data.LinearPoints(core.NewRand(4), 50, 0)
	require.NoError(t, err)
	for _, p := range pts {
		require.InDelta(t, 2*p.X+1, p.Y, 1e-12)
		require.LessOrEqual(t, math.Abs(p.X), 1.0)
	}
	noisy, err := data.LinearPoints(core.NewRand(4), 50, 0.5)
	require.NoError(t, err)
	for _, p := range noisy {
		require.LessOrEqual(t, math.Abs(p.Y-(2*p.X+1)), 0.5)
	}
}

func TestLogisticPointsNoiseless(t *testing.T) {
	pts, err := data.LogisticPoints(core.NewRand(5), 40, 0)
	require.NoError(t, err)
	for _, p := range pts {
		want := 0
		if p.X > 0 {
			want = 1
		}
		assert.Equal(t, want, p.Label, "x=%v", p.X)
		assert.Equal(t, float64(p.Label), p.Y)
	}
}

func TestRing(t *testing.T) {
	pts, err := data.Ring(core.NewRand(6), 100, 0.35, 0.1)
	require.NoError(t, err)
	for _, p := range pts {
		r := math.Hypot(p.X, p.Y)
		require.InDelta(t, 0.35, r, 0.05+1e-12)
	}
	_, err = data.Ring(core.NewRand(6), 10, 0, 0.1)
	require.ErrorIs(t, err, data.ErrInvalidArgument)
}

func TestSVMPoints(t *testing.T) {
	for _, k := range []string{"linear", "rbf"} {
		pts, err := data.SVMPoints(core.NewRand(7), data.MaxSVMPoints, 0.2, k)
		require.NoError(t, err, k)
		require.Len(t, pts, data.MaxSVMPoints)
		for i, p := range pts {
			require.Equal(t, 1-i%2, p.Label)
		}
	}
	_, err := data.SVMPoints(core.NewRand(7), data.MaxSVMPoints+1, 0, "linear")
	require.ErrorIs(t, err, data.ErrInvalidArgument)
	_, err = data.SVMPoints(core.NewRand(7), 5, 0, "poly")
	require.ErrorIs(t, err, data.ErrInvalidArgument)
}
