package loader

import "math/rand"

// Subsample draws max(1, floor(n·ratio)) distinct row indices, without replacement.
func Subsample(rnd *rand.Rand, n int, ratio float64) []int {
	if n == 0 {
		return nil
	}
	size := min(n, max(1, int(float64(n)*ratio)))
	return rnd.Perm(n)[:size]
}

// Split holds the two halves of a shuffled train/test partition.
type Split struct {
	XTrain, XTest [][]float64
	YTrain, YTest []int
}

// TrainTestSplit shuffles the rows and moves floor(n·testRatio) of them to
// the test half. Rows of X and y stay paired.
func TrainTestSplit(rnd *rand.Rand, X [][]float64, y []int, testRatio float64) Split {
	perm := rnd.Perm(len(X))
	cut := int(float64(len(X)) * testRatio)
	var s Split
	for k, row := range perm {
		if k < cut {
			s.XTest, s.YTest = append(s.XTest, X[row]), append(s.YTest, y[row])
			continue
		}
		s.XTrain, s.YTrain = append(s.XTrain, X[row]), append(s.YTrain, y[row])
	}
	return s
}
