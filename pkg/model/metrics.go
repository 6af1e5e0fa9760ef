package model

import "gonum.org/v1/gonum/stat"

// R2 is the coefficient of determination; 0 when the targets are constant.
func R2(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 || stat.Variance(yTrue, nil) == 0 {
		return 0
	}
	return stat.RSquaredFrom(yPred, yTrue, nil)
}

// Accuracy is the fraction of positions where the two label slices agree.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	hits := 0
	for i, t := range yTrue {
		if t == yPred[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(yTrue))
}

// ErrorRate is 1 - Accuracy, and 0 for empty input.
func ErrorRate(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	return 1 - Accuracy(yTrue, yPred)
}

// BinaryPredFromProba labels p >= threshold as class 1.
func BinaryPredFromProba(proba []float64, threshold float64) []int {
	out := make([]int, len(proba))
	for i, p := range proba {
		if p >= threshold {
			out[i] = 1
		}
	}
	return out
}
