package NeuralNetwork

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// probClip keeps BCE finite at saturated probabilities.
const probClip = 1e-12

// MSE returns mean((pred-true)²) and its gradient with respect to pred.
func MSE(yTrue, yPred []float64) (float64, []float64) {
	if len(yTrue) == 0 {
		return 0, nil
	}
	n := float64(len(yTrue))
	grad := make([]float64, len(yTrue))
	floats.SubTo(grad, yPred, yTrue)
	loss := floats.Dot(grad, grad) / n
	floats.Scale(2/n, grad)
	return loss, grad
}

// BCE returns the mean binary cross-entropy of probabilities yPred against
// 0/1 targets, and its gradient (p-y)/n taken on the clipped probabilities.
func BCE(yTrue, yPred []float64) (float64, []float64) {
	if len(yTrue) == 0 {
		return 0, nil
	}
	n := float64(len(yTrue))
	grad := make([]float64, len(yTrue))
	loss := 0.0
	for i, y := range yTrue {
		p := math.Min(math.Max(yPred[i], probClip), 1-probClip)
		loss -= y*math.Log(p) + (1-y)*math.Log(1-p)
		grad[i] = (p - y) / n
	}
	return loss / n, grad
}
