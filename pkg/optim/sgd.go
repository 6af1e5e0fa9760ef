// Package optim holds the update rule shared by the gradient-descent engines:
// linear and logistic regression step their (w, b) pair through it and the
// dense network steps each layer's weight and bias storage.
package optim

import "gonum.org/v1/gonum/floats"

// SGD is full-batch gradient descent with a fixed learning rate.
type SGD struct{ LearningRate float64 }

func NewSGD(lr float64) *SGD { return &SGD{LearningRate: lr} }

// Step moves params against grads in place: params[i] -= lr·grads[i].
// It panics if the lengths differ.
func (o *SGD) Step(params, grads []float64) {
	floats.AddScaled(params, -o.LearningRate, grads)
}
