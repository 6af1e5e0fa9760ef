package NeuralNetwork

import (
	"fmt"
	"math"
)

func Sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

func SigmoidPrime(x float64) float64 { s := Sigmoid(x); return s * (1 - s) }

func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func ReLUPrime(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Activation is the closed set of layer non-linearities. Derivatives are
// expressed in terms of the layer output, which is what backprop keeps around.
type Activation interface {
	Name() string
	Apply(x float64) float64
	DerivativeFromOutput(y float64) float64
	Formula() string
}

type sigmoidActivation struct{}

func (sigmoidActivation) Name() string                           { return "sigmoid" }
func (sigmoidActivation) Apply(x float64) float64                { return Sigmoid(x) }
func (sigmoidActivation) DerivativeFromOutput(y float64) float64 { return y * (1 - y) }
func (sigmoidActivation) Formula() string                        { return "σ(x) = 1 / (1 + e^-x)" }

type reluActivation struct{}

func (reluActivation) Name() string                           { return "relu" }
func (reluActivation) Apply(x float64) float64                { return ReLU(x) }
func (reluActivation) DerivativeFromOutput(y float64) float64 { return ReLUPrime(y) }
func (reluActivation) Formula() string                        { return "ReLU(x) = max(0, x)" }

type identityActivation struct{}

func (identityActivation) Name() string                         { return "identity" }
func (identityActivation) Apply(x float64) float64              { return x }
func (identityActivation) DerivativeFromOutput(float64) float64 { return 1 }
func (identityActivation) Formula() string                      { return "f(x) = x" }

var (
	SigmoidActivation  Activation = sigmoidActivation{}
	ReLUActivation     Activation = reluActivation{}
	IdentityActivation Activation = identityActivation{}
)

// Activations lists the supported variants in display order.
func Activations() []Activation {
	return []Activation{SigmoidActivation, ReLUActivation, IdentityActivation}
}

// ActivationByName resolves "sigmoid", "relu" or "identity".
func ActivationByName(name string) (Activation, error) {
	for _, a := range Activations() {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("nn: unknown activation %q", name)
}
