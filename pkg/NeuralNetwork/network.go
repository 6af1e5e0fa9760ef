package NeuralNetwork

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/optim"
)

var (
	ErrBadShape      = errors.New("nn: layer sizes must be positive and at least input+output")
	ErrInputMismatch = errors.New("nn: input length does not match network")
)

// Layer is a dense layer: out = act(W·in + b).
type Layer struct {
	Weights *mat.Dense    // out x in
	Biases  *mat.VecDense // out
}

// NewLayer draws every weight and bias independently from U(-0.5, 0.5).
func NewLayer(in, out int, rnd *rand.Rand) *Layer {
	w := make([]float64, out*in)
	for i := range w {
		w[i] = rnd.Float64() - 0.5
	}
	b := make([]float64, out)
	for i := range b {
		b[i] = rnd.Float64() - 0.5
	}
	return &Layer{Weights: mat.NewDense(out, in, w), Biases: mat.NewVecDense(out, b)}
}

// Inputs is the fan-in of the layer.
func (l *Layer) Inputs() int { _, c := l.Weights.Dims(); return c }

// Outputs is the number of neurons in the layer.
func (l *Layer) Outputs() int { r, _ := l.Weights.Dims(); return r }

func (l *Layer) clone() *Layer {
	return &Layer{Weights: mat.DenseCopyOf(l.Weights), Biases: mat.VecDenseCopyOf(l.Biases)}
}

// Network is an ordered stack of dense layers sharing one activation.
type Network struct {
	Layers     []*Layer
	Activation Activation
}

// NewNetwork builds a network for sizes = [input, hidden..., output].
func NewNetwork(sizes []int, act Activation, rnd *rand.Rand) (*Network, error) {
	if len(sizes) < 2 {
		return nil, ErrBadShape
	}
	for _, s := range sizes {
		if s < 1 {
			return nil, ErrBadShape
		}
	}
	n := &Network{Activation: act}
	for i := 1; i < len(sizes); i++ {
		n.Layers = append(n.Layers, NewLayer(sizes[i-1], sizes[i], rnd))
	}
	return n, nil
}

// NewNetworkFromLayers builds a network from copies of layers, checking that
// consecutive shapes chain. The copies are contiguous, so views such as a
// sliced *mat.Dense are accepted and left untouched by training.
func NewNetworkFromLayers(act Activation, layers ...*Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, ErrBadShape
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].Inputs() != layers[i-1].Outputs() {
			return nil, fmt.Errorf("%w: layer %d expects %d inputs, previous layer has %d outputs",
				ErrBadShape, i, layers[i].Inputs(), layers[i-1].Outputs())
		}
	}
	for i, l := range layers {
		if l.Biases.Len() != l.Outputs() {
			return nil, fmt.Errorf("%w: layer %d has %d biases for %d outputs", ErrBadShape, i, l.Biases.Len(), l.Outputs())
		}
	}
	n := &Network{Activation: act, Layers: make([]*Layer, len(layers))}
	for i, l := range layers {
		n.Layers[i] = l.clone()
	}
	return n, nil
}

// Sizes returns [input, hidden..., output].
func (n *Network) Sizes() []int {
	out := []int{n.Layers[0].Inputs()}
	for _, l := range n.Layers {
		out = append(out, l.Outputs())
	}
	return out
}

// Clone deep-copies the weights so the copy can be trained independently.
func (n *Network) Clone() *Network {
	c := &Network{Activation: n.Activation, Layers: make([]*Layer, len(n.Layers))}
	for i, l := range n.Layers {
		c.Layers[i] = l.clone()
	}
	return c
}

// Forward returns the activations of every layer, the input included at index 0.
func (n *Network) Forward(x []float64) ([][]float64, error) {
	if len(x) != n.Layers[0].Inputs() {
		return nil, ErrInputMismatch
	}
	acts := [][]float64{append([]float64(nil), x...)}
	a := mat.NewVecDense(len(x), acts[0])
	for _, l := range n.Layers {
		z := mat.NewVecDense(l.Outputs(), nil)
		z.MulVec(l.Weights, a)
		z.AddVec(z, l.Biases)
		for j := 0; j < z.Len(); j++ {
			z.SetVec(j, n.Activation.Apply(z.AtVec(j)))
		}
		acts = append(acts, z.RawVector().Data)
		a = z
	}
	return acts, nil
}

// Output is the last layer activation for x.
func (n *Network) Output(x []float64) ([]float64, error) {
	acts, err := n.Forward(x)
	if err != nil {
		return nil, err
	}
	return acts[len(acts)-1], nil
}

// Backward computes per-layer deltas from the activations of a forward pass.
// Output delta is (out - target) * f'(out); hidden deltas are
// (W_next^T · delta_next) * f'(a).
func (n *Network) Backward(acts [][]float64, target []float64) ([]*mat.VecDense, error) {
	last := len(n.Layers)
	out := acts[last]
	if len(target) != len(out) {
		return nil, fmt.Errorf("%w: target has %d values, output layer %d", ErrInputMismatch, len(target), len(out))
	}
	deltas := make([]*mat.VecDense, last)
	d := mat.NewVecDense(len(out), nil)
	for j, o := range out {
		d.SetVec(j, (o-target[j])*n.Activation.DerivativeFromOutput(o))
	}
	deltas[last-1] = d
	for l := last - 2; l >= 0; l-- {
		back := mat.NewVecDense(n.Layers[l].Outputs(), nil)
		back.MulVec(n.Layers[l+1].Weights.T(), deltas[l+1])
		for j, a := range acts[l+1] {
			back.SetVec(j, back.AtVec(j)*n.Activation.DerivativeFromOutput(a))
		}
		deltas[l] = back
	}
	return deltas, nil
}

// Step runs one forward/backward pass on (x, target) and updates every
// weight by w -= lr·delta_j·input_i and every bias by b -= lr·delta_j.
// It returns the MSE of the forward pass taken before the update.
func (n *Network) Step(x, target []float64, lr float64) (float64, error) {
	acts, err := n.Forward(x)
	if err != nil {
		return 0, err
	}
	deltas, err := n.Backward(acts, target)
	if err != nil {
		return 0, err
	}
	loss, _ := MSE(target, acts[len(acts)-1])

	opt := optim.NewSGD(lr)
	for l, layer := range n.Layers {
		in := mat.NewVecDense(len(acts[l]), acts[l])
		grad := mat.NewDense(layer.Outputs(), layer.Inputs(), nil)
		grad.Outer(1, deltas[l], in)
		opt.Step(layer.Weights.RawMatrix().Data, grad.RawMatrix().Data)
		opt.Step(layer.Biases.RawVector().Data, deltas[l].RawVector().Data)
	}
	return loss, nil
}

// MSE is the mean squared error between the current output for x and target.
func (n *Network) MSE(x, target []float64) (float64, error) {
	out, err := n.Output(x)
	if err != nil {
		return 0, err
	}
	loss, _ := MSE(target, out)
	return loss, nil
}
