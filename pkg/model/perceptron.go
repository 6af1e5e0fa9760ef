package model

import (
	"context"
	"fmt"
	"math/rand"

	nn "github.com/Gowtham0810-hype/ML-VIS/pkg/NeuralNetwork"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
)

// PerceptronConfig describes the network drawn by the perceptron essay.
type PerceptronConfig struct {
	HiddenLayers int
	HiddenWidth  int
	OutputNodes  int
	Activation   nn.Activation
	LearningRate float64
	Iterations   int
	// Input is the fixed feature vector; its length is the input width.
	Input []float64
	// Target defaults to (k+1)/(OutputNodes+1) for output k when empty.
	Target      []float64
	RandomState int64
}

// DefaultPerceptronConfig is a 2-3-1 sigmoid network on a fixed input.
func DefaultPerceptronConfig() PerceptronConfig {
	return PerceptronConfig{
		HiddenLayers: 1,
		HiddenWidth:  3,
		OutputNodes:  1,
		Activation:   nn.SigmoidActivation,
		LearningRate: 0.1,
		Iterations:   50,
		Input:        []float64{0.5, 0.8},
	}
}

func (c PerceptronConfig) validate() error {
	switch {
	case c.HiddenLayers < 1:
		return invalidParam("hiddenLayers", c.HiddenLayers)
	case c.HiddenWidth < 1:
		return invalidParam("hiddenWidth", c.HiddenWidth)
	case c.OutputNodes < 1:
		return invalidParam("outputNodes", c.OutputNodes)
	case c.Activation == nil:
		return invalidParam("activation", nil)
	case !(c.LearningRate > 0):
		return invalidParam("learningRate", c.LearningRate)
	case c.Iterations < 0:
		return invalidParam("iterations", c.Iterations)
	case len(c.Input) == 0:
		return invalidParam("input", c.Input)
	case len(c.Target) != 0 && len(c.Target) != c.OutputNodes:
		return invalidParam("target", c.Target)
	}
	return nil
}

// Sizes is [input, hidden × HiddenLayers, output].
func (c PerceptronConfig) Sizes() []int {
	sizes := []int{len(c.Input)}
	for range c.HiddenLayers {
		sizes = append(sizes, c.HiddenWidth)
	}
	return append(sizes, c.OutputNodes)
}

// Perceptron trains a small dense network on one fixed (input, target) pair.
type Perceptron struct {
	Config  PerceptronConfig
	Network *nn.Network

	target []float64
	steps  int
	rnd    *rand.Rand
}

// NewPerceptron validates cfg and draws the initial weights from RandomState.
func NewPerceptron(cfg PerceptronConfig) (*Perceptron, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.RandomState == 0 {
		cfg.RandomState = core.NewRand(0).Int63()
	}
	cfg.Input = append([]float64(nil), cfg.Input...)
	p := &Perceptron{Config: cfg, target: append([]float64(nil), cfg.Target...)}
	if len(p.target) == 0 {
		p.target = make([]float64, cfg.OutputNodes)
		for k := range p.target {
			p.target[k] = float64(k+1) / float64(cfg.OutputNodes+1)
		}
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Perceptron) reset() error {
	p.rnd = core.NewRand(p.Config.RandomState)
	net, err := nn.NewNetwork(p.Config.Sizes(), p.Config.Activation, p.rnd)
	if err != nil {
		return fmt.Errorf("perceptron: %w", err)
	}
	p.Network = net
	p.steps = 0
	return nil
}

// Target is the training target in effect.
func (p *Perceptron) Target() []float64 { return p.target }

// Steps is the number of completed backprop steps.
func (p *Perceptron) Steps() int { return p.steps }

// Advance trains until target steps have completed; a lower target redraws
// the initial weights from the seed and replays.
func (p *Perceptron) Advance(target int) error {
	if target < 0 {
		return invalidParam("iterations", target)
	}
	if target < p.steps {
		if err := p.reset(); err != nil {
			return err
		}
	}
	for p.steps < target {
		if _, err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one backprop update and returns the loss measured before it.
func (p *Perceptron) Step() (float64, error) {
	loss, err := p.Network.Step(p.Config.Input, p.target, p.Config.LearningRate)
	if err != nil {
		return 0, err
	}
	p.steps++
	return loss, nil
}

// Train runs the remaining configured iterations one at a time, calling
// onStep after each so the caller can redraw. Cancelling ctx stops training
// between steps and returns ctx.Err().
func (p *Perceptron) Train(ctx context.Context, onStep func(step int, loss float64)) error {
	for p.steps < p.Config.Iterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := p.Step(); err != nil {
			return err
		}
		if onStep != nil {
			onStep(p.steps, p.MSE())
		}
	}
	return nil
}

// Activations is the forward pass of the fixed input, input layer first.
func (p *Perceptron) Activations() [][]float64 {
	acts, _ := p.Network.Forward(p.Config.Input)
	return acts
}

// MSE is the mean squared error between the current output and the target.
func (p *Perceptron) MSE() float64 {
	loss, _ := p.Network.MSE(p.Config.Input, p.target)
	return loss
}
