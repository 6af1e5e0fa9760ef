package NeuralNetwork_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	nn "github.com/Gowtham0810-hype/ML-VIS/pkg/NeuralNetwork"
)

func TestActivationsByName(t *testing.T) {
	for _, a := range nn.Activations() {
		got, err := nn.ActivationByName(a.Name())
		require.NoError(t, err)
		require.Equal(t, a, got)
		require.NotEmpty(t, got.Formula())
	}
	_, err := nn.ActivationByName("tanh")
	require.Error(t, err)
}

func TestActivationDerivativesFromOutput(t *testing.T) {
	tests := []struct {
		act  nn.Activation
		x    float64
		want float64
	}{
		{nn.SigmoidActivation, 0.3, nn.SigmoidPrime(0.3)},
		{nn.ReLUActivation, 2, 1},
		{nn.ReLUActivation, -2, 0},
		{nn.IdentityActivation, -7, 1},
	}
	for _, tt := range tests {
		y := tt.act.Apply(tt.x)
		assert.InDelta(t, tt.want, tt.act.DerivativeFromOutput(y), 1e-12, tt.act.Name())
	}
}

func TestNewNetworkShapes(t *testing.T) {
	n, err := nn.NewNetwork([]int{2, 4, 4, 3}, nn.SigmoidActivation, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 4, 3}, n.Sizes())
	for i, l := range n.Layers {
		require.Equal(t, l.Outputs(), l.Biases.Len(), "layer %d", i)
		r, c := l.Weights.Dims()
		for a := 0; a < r; a++ {
			for b := 0; b < c; b++ {
				require.True(t, math.Abs(l.Weights.At(a, b)) <= 0.5)
			}
		}
	}
	acts, err := n.Forward([]float64{0.2, -0.4})
	require.NoError(t, err)
	require.Len(t, acts, 4)
	require.Equal(t, []float64{0.2, -0.4}, acts[0])
	require.Len(t, acts[3], 3)

	_, err = n.Forward([]float64{1})
	require.ErrorIs(t, err, nn.ErrInputMismatch)

	_, err = nn.NewNetwork([]int{2}, nn.SigmoidActivation, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, nn.ErrBadShape)
}

func TestIdentityStepMatchesLeastSquaresGradient(t *testing.T) {
	w := mat.NewDense(2, 2, []float64{0.1, -0.2, 0.3, 0.4})
	b := mat.NewVecDense(2, []float64{0.05, -0.05})
	net, err := nn.NewNetworkFromLayers(nn.IdentityActivation, &nn.Layer{Weights: w, Biases: b})
	require.NoError(t, err)

	x := []float64{1.5, -0.5}
	target := []float64{1, 0}
	lr := 0.1

	// closed form: r = Wx + b - t, W' = W - lr·r·xᵀ, b' = b - lr·r
	r := make([]float64, 2)
	for i := 0; i < 2; i++ {
		r[i] = w.At(i, 0)*x[0] + w.At(i, 1)*x[1] + b.AtVec(i) - target[i]
	}

	_, err = net.Step(x, target, lr)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, w.At(i, j)-lr*r[i]*x[j], net.Layers[0].Weights.At(i, j), 1e-12)
		}
		assert.InDelta(t, b.AtVec(i)-lr*r[i], net.Layers[0].Biases.AtVec(i), 1e-12)
	}
}

func TestNetworkFromSlicedLayerSteps(t *testing.T) {
	big := mat.NewDense(3, 3, []float64{
		0.1, 0.2, 9,
		0.3, 0.4, 9,
		9, 9, 9,
	})
	w := big.Slice(0, 2, 0, 2).(*mat.Dense)
	biasSrc := mat.NewDense(2, 2, []float64{0.5, 7, -0.5, 7})
	b := biasSrc.ColView(0).(*mat.VecDense) // increment 2
	net, err := nn.NewNetworkFromLayers(nn.IdentityActivation, &nn.Layer{Weights: w, Biases: b})
	require.NoError(t, err)

	x, target := []float64{1, 1}, []float64{0, 0}
	_, err = net.Step(x, target, 0.1)
	require.NoError(t, err)

	// r = Wx + b - t = {0.8, 0.2}; only the 2x2 block moves, by -lr·r·xᵀ.
	want := []float64{0.1 - 0.08, 0.2 - 0.08, 0.3 - 0.02, 0.4 - 0.02}
	got := net.Layers[0].Weights
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, want[2*i+j], got.At(i, j), 1e-12)
		}
	}
	assert.InDelta(t, 0.5-0.08, net.Layers[0].Biases.AtVec(0), 1e-12)
	assert.InDelta(t, -0.5-0.02, net.Layers[0].Biases.AtVec(1), 1e-12)

	// The source matrix, padding cells included, is not written through.
	require.Equal(t, 0.1, big.At(0, 0))
	require.Equal(t, 9.0, big.At(0, 2))
	require.Equal(t, 9.0, big.At(2, 0))
	require.Equal(t, 0.5, biasSrc.At(0, 0))
	require.Equal(t, 7.0, biasSrc.At(0, 1))
}

func TestTrainingReducesError(t *testing.T) {
	n, err := nn.NewNetwork([]int{2, 3, 2}, nn.SigmoidActivation, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	x, target := []float64{0.5, 0.8}, []float64{1, 0}
	before, err := n.MSE(x, target)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		_, err = n.Step(x, target, 0.5)
		require.NoError(t, err)
	}
	after, err := n.MSE(x, target)
	require.NoError(t, err)
	require.Less(t, after, before)
}

func TestCloneIsIndependent(t *testing.T) {
	n, err := nn.NewNetwork([]int{2, 2}, nn.IdentityActivation, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	c := n.Clone()
	_, err = c.Step([]float64{1, 1}, []float64{5, 5}, 0.1)
	require.NoError(t, err)
	require.NotEqual(t, n.Layers[0].Weights.At(0, 0), c.Layers[0].Weights.At(0, 0))
}

func TestLosses(t *testing.T) {
	loss, grad := nn.MSE([]float64{1, 0}, []float64{0, 0})
	require.Equal(t, 0.5, loss)
	require.Equal(t, []float64{-1, 0}, grad)

	bce, g := nn.BCE([]float64{1}, []float64{0.5})
	assert.InDelta(t, math.Ln2, bce, 1e-12)
	assert.InDelta(t, -0.5, g[0], 1e-12)
}
