package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: a Sequential of Layers.
//
// NewMLP([]int{3, 4, 4, 1}, init) builds three layers, 3→4, 4→4 and 4→1.
//
// Example:
//
//	rng := nn.NewRand(42)
//	model := nn.NewMLP([]int{3, 4, 4, 1}, nn.Uniform(rng, -1, 1))
//
//	pred := model.Forward(nn.Values(2, 3, -1))[0]
//	loss := nn.MSELoss([]*autodiff.Value{pred}, nn.Values(1))
//
//	model.ZeroGrad()
//	loss.Backward()
type MLP struct {
	seq    *Sequential
	sizes  []int
	layers []*Layer
}

// NewMLP creates a network with len(sizes)-1 layers.
//
// Panics if fewer than two sizes are given or any size is not positive.
func NewMLP(sizes []int, init Initializer) *MLP {
	if len(sizes) < 2 {
		panic(fmt.Sprintf("MLP: need at least 2 sizes, got %d", len(sizes)))
	}
	for i, n := range sizes {
		if n <= 0 {
			panic(fmt.Sprintf("MLP: size %d must be positive, got %d", i, n))
		}
	}

	layers := make([]*Layer, len(sizes)-1)
	seq := NewSequential()
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], init)
		seq.Add(layers[i])
	}

	return &MLP{
		seq:    seq,
		sizes:  append([]int(nil), sizes...),
		layers: layers,
	}
}

// Forward feeds inputs through every layer and returns the last layer's
// outputs.
func (m *MLP) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	if len(inputs) != m.sizes[0] {
		panic(fmt.Sprintf("MLP: expected %d inputs, got %d", m.sizes[0], len(inputs)))
	}
	return m.seq.Forward(inputs)
}

// Parameters returns every weight and bias, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	return m.seq.Parameters()
}

// ZeroGrad resets the gradient of every parameter to 0.
func (m *MLP) ZeroGrad() {
	m.seq.ZeroGrad()
}

// StateDict returns the parameter values in Parameters order.
func (m *MLP) StateDict() []float64 {
	return m.seq.StateDict()
}

// LoadStateDict overwrites the parameter values from state.
func (m *MLP) LoadStateDict(state []float64) error {
	return m.seq.LoadStateDict(state)
}

// InFeatures returns the number of inputs Forward expects.
func (m *MLP) InFeatures() int {
	return m.sizes[0]
}

// OutFeatures returns the number of outputs Forward produces.
func (m *MLP) OutFeatures() int {
	return m.sizes[len(m.sizes)-1]
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Sizes returns a copy of the layer widths.
func (m *MLP) Sizes() []int {
	return append([]int(nil), m.sizes...)
}

// NumParameters returns the number of scalar parameters.
func (m *MLP) NumParameters() int {
	n := 0
	for i := 1; i < len(m.sizes); i++ {
		n += (m.sizes[i-1] + 1) * m.sizes[i]
	}
	return n
}
