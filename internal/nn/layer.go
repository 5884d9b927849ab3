package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a fully connected row of neurons.
//
// Every neuron sees the same inputs and produces one output, so a layer maps
// nin inputs to nout outputs.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, nn.Uniform(rng, -1, 1))
//	out := layer.Forward(nn.Values(2, 3, -1)) // 4 outputs
type Layer struct {
	inFeatures int
	neurons    []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
// Each neuron draws its own parameters from init.
func NewLayer(nin, nout int, init Initializer) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, init)
	}

	return &Layer{
		inFeatures: nin,
		neurons:    neurons,
	}
}

// Forward returns one output per neuron, in neuron order.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(inputs)
	}
	return out
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

// Parameters returns all neuron parameters, neuron order preserved.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
