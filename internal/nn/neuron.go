package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(b + Σ wᵢxᵢ).
//
// Weights and bias are leaves, each drawn independently from the
// Initializer passed to NewNeuron.
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, init Initializer) *Neuron {
	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = autodiff.NewValue(init()).SetLabel("w")
	}

	return &Neuron{
		weights: weights,
		bias:    autodiff.NewValue(init()).SetLabel("b"),
	}
}

// Forward builds tanh(b + Σ wᵢxᵢ).
//
// The sum starts from the bias node itself, so the bias receives gradient.
// Panics if len(inputs) differs from the number of weights.
func (n *Neuron) Forward(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = autodiff.Add(act, autodiff.Mul(w, inputs[i]))
	}

	return autodiff.Tanh(act)
}

// Weights returns the weight leaves.
func (n *Neuron) Weights() []*autodiff.Value {
	return n.weights
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
