// Package nn implements neural network modules on top of the scalar autodiff
// engine.
//
// This package provides building blocks for constructing networks:
//   - Module interface: Base interface for all NN components
//   - Neuron: tanh(b + Σ wᵢxᵢ) over scalar Values
//   - Layer: a row of independent neurons fed the same inputs
//   - MLP: a stack of layers (multi-layer perceptron)
//   - Sequential: Container for chaining modules
//   - Loss builders: SumSquaredError, MSELoss
//
// Every forward pass builds a fresh computation graph whose leaves include
// the module's parameters, so Backward on a loss reaches every weight and
// bias. Parameters are plain *autodiff.Value leaves.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger networks:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(3, 4, init),
//	    nn.NewLayer(4, 1, init),
//	)
type Module interface {
	// Forward computes the module's outputs for the given inputs.
	//
	// The result is a graph: each output is a derived Value whose ancestors
	// include the inputs and the module's parameters.
	Forward(inputs []*autodiff.Value) []*autodiff.Value

	// Parameters returns all trainable parameters of this module, in a
	// stable order.
	Parameters() []*autodiff.Value
}

// ZeroGrad sets the gradient of every parameter to 0.
//
// Call before each Backward that reuses the parameters, otherwise gradients
// from the previous step are added to the new ones.
func ZeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.SetGrad(0)
	}
}

// Values wraps plain numbers as leaf Values.
func Values(xs ...float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.NewValue(x)
	}
	return out
}
