package nn

import (
	"errors"
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// ErrStateSize is returned when a state vector doesn't match the parameters.
var ErrStateSize = errors.New("state size mismatch")

// Sequential is a container module that chains multiple modules together.
//
// Each module's outputs become the next module's inputs.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(3, 4, init),
//	    nn.NewLayer(4, 1, init),
//	)
//
//	outputs := model.Forward(inputs)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := inputs

	for _, module := range s.modules {
		outputs = module.Forward(outputs)
	}

	return outputs
}

// Parameters returns all trainable parameters, module order preserved.
func (s *Sequential) Parameters() []*autodiff.Value {
	var params []*autodiff.Value

	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}

	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// ZeroGrad zeroes the gradient of every parameter.
func (s *Sequential) ZeroGrad() {
	ZeroGrad(s.Parameters())
}

// StateDict returns a copy of the parameter values in Parameters order.
func (s *Sequential) StateDict() []float64 {
	params := s.Parameters()
	state := make([]float64, len(params))
	for i, p := range params {
		state[i] = p.Data()
	}
	return state
}

// LoadStateDict overwrites parameter values from state.
func (s *Sequential) LoadStateDict(state []float64) error {
	params := s.Parameters()
	if len(state) != len(params) {
		return fmt.Errorf("load state: expected %d values, got %d: %w", len(params), len(state), ErrStateSize)
	}

	for i, p := range params {
		p.SetData(state[i])
	}

	return nil
}
