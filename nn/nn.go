// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all network modules.
type Module = nn.Module

// Initializer returns the starting value for one parameter.
type Initializer = nn.Initializer

// Uniform returns an Initializer drawing from [lo, hi) with rng.
func Uniform(rng *rand.Rand, lo, hi float64) Initializer {
	return nn.Uniform(rng, lo, hi)
}

// Constant returns an Initializer that always yields c.
func Constant(c float64) Initializer {
	return nn.Constant(c)
}

// NewRand returns a seeded generator for Uniform.
func NewRand(seed uint64) *rand.Rand {
	return nn.NewRand(seed)
}

// Values wraps plain numbers as leaf Values.
func Values(xs ...float64) []*autodiff.Value {
	return nn.Values(xs...)
}

// ZeroGrad sets every parameter's gradient to 0.
func ZeroGrad(params []*autodiff.Value) {
	nn.ZeroGrad(params)
}

// Neuron computes tanh(b + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, init Initializer) *Neuron {
	return nn.NewNeuron(nin, init)
}

// Layer is a row of neurons fed the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, init Initializer) *Layer {
	return nn.NewLayer(nin, nout, init)
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates a network with len(sizes)-1 layers.
//
// Example:
//
//	model := nn.NewMLP([]int{3, 4, 4, 1}, nn.Uniform(nn.NewRand(1), -1, 1))
func NewMLP(sizes []int, init Initializer) *MLP {
	return nn.NewMLP(sizes, init)
}

// ErrStateSize is returned by LoadStateDict on a length mismatch.
var ErrStateSize = nn.ErrStateSize

// SumSquaredError builds Σ (predᵢ - targetᵢ)².
func SumSquaredError(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.SumSquaredError(predictions, targets)
}

// MSELoss builds mean((predᵢ - targetᵢ)²).
func MSELoss(predictions, targets []*autodiff.Value) *autodiff.Value {
	return nn.MSELoss(predictions, targets)
}
