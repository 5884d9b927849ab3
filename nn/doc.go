// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar autodiff
// values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(b + Σ wᵢxᵢ)
//   - Layer: neurons sharing the same inputs
//   - MLP: a multi-layer perceptron
//   - Sequential, Module interface
//   - Loss builders: MSELoss, SumSquaredError
//   - Initialization: Uniform with an injected generator
//
// # Basic Usage
//
//	rng := nn.NewRand(42)
//	model := nn.NewMLP([]int{3, 4, 4, 1}, nn.Uniform(rng, -1, 1))
//
//	preds := []*autodiff.Value{model.Forward(nn.Values(2, 3, -1))[0]}
//	loss := nn.MSELoss(preds, nn.Values(1))
//
//	model.ZeroGrad()
//	loss.Backward()
//	for _, p := range model.Parameters() {
//	    p.SetData(p.Data() - 0.1*p.Grad())
//	}
package nn
