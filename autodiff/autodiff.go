// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every operation allocates a new Value wired to its operands and computes
// its result immediately. Backward on a final Value walks the graph in
// reverse topological order and accumulates gradients into every ancestor.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    a := autodiff.NewValue(3)
//	    b := autodiff.NewValue(4)
//	    c := autodiff.Mul(a, b) // 12
//
//	    c.Backward()
//	    fmt.Println(a.Grad(), b.Grad()) // 4 3
//	}
//
// Only the root of Backward is reset (to 1). Zero the gradients of reused
// leaves before each pass.
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Value is a node in the computation graph.
type Value = autodiff.Value

// Operation is a primitive differentiable operation.
type Operation = autodiff.Operation

// OpKind identifies a primitive operation.
type OpKind = autodiff.OpKind

// Operation kinds.
const (
	OpNone = autodiff.OpNone
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpPow  = autodiff.OpPow
	OpExp  = autodiff.OpExp
)

// Primitive operation types.
type (
	AddOp = autodiff.AddOp
	MulOp = autodiff.MulOp
	PowOp = autodiff.PowOp
	ExpOp = autodiff.ExpOp
)

// NewValue creates a leaf node.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Add returns a + b.
func Add(a, b *Value) *Value { return autodiff.Add(a, b) }

// Mul returns a * b.
func Mul(a, b *Value) *Value { return autodiff.Mul(a, b) }

// Pow returns a^p.
func Pow(a *Value, p float64) *Value { return autodiff.Pow(a, p) }

// Exp returns e^a.
func Exp(a *Value) *Value { return autodiff.Exp(a) }

// Neg returns -a.
func Neg(a *Value) *Value { return autodiff.Neg(a) }

// Sub returns a - b.
func Sub(a, b *Value) *Value { return autodiff.Sub(a, b) }

// Div returns a / b.
func Div(a, b *Value) *Value { return autodiff.Div(a, b) }

// Tanh returns tanh(a).
func Tanh(a *Value) *Value { return autodiff.Tanh(a) }

// Scale returns a * c for a constant c.
func Scale(a *Value, c float64) *Value { return autodiff.Scale(a, c) }

// Sum returns the sum of values.
func Sum(values ...*Value) *Value { return autodiff.Sum(values...) }

// Backward computes gradients of root with respect to all its ancestors.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns the nodes reachable from root, operands first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// GradCheckConfig controls CheckGradients.
type GradCheckConfig = autodiff.GradCheckConfig

// GradCheckResult holds one input's analytic and numerical gradients.
type GradCheckResult = autodiff.GradCheckResult

// CheckGradients compares Backward against finite differences.
func CheckGradients(build func() *Value, inputs []*Value, cfg GradCheckConfig) []GradCheckResult {
	return autodiff.CheckGradients(build, inputs, cfg)
}
