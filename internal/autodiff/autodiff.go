// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Architecture:
//   - Value: a graph node holding data, an accumulated gradient and the
//     operation that produced it
//   - Operation: closed set of primitive ops (Add, Mul, Pow, Exp), each
//     carrying its operands and the local-gradient rule
//   - Composite ops (Sub, Neg, Div, Tanh) are built from primitives only
//   - Backward: topological sort + reverse walk, accumulating gradients
//
// The forward pass is fused with graph construction: every op computes its
// result from the operands' current data when it is called.
//
// Usage:
//
//	a := autodiff.NewValue(3)
//	b := autodiff.NewValue(4)
//	c := autodiff.Mul(a, b) // c = 12
//
//	c.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // 4 3
//
// Gradients are accumulated, never reset, except for the root of Backward
// which is seeded with 1. Callers reusing leaf nodes across passes must zero
// their gradients first (nn.MLP.ZeroGrad, optim.Optimizer.ZeroGrad).
//
// A graph is not safe for concurrent mutation.
package autodiff

import "fmt"

// Value is a node in the computation graph.
//
// Leaf values (created with NewValue) have no operation and no operands.
// Derived values are created by the graph-building functions and never
// change their operands or data after construction.
type Value struct {
	data  float64
	grad  float64
	op    Operation // nil for leaves
	label string    // debug only
}

// NewValue creates a leaf node.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// newDerived creates a node produced by op. data is computed by the caller.
func newDerived(data float64, op Operation) *Value {
	return &Value{data: data, op: op}
}

// Data returns the node's current value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the node's value.
//
// Intended for leaves (e.g. an optimizer updating a parameter). Derived
// nodes already built from this leaf keep their old data.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the gradient. Use SetGrad(0) to zero a parameter.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// AddGrad accumulates g into the gradient.
func (v *Value) AddGrad(g float64) {
	v.grad += g
}

// Label returns the debug label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the debug label. It has no effect on computation.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// Op returns the operation that produced this node, or nil for a leaf.
func (v *Value) Op() Operation {
	return v.op
}

// Kind returns the operation kind, OpNone for a leaf.
func (v *Value) Kind() OpKind {
	if v.op == nil {
		return OpNone
	}
	return v.op.Kind()
}

// IsLeaf reports whether the node has no operation.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Operands returns a copy of the node's operands in order.
func (v *Value) Operands() []*Value {
	if v.op == nil {
		return nil
	}
	in := v.op.Inputs()
	out := make([]*Value, len(in))
	copy(out, in)
	return out
}

// Backward computes gradients of v with respect to all of its ancestors.
// See Backward.
func (v *Value) Backward() {
	Backward(v)
}

// String renders the node as Value(data grad).
func (v *Value) String() string {
	return fmt.Sprintf("Value(%g %g)", v.data, v.grad)
}
