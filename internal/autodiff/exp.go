package autodiff

import "math"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct {
	input *Value // x
}

// Exp returns a new node e^a.
func Exp(a *Value) *Value {
	return newDerived(math.Exp(a.data), &ExpOp{input: a})
}

// Backward computes the input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (op *ExpOp) Backward(out *Value) []float64 {
	return []float64{out.grad * out.data}
}

// Inputs returns the operand [x].
func (op *ExpOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Kind returns OpExp.
func (op *ExpOp) Kind() OpKind {
	return OpExp
}

func (op *ExpOp) String() string {
	return OpExp.String()
}

func (op *ExpOp) sealed() {}
