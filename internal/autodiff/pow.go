package autodiff

import (
	"math"
	"strconv"
)

// PowOp represents raising to a constant power: output = a^p.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1)
//   - grad_a = outputGrad * p * a^(p-1)
//
// A negative base with a fractional exponent, or a zero base with a negative
// exponent, yields NaN or Inf in both passes.
type PowOp struct {
	input    *Value
	exponent float64
}

// Pow returns a new node a^p.
func Pow(a *Value, p float64) *Value {
	return newDerived(math.Pow(a.data, p), &PowOp{input: a, exponent: p})
}

// Backward computes the input gradient for the power op.
func (op *PowOp) Backward(out *Value) []float64 {
	p := op.exponent
	return []float64{out.grad * p * math.Pow(op.input.data, p-1)}
}

// Inputs returns the operand [a].
func (op *PowOp) Inputs() []*Value {
	return []*Value{op.input}
}

// Exponent returns the constant exponent p.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}

// Kind returns OpPow.
func (op *PowOp) Kind() OpKind {
	return OpPow
}

// String returns pow(p).
func (op *PowOp) String() string {
	return "pow(" + strconv.FormatFloat(op.exponent, 'g', -1, 64) + ")"
}

func (op *PowOp) sealed() {}
