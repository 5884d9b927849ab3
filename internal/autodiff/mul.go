package autodiff

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	inputs [2]*Value // [a, b]
}

// Mul returns a new node a * b.
func Mul(a, b *Value) *Value {
	return newDerived(a.data*b.data, &MulOp{inputs: [2]*Value{a, b}})
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(out *Value) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{out.grad * b.data, out.grad * a.data}
}

// Inputs returns the operands [a, b].
func (op *MulOp) Inputs() []*Value {
	return op.inputs[:]
}

// Kind returns OpMul.
func (op *MulOp) Kind() OpKind {
	return OpMul
}

func (op *MulOp) String() string {
	return OpMul.String()
}

func (op *MulOp) sealed() {}
