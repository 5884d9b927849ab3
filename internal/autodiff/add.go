package autodiff

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	inputs [2]*Value // [a, b]
}

// Add returns a new node a + b.
func Add(a, b *Value) *Value {
	return newDerived(a.data+b.data, &AddOp{inputs: [2]*Value{a, b}})
}

// Backward computes input gradients for addition.
func (op *AddOp) Backward(out *Value) []float64 {
	return []float64{out.grad, out.grad}
}

// Inputs returns the operands [a, b].
func (op *AddOp) Inputs() []*Value {
	return op.inputs[:]
}

// Kind returns OpAdd.
func (op *AddOp) Kind() OpKind {
	return OpAdd
}

func (op *AddOp) String() string {
	return OpAdd.String()
}

func (op *AddOp) sealed() {}
