package autodiff

// OpKind identifies which local-gradient rule applies to a node.
type OpKind uint8

// Operation kinds.
const (
	OpNone OpKind = iota // leaf
	OpAdd
	OpMul
	OpPow
	OpExp
)

// String returns the short symbol for the kind.
func (k OpKind) String() string {
	switch k {
	case OpNone:
		return ""
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "pow"
	case OpExp:
		return "exp"
	default:
		return "unknown"
	}
}

// Operation represents a primitive differentiable operation in the graph.
// Each operation records its operands during the forward pass and computes
// their gradient contributions during the backward pass.
//
// The set of operations is closed: AddOp, MulOp, PowOp and ExpOp are the
// only implementations. Every other op is composed from them.
type Operation interface {
	// Backward returns the gradient contribution for each input, given the
	// node this operation produced. Contributions are ordered like Inputs.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   returns: [out.Grad(), out.Grad()]
	Backward(out *Value) []float64

	// Inputs returns the operands in order.
	Inputs() []*Value

	// Kind returns the operation kind.
	Kind() OpKind

	// String returns a short description, e.g. "+" or "pow(2)".
	String() string

	sealed()
}
