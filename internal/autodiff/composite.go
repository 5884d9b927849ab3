package autodiff

// Composite operations. None of these has its own gradient rule: each is
// expressed through Add, Mul, Pow and Exp, so backward only ever dispatches
// on the four primitives.

// Neg returns -a, built as a * (-1).
func Neg(a *Value) *Value {
	return Mul(a, NewValue(-1))
}

// Sub returns a - b, built as a + (-b).
func Sub(a, b *Value) *Value {
	return Add(a, Neg(b))
}

// Div returns a / b, built as a * b^-1.
//
// Dividing by a zero-valued node yields ±Inf or NaN rather than an error.
func Div(a, b *Value) *Value {
	return Mul(a, Pow(b, -1))
}

// Tanh returns tanh(a), built as (e^2a - 1) / (e^2a + 1).
//
// The intermediate e^2a node is shared by numerator and denominator, so its
// gradient is the sum of both contributions. Large |a| overflows exp and
// produces NaN.
func Tanh(a *Value) *Value {
	e := Exp(Mul(a, NewValue(2)))
	return Div(Sub(e, NewValue(1)), Add(e, NewValue(1)))
}

// Scale returns a * c for a constant c.
func Scale(a *Value, c float64) *Value {
	return Mul(a, NewValue(c))
}

// Sum adds values left to right, starting from a zero leaf.
// Sum() returns a zero leaf.
func Sum(values ...*Value) *Value {
	total := NewValue(0)
	for _, v := range values {
		total = Add(total, v)
	}
	return total
}
