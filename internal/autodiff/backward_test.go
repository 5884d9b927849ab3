package autodiff_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexOf returns the position of v in order, or -1.
func indexOf(order []*autodiff.Value, v *autodiff.Value) int {
	for i, n := range order {
		if n == v {
			return i
		}
	}
	return -1
}

// TestTopologicalOrder_SingleVisit tests that shared nodes appear once.
func TestTopologicalOrder_SingleVisit(t *testing.T) {
	a := autodiff.NewValue(2)
	s := autodiff.Add(a, a)
	d := autodiff.Mul(a, s)

	order := autodiff.TopologicalOrder(d)

	require.Len(t, order, 3)
	assert.Equal(t, d, order[len(order)-1])
	assert.Less(t, indexOf(order, a), indexOf(order, s))
	assert.Less(t, indexOf(order, s), indexOf(order, d))
}

// TestTopologicalOrder_OperandsFirst tests postorder on a wider DAG.
func TestTopologicalOrder_OperandsFirst(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(2)
	c := autodiff.NewValue(3)
	d := autodiff.Mul(a, autodiff.Add(b, c))
	e := autodiff.Mul(d, a)

	order := autodiff.TopologicalOrder(e)
	seen := make(map[*autodiff.Value]bool)
	for _, node := range order {
		assert.False(t, seen[node], "node emitted twice")
		for _, operand := range node.Operands() {
			assert.True(t, seen[operand], "operand emitted after consumer")
		}
		seen[node] = true
	}
	assert.Len(t, order, 6)
}

// TestTopologicalOrder_EqualDataDistinctNodes tests identity-keyed visiting.
func TestTopologicalOrder_EqualDataDistinctNodes(t *testing.T) {
	a := autodiff.NewValue(1)
	b := autodiff.NewValue(1)
	c := autodiff.Add(a, b)

	order := autodiff.TopologicalOrder(c)
	assert.Len(t, order, 3)

	c.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

// TestBackward_Diamond tests d = a * (a + a) = 2a², dd/da = 4a.
func TestBackward_Diamond(t *testing.T) {
	for _, x := range []float64{-2, 0.5, 3} {
		a := autodiff.NewValue(x)
		d := autodiff.Mul(a, autodiff.Add(a, a))

		a.SetGrad(0)
		d.Backward()

		assert.Equal(t, 2*x*x, d.Data())
		assert.InDelta(t, 4*x, a.Grad(), 1e-12)
	}
}

// TestBackward_Walkthrough tests e = a²(b + c) at a=1, b=2, c=3.
func TestBackward_Walkthrough(t *testing.T) {
	a := autodiff.NewValue(1).SetLabel("a")
	b := autodiff.NewValue(2).SetLabel("b")
	c := autodiff.NewValue(3).SetLabel("c")
	d := autodiff.Mul(a, autodiff.Add(b, c)).SetLabel("d")
	e := autodiff.Mul(d, a).SetLabel("e")

	e.Backward()

	assert.Equal(t, 5.0, e.Data())
	assert.Equal(t, 10.0, a.Grad()) // 2a(b+c)
	assert.Equal(t, 1.0, b.Grad())  // a²
	assert.Equal(t, 1.0, c.Grad())
	assert.Equal(t, 1.0, d.Grad())
	assert.Equal(t, 1.0, e.Grad())
}

// TestBackward_Leaf tests the degenerate single-node graph.
func TestBackward_Leaf(t *testing.T) {
	a := autodiff.NewValue(7)
	a.SetGrad(3)

	order := autodiff.TopologicalOrder(a)
	require.Len(t, order, 1)

	autodiff.Backward(a)
	assert.Equal(t, 1.0, a.Grad())
}

// TestBackward_Accumulates tests that a second pass without zeroing
// doubles leaf gradients.
func TestBackward_Accumulates(t *testing.T) {
	a := autodiff.NewValue(3)
	b := autodiff.NewValue(4)

	autodiff.Mul(a, b).Backward()
	autodiff.Mul(a, b).Backward()
	assert.Equal(t, 8.0, a.Grad())

	a.SetGrad(0)
	b.SetGrad(0)
	autodiff.Mul(a, b).Backward()
	assert.Equal(t, 4.0, a.Grad())
	assert.Equal(t, 3.0, b.Grad())
}

// TestBackward_DeepChain tests that long chains don't need recursion.
func TestBackward_DeepChain(t *testing.T) {
	x := autodiff.NewValue(1)
	y := x
	const n = 100000
	for range n {
		y = autodiff.Add(y, x)
	}

	y.Backward()
	assert.Equal(t, float64(n+1), y.Data())
	assert.Equal(t, float64(n+1), x.Grad())
}
