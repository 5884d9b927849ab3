package autodiff

import "fmt"

// frame is a DFS stack entry. expanded is set once the node's operands have
// been pushed; popping an expanded frame emits the node.
type frame struct {
	node     *Value
	expanded bool
}

// TopologicalOrder returns every node reachable from root via operand edges,
// each exactly once, with every node placed after all of its operands
// (postorder). root is always last.
//
// The traversal is iterative, so deep graphs (long chains of Add in a loss
// accumulation) do not grow the goroutine stack. Nodes are identified by
// pointer, never by data.
func TopologicalOrder(root *Value) []*Value {
	var order []*Value
	visited := make(map[*Value]struct{})

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.node)
			continue
		}
		if _, seen := visited[f.node]; seen {
			continue
		}
		visited[f.node] = struct{}{}

		stack = append(stack, frame{node: f.node, expanded: true})
		if f.node.op == nil {
			continue
		}
		// Push in reverse so the first operand is explored first.
		inputs := f.node.op.Inputs()
		for i := len(inputs) - 1; i >= 0; i-- {
			if _, seen := visited[inputs[i]]; !seen {
				stack = append(stack, frame{node: inputs[i]})
			}
		}
	}

	return order
}

// Backward computes gradients of root with respect to every ancestor.
//
// Algorithm:
//  1. Topologically sort the graph reachable from root
//  2. Seed root's gradient with exactly 1 (d(root)/d(root))
//  3. Walk the order in reverse; for each derived node, add its operation's
//     contributions into its operands' gradients
//
// Reverse postorder guarantees every consumer of a node has contributed
// before that node propagates further, so shared nodes receive the sum of
// all paths.
//
// Gradients other than root's are accumulated, not reset. Zero reused
// leaves (parameters) before calling Backward again.
func Backward(root *Value) {
	order := TopologicalOrder(root)

	root.grad = 1

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == nil {
			continue
		}
		accumulateGrads(node.op.Inputs(), node.op.Backward(node))
	}
}

// accumulateGrads adds each contribution into the matching input.
//
// Panics if the operation returned a different number of contributions
// than it has inputs.
func accumulateGrads(inputs []*Value, grads []float64) {
	if len(grads) != len(inputs) {
		panic(fmt.Sprintf("autodiff: %d gradients for %d inputs", len(grads), len(inputs)))
	}
	for j, input := range inputs {
		input.grad += grads[j]
	}
}
