package autodiff

import (
	"fmt"

	"github.com/born-ml/autograd/internal/vector"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	node Node
	next int // Index of the next parent to visit
}

// TopologicalOrder returns every node reachable from root, each placed after
// all of its parents; root is last.
//
// The traversal is an iterative post-order DFS sharing one visited set
// across all branches, so a node shared by several consumers appears once.
// Reversed, the order puts every consumer of a node before that node.
func TopologicalOrder(root Node) []Node {
	if root == nil {
		return nil
	}

	visited := make([]bool, root.Graph().Len())
	visited[root.ID()] = true

	order := make([]Node, 0, len(visited))
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		parents := top.node.Parents()
		if top.next < len(parents) {
			p := parents[top.next]
			top.next++
			if !visited[p.ID()] {
				visited[p.ID()] = true
				stack = append(stack, frame{node: p})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}

// evaluate computes the value of every node in a topological order.
// The table lives only for the duration of one call.
func evaluate(order []Node) (map[int]vector.Vector, error) {
	values := make(map[int]vector.Vector, len(order))
	for _, n := range order {
		switch node := n.(type) {
		case *Variable:
			values[node.id] = node.value
		case *OpNode:
			out, err := node.forward(parentValues(node, values))
			if err != nil {
				return nil, err
			}
			values[node.id] = out
		default:
			return nil, fmt.Errorf("evaluate: unsupported node type %T", n)
		}
	}
	return values, nil
}

func parentValues(n *OpNode, values map[int]vector.Vector) []vector.Vector {
	inputs := make([]vector.Vector, len(n.parents))
	for i, p := range n.parents {
		inputs[i] = values[p.ID()]
	}
	return inputs
}

// Grad computes the gradient of root with respect to every Variable
// reachable from it and stores the result in each Variable's gradient slot.
//
// Algorithm:
//  1. Sort the graph topologically from root
//  2. Evaluate every node once, in forward order
//  3. Seed root's adjoint with ones
//  4. Walk the order in reverse; each operation node adds its local
//     contribution into the adjoint of every parent operand slot
//
// By the time a node is reached in step 4 all of its consumers have already
// contributed, so every adjoint is complete before it is propagated. Only
// Variables receive a gradient. Any error aborts the call.
//
// Grad is not safe to run concurrently on graphs that share Variables.
func Grad(root Node) error {
	if root == nil {
		return fmt.Errorf("grad: nil root")
	}

	order := TopologicalOrder(root)
	values, err := evaluate(order)
	if err != nil {
		return fmt.Errorf("grad: %w", err)
	}

	adjoints := map[int]vector.Vector{
		root.ID(): vector.Ones(values[root.ID()].Dim()),
	}
	if v, ok := root.(*Variable); ok {
		v.setGrad(adjoints[root.ID()])
	}

	for i := len(order) - 1; i >= 0; i-- {
		node, ok := order[i].(*OpNode)
		if !ok {
			continue // leaves have nothing to propagate
		}
		adjoint, ok := adjoints[node.id]
		if !ok {
			continue
		}

		inputs := parentValues(node, values)
		grads, err := node.backward(adjoint, inputs)
		if err != nil {
			return fmt.Errorf("grad: %w", err)
		}

		for j, p := range node.parents {
			acc, seen := adjoints[p.ID()]
			if !seen {
				acc = vector.Zeros(inputs[j].Dim())
			}
			if acc, err = acc.Add(grads[j]); err != nil {
				return fmt.Errorf("grad: accumulate into #%d: %w", p.ID(), err)
			}
			adjoints[p.ID()] = acc

			if v, isVar := p.(*Variable); isVar {
				v.setGrad(acc)
			}
		}
	}

	return nil
}
