// Package autodiff implements reverse-mode automatic differentiation over
// fixed-length vectors.
//
// Architecture:
//   - Graph: node arena that owns creation ids and registers every node
//   - Variable: leaf node holding user data and a gradient slot
//   - OpNode: operation node holding its parents and an ops.Operation
//   - Grad: topological sort plus a single backward pass that writes
//     gradients into every reachable Variable
//
// Building an expression evaluates nothing. Value re-evaluates the
// sub-graph on every access, and Grad computes values once per call.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	w := g.Variable(vector.MustNew(-0.5, 2, 3))
//	b := g.Scalar(2)
//	h := w.MatMul(autodiff.Const(vector.MustNew(12, 3, 2))).Add(b)
//
//	if err := autodiff.Grad(h); err != nil {
//	    return err
//	}
//	dw, _ := w.Grad() // [12, 3, 2]
package autodiff

import (
	"fmt"

	"github.com/born-ml/autograd/internal/vector"
)

// Graph is the arena that owns every node of one expression graph.
//
// Node ids are assigned in creation order starting at 0 and index the
// arena directly. A Graph is not safe for concurrent use.
type Graph struct {
	nodes []Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]Node, 0, 16),
	}
}

// Len returns the number of nodes created in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (Node, bool) {
	if id < 0 || id >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

// register assigns the next id to n and stores it in the arena.
func (g *Graph) register(n Node, e *expr) {
	e.graph = g
	e.id = len(g.nodes)
	e.self = n
	g.nodes = append(g.nodes, n)
}

// Variable creates a leaf holding a copy of value.
func (g *Graph) Variable(value vector.Vector) *Variable {
	if value.Dim() == 0 {
		panic(fmt.Errorf("variable: empty vector: %w", vector.ErrConstruction))
	}
	v := &Variable{value: value.Copy()}
	g.register(v, &v.expr)
	return v
}

// Scalar creates a leaf holding a 1-element vector.
func (g *Graph) Scalar(x float64) *Variable {
	return g.Variable(vector.Scalar(x))
}

// NewVariable creates a leaf from a dynamically typed value.
//
// Numbers are wrapped into 1-element vectors. Unsupported types return an
// error wrapping ErrConstruction.
func (g *Graph) NewVariable(value any) (*Variable, error) {
	v, err := vector.FromAny(value)
	if err != nil {
		return nil, fmt.Errorf("variable: %w", err)
	}
	return g.Variable(v), nil
}
