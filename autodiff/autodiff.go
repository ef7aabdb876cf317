// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// fixed-length vectors.
//
// Expressions are built lazily inside a Graph. Grad walks the graph once in
// reverse topological order and stores the gradient of the root in every
// reachable Variable.
//
// Example:
//
//	import (
//	    "github.com/born-ml/autograd/autodiff"
//	    "github.com/born-ml/autograd/vector"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    v := g.Variable(vector.MustNew(2, 1, -3))
//	    out := v.Sin()
//
//	    if err := autodiff.Grad(out); err != nil {
//	        panic(err)
//	    }
//	    grad, _ := v.Grad() // cos(v)
//	}
package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/vector"
)

// Graph is the arena owning every node of one expression.
type Graph = autodiff.Graph

// Node is one vertex of the computation graph.
type Node = autodiff.Node

// Variable is a leaf holding user data and a gradient slot.
type Variable = autodiff.Variable

// OpNode is an operation node.
type OpNode = autodiff.OpNode

// Operand is any value accepted by the expression builders.
type Operand = autodiff.Operand

// ErrGraphMismatch is wrapped in the panic raised when nodes from different
// graphs are combined.
var ErrGraphMismatch = autodiff.ErrGraphMismatch

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Const wraps a vector as an operand.
func Const(v vector.Vector) Operand {
	return autodiff.Const(v)
}

// Scalar wraps a number as an operand.
func Scalar(x float64) Operand {
	return autodiff.Scalar(x)
}

// Grad differentiates root with respect to every reachable Variable.
func Grad(root Node) error {
	return autodiff.Grad(root)
}

// TopologicalOrder lists every node reachable from root, parents first.
func TopologicalOrder(root Node) []Node {
	return autodiff.TopologicalOrder(root)
}
