package autodiff

import (
	"fmt"
	"strings"

	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/born-ml/autograd/internal/vector"
)

// Node is one vertex of the computation graph.
//
// Nodes are keyed by identity (their arena id), never by value: two nodes
// holding equal data stay distinct. Every Node is also an Operand, and the
// builder methods return new nodes in the same graph.
type Node interface {
	Operand

	// ID returns the creation id within the node's graph.
	ID() int

	// Graph returns the arena that owns the node.
	Graph() *Graph

	// Parents returns the nodes this node was built from, in operand order.
	Parents() []Node

	// IsLeaf reports whether the node has no parents.
	IsLeaf() bool

	// Value evaluates the node by walking its sub-graph. Nothing is cached.
	Value() (vector.Vector, error)

	// PartialDerivative returns the local gradient contribution toward wrt
	// given the adjoint of this node. A node that is not a parent receives
	// a 1-element zero.
	PartialDerivative(adjoint vector.Vector, wrt Node) (vector.Vector, error)

	String() string

	Add(other Operand) Node
	Sub(other Operand) Node
	Mul(other Operand) Node
	Div(other Operand) Node
	Pow(other Operand) Node
	MatMul(other Operand) Node

	Abs() Node
	Neg() Node
	Log() Node
	Log2() Node
	Log10() Node
	Log1p() Node
	Exp() Node
	Sin() Node
	Cos() Node
	Tan() Node
	Sinh() Node
	Cosh() Node
	Tanh() Node
	Sigmoid() Node
	ReLU() Node
	Sum() Node
}

var (
	_ Node = (*Variable)(nil)
	_ Node = (*OpNode)(nil)
)

// expr holds the identity shared by every node kind and forwards builder
// methods to the owning graph.
type expr struct {
	graph *Graph
	id    int
	self  Node
}

// ID returns the creation id.
func (e *expr) ID() int { return e.id }

// Graph returns the owning graph.
func (e *expr) Graph() *Graph { return e.graph }

func (e *expr) box(g *Graph) Node {
	if g != e.graph {
		panic(fmt.Errorf("node %d: %w", e.id, ErrGraphMismatch))
	}
	return e.self
}

// Variable is a leaf node holding user-supplied data and a gradient slot.
//
// The gradient is written only by Grad.
type Variable struct {
	expr
	value   vector.Vector
	grad    vector.Vector
	hasGrad bool
}

// Parents returns nil; variables are leaves.
func (v *Variable) Parents() []Node { return nil }

// IsLeaf returns true.
func (v *Variable) IsLeaf() bool { return true }

// Value returns a copy of the stored data.
func (v *Variable) Value() (vector.Vector, error) {
	return v.value.Copy(), nil
}

// PartialDerivative returns a 1-element zero; variables have no parents.
func (v *Variable) PartialDerivative(_ vector.Vector, _ Node) (vector.Vector, error) {
	return vector.Zeros(1), nil
}

// Grad returns the gradient from the last Grad call that reached v.
// The boolean is false if no gradient has been computed yet.
func (v *Variable) Grad() (vector.Vector, bool) {
	if !v.hasGrad {
		return vector.Vector{}, false
	}
	return v.grad.Copy(), true
}

func (v *Variable) setGrad(grad vector.Vector) {
	v.grad = grad
	v.hasGrad = true
}

func (v *Variable) String() string {
	return fmt.Sprintf("Variable#%d(%s)", v.id, v.value)
}

// OpNode is an operation node: an ops.Operation applied to its parents.
type OpNode struct {
	expr
	op      ops.Operation
	parents []Node
}

// Op returns the node's operation.
func (n *OpNode) Op() ops.Operation { return n.op }

// Parents returns a copy of the parent list.
func (n *OpNode) Parents() []Node {
	out := make([]Node, len(n.parents))
	copy(out, n.parents)
	return out
}

// IsLeaf returns false.
func (n *OpNode) IsLeaf() bool { return false }

// Value evaluates the node's sub-graph.
func (n *OpNode) Value() (vector.Vector, error) {
	values, err := evaluate(TopologicalOrder(n))
	if err != nil {
		return vector.Vector{}, err
	}
	return values[n.id], nil
}

// PartialDerivative returns adjoint times the local derivative toward wrt.
//
// If wrt fills more than one operand slot (e.g. x*x) the contributions of
// every slot are summed.
func (n *OpNode) PartialDerivative(adjoint vector.Vector, wrt Node) (vector.Vector, error) {
	inputs := make([]vector.Vector, len(n.parents))
	for i, p := range n.parents {
		v, err := p.Value()
		if err != nil {
			return vector.Vector{}, err
		}
		inputs[i] = v
	}

	grads, err := n.backward(adjoint, inputs)
	if err != nil {
		return vector.Vector{}, err
	}

	var (
		total vector.Vector
		found bool
	)
	for i, p := range n.parents {
		if !sameNode(p, wrt) {
			continue
		}
		if !found {
			total, found = grads[i], true
			continue
		}
		if total, err = total.Add(grads[i]); err != nil {
			return vector.Vector{}, err
		}
	}
	if !found {
		return vector.Zeros(1), nil
	}
	return total, nil
}

func (n *OpNode) forward(inputs []vector.Vector) (vector.Vector, error) {
	out, err := n.op.Forward(inputs)
	if err != nil {
		return vector.Vector{}, fmt.Errorf("%s#%d: %w", n.op.Name(), n.id, err)
	}
	return out, nil
}

func (n *OpNode) backward(adjoint vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	grads, err := n.op.Backward(adjoint, inputs)
	if err != nil {
		return nil, fmt.Errorf("%s#%d: %w", n.op.Name(), n.id, err)
	}
	return grads, nil
}

func (n *OpNode) String() string {
	parts := make([]string, len(n.parents))
	for i, p := range n.parents {
		parts[i] = fmt.Sprintf("#%d", p.ID())
	}
	return fmt.Sprintf("%s#%d(%s)", n.op.Name(), n.id, strings.Join(parts, ", "))
}

func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Graph() == b.Graph() && a.ID() == b.ID()
}
