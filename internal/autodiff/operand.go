package autodiff

import "github.com/born-ml/autograd/internal/vector"

// Operand is a value accepted by every expression builder: a Node of the
// same graph, or a raw value created with Const or Scalar.
//
// Raw values are boxed into fresh leaf Variables when the operation node
// is built.
type Operand interface {
	box(g *Graph) Node
}

type constant struct {
	value vector.Vector
}

func (c constant) box(g *Graph) Node {
	return g.Variable(c.value)
}

// Const wraps a vector as an operand.
func Const(v vector.Vector) Operand {
	return constant{value: v.Copy()}
}

// Scalar wraps a number as an operand.
func Scalar(x float64) Operand {
	return constant{value: vector.Scalar(x)}
}
