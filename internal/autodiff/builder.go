package autodiff

import "github.com/born-ml/autograd/internal/autodiff/ops"

// newOpNode boxes operands into g and registers the operation node.
// Nothing is evaluated.
func (g *Graph) newOpNode(op ops.Operation, operands ...Operand) Node {
	parents := make([]Node, len(operands))
	for i, o := range operands {
		parents[i] = o.box(g)
	}
	n := &OpNode{op: op, parents: parents}
	g.register(n, &n.expr)
	return n
}

// Add builds a + b.
func (g *Graph) Add(a, b Operand) Node {
	return g.newOpNode(ops.NewAddOp(), a, b)
}

// Sub builds a - b.
func (g *Graph) Sub(a, b Operand) Node {
	return g.newOpNode(ops.NewSubOp(), a, b)
}

// Mul builds a * b elementwise.
func (g *Graph) Mul(a, b Operand) Node {
	return g.newOpNode(ops.NewMulOp(), a, b)
}

// Div builds a / b elementwise.
func (g *Graph) Div(a, b Operand) Node {
	return g.newOpNode(ops.NewDivOp(), a, b)
}

// Pow builds a raised to b elementwise.
func (g *Graph) Pow(a, b Operand) Node {
	return g.newOpNode(ops.NewPowOp(), a, b)
}

// MatMul builds the dot product a @ b as a 1-element vector.
func (g *Graph) MatMul(a, b Operand) Node {
	return g.newOpNode(ops.NewMatMulOp(), a, b)
}

// Abs builds |x|.
func (g *Graph) Abs(x Operand) Node {
	return g.newOpNode(ops.NewAbsOp(), x)
}

// Neg builds -x.
func (g *Graph) Neg(x Operand) Node {
	return g.newOpNode(ops.NewNegOp(), x)
}

// Log builds ln(x).
func (g *Graph) Log(x Operand) Node {
	return g.newOpNode(ops.NewLogOp(), x)
}

// Log2 builds log2(x).
func (g *Graph) Log2(x Operand) Node {
	return g.newOpNode(ops.NewLog2Op(), x)
}

// Log10 builds log10(x).
func (g *Graph) Log10(x Operand) Node {
	return g.newOpNode(ops.NewLog10Op(), x)
}

// Log1p builds ln(1+x).
func (g *Graph) Log1p(x Operand) Node {
	return g.newOpNode(ops.NewLog1pOp(), x)
}

// Exp builds e^x.
func (g *Graph) Exp(x Operand) Node {
	return g.newOpNode(ops.NewExpOp(), x)
}

// Sin builds sin(x).
func (g *Graph) Sin(x Operand) Node {
	return g.newOpNode(ops.NewSinOp(), x)
}

// Cos builds cos(x).
func (g *Graph) Cos(x Operand) Node {
	return g.newOpNode(ops.NewCosOp(), x)
}

// Tan builds tan(x).
func (g *Graph) Tan(x Operand) Node {
	return g.newOpNode(ops.NewTanOp(), x)
}

// Sinh builds sinh(x).
func (g *Graph) Sinh(x Operand) Node {
	return g.newOpNode(ops.NewSinhOp(), x)
}

// Cosh builds cosh(x).
func (g *Graph) Cosh(x Operand) Node {
	return g.newOpNode(ops.NewCoshOp(), x)
}

// Tanh builds tanh(x).
func (g *Graph) Tanh(x Operand) Node {
	return g.newOpNode(ops.NewTanhOp(), x)
}

// Sigmoid builds 1 / (1 + e^-x).
func (g *Graph) Sigmoid(x Operand) Node {
	return g.newOpNode(ops.NewSigmoidOp(), x)
}

// ReLU builds max(x, 0).
func (g *Graph) ReLU(x Operand) Node {
	return g.newOpNode(ops.NewReLUOp(), x)
}

// Sum builds the sum of x as a 1-element vector.
func (g *Graph) Sum(x Operand) Node {
	return g.newOpNode(ops.NewSumOp(), x)
}

// Builder methods shared by every node kind.

func (e *expr) Add(other Operand) Node { return e.graph.Add(e.self, other) }
func (e *expr) Sub(other Operand) Node { return e.graph.Sub(e.self, other) }
func (e *expr) Mul(other Operand) Node { return e.graph.Mul(e.self, other) }
func (e *expr) Div(other Operand) Node { return e.graph.Div(e.self, other) }
func (e *expr) Pow(other Operand) Node { return e.graph.Pow(e.self, other) }
func (e *expr) MatMul(other Operand) Node { return e.graph.MatMul(e.self, other) }

func (e *expr) Abs() Node { return e.graph.Abs(e.self) }
func (e *expr) Neg() Node { return e.graph.Neg(e.self) }
func (e *expr) Log() Node { return e.graph.Log(e.self) }
func (e *expr) Log2() Node { return e.graph.Log2(e.self) }
func (e *expr) Log10() Node { return e.graph.Log10(e.self) }
func (e *expr) Log1p() Node { return e.graph.Log1p(e.self) }
func (e *expr) Exp() Node { return e.graph.Exp(e.self) }
func (e *expr) Sin() Node { return e.graph.Sin(e.self) }
func (e *expr) Cos() Node { return e.graph.Cos(e.self) }
func (e *expr) Tan() Node { return e.graph.Tan(e.self) }
func (e *expr) Sinh() Node { return e.graph.Sinh(e.self) }
func (e *expr) Cosh() Node { return e.graph.Cosh(e.self) }
func (e *expr) Tanh() Node { return e.graph.Tanh(e.self) }
func (e *expr) Sigmoid() Node { return e.graph.Sigmoid(e.self) }
func (e *expr) ReLU() Node { return e.graph.ReLU(e.self) }
func (e *expr) Sum() Node { return e.graph.Sum(e.self) }
