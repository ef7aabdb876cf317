// Package ops defines the differentiable operations of the expression graph.
//
// Each operation implements the Operation interface, which provides:
//   - Forward: the operation's value given its parents' values
//   - Backward: the local gradient contribution toward each parent
//
// Supported operations:
//   - Unary: Abs, Neg, Log, Log2, Log10, Log1p, Exp, Sin, Cos, Tan,
//     Sinh, Cosh, Tanh, Sigmoid, ReLU, Sum
//   - Binary: Add, Sub, Mul, Div, Pow, MatMul (dot product)
//
// Binary operations broadcast 1-element operands. Their Backward expands
// both inputs to the common width, applies the closed-form derivative, and
// reduces each gradient back to its input's own width.
package ops

import "github.com/born-ml/autograd/internal/vector"

// Epsilon keeps log-family derivatives finite at zero.
const Epsilon = 1e-12

// Operation represents a differentiable operation in the computation graph.
// Operations are stateless: inputs are passed in on every call.
type Operation interface {
	// Name returns the operation name (e.g., "Add", "Sin").
	Name() string

	// Arity returns the number of inputs the operation expects.
	Arity() int

	// Forward computes the operation's output from its input values.
	Forward(inputs []vector.Vector) (vector.Vector, error)

	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per input, each at that input's own width.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] reduced to widths of a and b
	Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error)
}
