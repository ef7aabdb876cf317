package ops

import (
	"fmt"

	"github.com/born-ml/autograd/internal/vector"
)

// UnaryOp is a single-input operation described by its forward function
// and the closed-form derivative of that function.
//
// Backward pass:
//   - grad_input = outputGrad * fnGrad(input)
type UnaryOp struct {
	name   string
	fn     func(vector.Vector) vector.Vector
	fnGrad func(vector.Vector) vector.Vector
}

func newUnaryOp(name string, fn, fnGrad func(vector.Vector) vector.Vector) *UnaryOp {
	return &UnaryOp{name: name, fn: fn, fnGrad: fnGrad}
}

// Name returns the operation name.
func (op *UnaryOp) Name() string { return op.name }

// Arity returns 1.
func (op *UnaryOp) Arity() int { return 1 }

// Forward applies the operation to its input.
func (op *UnaryOp) Forward(inputs []vector.Vector) (vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return vector.Vector{}, err
	}
	return op.fn(inputs[0]), nil
}

// Backward computes the input gradient.
func (op *UnaryOp) Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return nil, err
	}
	grad, err := outputGrad.Mul(op.fnGrad(inputs[0]))
	if err != nil {
		return nil, fmt.Errorf("%s backward: %w", op.name, err)
	}
	return []vector.Vector{grad}, nil
}
