package ops

import "github.com/born-ml/autograd/internal/vector"

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// If broadcasting was used in the forward pass, gradients are summed back
// down to the scalar operand's width.
type AddOp struct{}

// NewAddOp creates a new AddOp.
func NewAddOp() *AddOp {
	return &AddOp{}
}

// Name returns "Add".
func (op *AddOp) Name() string { return "Add" }

// Arity returns 2.
func (op *AddOp) Arity() int { return 2 }

// Forward computes a + b.
func (op *AddOp) Forward(inputs []vector.Vector) (vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return vector.Vector{}, err
	}
	return inputs[0].Add(inputs[1])
}

// Backward computes input gradients for addition.
func (op *AddOp) Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return nil, err
	}
	return broadcastBackward(op.Name(), outputGrad, inputs[0], inputs[1], ones, ones)
}
