package ops

import "github.com/born-ml/autograd/internal/vector"

// SubOp represents an element-wise subtraction operation: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// NewSubOp creates a new SubOp.
func NewSubOp() *SubOp {
	return &SubOp{}
}

// Name returns "Sub".
func (op *SubOp) Name() string { return "Sub" }

// Arity returns 2.
func (op *SubOp) Arity() int { return 2 }

// Forward computes a - b.
func (op *SubOp) Forward(inputs []vector.Vector) (vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return vector.Vector{}, err
	}
	return inputs[0].Sub(inputs[1])
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return nil, err
	}
	return broadcastBackward(op.Name(), outputGrad, inputs[0], inputs[1], ones, negOnes)
}
