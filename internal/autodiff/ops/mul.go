package ops

import "github.com/born-ml/autograd/internal/vector"

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// NewMulOp creates a new MulOp.
func NewMulOp() *MulOp {
	return &MulOp{}
}

// Name returns "Mul".
func (op *MulOp) Name() string { return "Mul" }

// Arity returns 2.
func (op *MulOp) Arity() int { return 2 }

// Forward computes a * b.
func (op *MulOp) Forward(inputs []vector.Vector) (vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return vector.Vector{}, err
	}
	return inputs[0].Mul(inputs[1])
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return nil, err
	}
	return broadcastBackward(op.Name(), outputGrad, inputs[0], inputs[1], right, left)
}
