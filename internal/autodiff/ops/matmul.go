package ops

import "github.com/born-ml/autograd/internal/vector"

// MatMulOp represents the vector product: output = a @ b = Σ a[i]*b[i].
//
// The output is a 1-element vector. Inputs must have equal widths.
//
// Backward pass:
//   - d(a@b)/da = b, so grad_a = outputGrad * b
//   - d(a@b)/db = a, so grad_b = outputGrad * a
type MatMulOp struct{}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp() *MatMulOp {
	return &MatMulOp{}
}

// Name returns "MatMul".
func (op *MatMulOp) Name() string { return "MatMul" }

// Arity returns 2.
func (op *MatMulOp) Arity() int { return 2 }

// Forward computes the dot product of a and b.
func (op *MatMulOp) Forward(inputs []vector.Vector) (vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return vector.Vector{}, err
	}
	return inputs[0].Dot(inputs[1])
}

// Backward computes input gradients for the dot product.
func (op *MatMulOp) Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return nil, err
	}
	return broadcastBackward(op.Name(), outputGrad, inputs[0], inputs[1], right, left)
}
