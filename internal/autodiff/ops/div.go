package ops

import "github.com/born-ml/autograd/internal/vector"

// DivOp represents an element-wise division operation: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct{}

// NewDivOp creates a new DivOp.
func NewDivOp() *DivOp {
	return &DivOp{}
}

// Name returns "Div".
func (op *DivOp) Name() string { return "Div" }

// Arity returns 2.
func (op *DivOp) Arity() int { return 2 }

// Forward computes a / b.
func (op *DivOp) Forward(inputs []vector.Vector) (vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return vector.Vector{}, err
	}
	return inputs[0].Div(inputs[1])
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return nil, err
	}
	return broadcastBackward(op.Name(), outputGrad, inputs[0], inputs[1], divLeft, divRight)
}

func divLeft(_, b vector.Vector) (vector.Vector, error) {
	return vector.Scalar(1).Div(b)
}

func divRight(a, b vector.Vector) (vector.Vector, error) {
	bSquared, err := b.Mul(b)
	if err != nil {
		return vector.Vector{}, err
	}
	return a.Neg().Div(bSquared)
}
