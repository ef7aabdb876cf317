package ops

import "github.com/born-ml/autograd/internal/vector"

// PowOp represents an element-wise power operation: output = a ^ b.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1)
//   - d(a^b)/db = ln(a) * a^b
//
// The exponent gradient is NaN for non-positive bases.
type PowOp struct{}

// NewPowOp creates a new PowOp.
func NewPowOp() *PowOp {
	return &PowOp{}
}

// Name returns "Pow".
func (op *PowOp) Name() string { return "Pow" }

// Arity returns 2.
func (op *PowOp) Arity() int { return 2 }

// Forward computes a ^ b.
func (op *PowOp) Forward(inputs []vector.Vector) (vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return vector.Vector{}, err
	}
	return inputs[0].Pow(inputs[1])
}

// Backward computes input gradients for the power operation.
func (op *PowOp) Backward(outputGrad vector.Vector, inputs []vector.Vector) ([]vector.Vector, error) {
	if err := checkArity(op, inputs); err != nil {
		return nil, err
	}
	return broadcastBackward(op.Name(), outputGrad, inputs[0], inputs[1], powBase, powExponent)
}

func powBase(a, b vector.Vector) (vector.Vector, error) {
	bMinusOne, err := b.Sub(vector.Scalar(1))
	if err != nil {
		return vector.Vector{}, err
	}
	p, err := a.Pow(bMinusOne)
	if err != nil {
		return vector.Vector{}, err
	}
	return b.Mul(p)
}

func powExponent(a, b vector.Vector) (vector.Vector, error) {
	p, err := a.Pow(b)
	if err != nil {
		return vector.Vector{}, err
	}
	return a.Log().Mul(p)
}
