package ops

import (
	"fmt"

	"github.com/born-ml/autograd/internal/vector"
)

// derivative computes a local derivative from inputs expanded to a common width.
type derivative func(a, b vector.Vector) (vector.Vector, error)

// checkArity verifies the number of inputs passed to an operation.
func checkArity(op Operation, inputs []vector.Vector) error {
	if len(inputs) != op.Arity() {
		return fmt.Errorf("%s: expected %d inputs, got %d", op.Name(), op.Arity(), len(inputs))
	}
	return nil
}

// commonDim returns the width both operands are expanded to.
func commonDim(a, b vector.Vector) int {
	return max(a.Dim(), b.Dim())
}

// broadcastBackward applies the chain rule for a binary operation.
//
// Both inputs are expanded to their common width before evaluating the local
// derivatives. After multiplying by outputGrad, each gradient is reduced to
// its input's own width: a 1-element input sums every position it was
// broadcast into.
//
// Example:
//
//	Forward: a[1] + b[3] -> c[3]  (a was broadcast)
//	Backward: grad_c[3] -> grad_a[1] (summed), grad_b[3]
func broadcastBackward(name string, outputGrad, a, b vector.Vector, da, db derivative) ([]vector.Vector, error) {
	n := commonDim(a, b)
	ea, err := a.Expand(n)
	if err != nil {
		return nil, fmt.Errorf("%s backward: %w", name, err)
	}
	eb, err := b.Expand(n)
	if err != nil {
		return nil, fmt.Errorf("%s backward: %w", name, err)
	}

	gradA, err := chain(outputGrad, ea, eb, da, a.Dim())
	if err != nil {
		return nil, fmt.Errorf("%s backward (left): %w", name, err)
	}
	gradB, err := chain(outputGrad, ea, eb, db, b.Dim())
	if err != nil {
		return nil, fmt.Errorf("%s backward (right): %w", name, err)
	}
	return []vector.Vector{gradA, gradB}, nil
}

// chain multiplies a local derivative by outputGrad and reduces to width.
func chain(outputGrad, ea, eb vector.Vector, d derivative, width int) (vector.Vector, error) {
	local, err := d(ea, eb)
	if err != nil {
		return vector.Vector{}, err
	}
	grad, err := outputGrad.Mul(local)
	if err != nil {
		return vector.Vector{}, err
	}
	return grad.ReduceTo(width)
}

// ones is the derivative of an input that passes through unchanged.
func ones(a, _ vector.Vector) (vector.Vector, error) {
	return a.Fill(1), nil
}

// negOnes is the derivative of a negated input.
func negOnes(a, _ vector.Vector) (vector.Vector, error) {
	return a.Fill(-1), nil
}

// left returns the left operand; d(a*b)/db = a.
func left(a, _ vector.Vector) (vector.Vector, error) {
	return a, nil
}

// right returns the right operand; d(a*b)/da = b.
func right(_, b vector.Vector) (vector.Vector, error) {
	return b, nil
}
