package ops

import "github.com/born-ml/autograd/internal/vector"

// NewAbsOp creates |x|. The derivative is the three-way sign, so it is 0 at x == 0.
func NewAbsOp() *UnaryOp {
	return newUnaryOp("Abs", vector.Vector.Abs, vector.Vector.Sign)
}

// NewNegOp creates -x: derivative -1.
func NewNegOp() *UnaryOp {
	return newUnaryOp("Neg", vector.Vector.Neg, func(x vector.Vector) vector.Vector {
		return x.Fill(-1)
	})
}

// NewSigmoidOp creates σ(x) = 1 / (1 + exp(-x)).
//
// dσ/dx = σ(x) * (1 - σ(x)).
func NewSigmoidOp() *UnaryOp {
	return newUnaryOp("Sigmoid", vector.Vector.Sigmoid, func(x vector.Vector) vector.Vector {
		out := x.Sigmoid().Data()
		for i, s := range out {
			out[i] = s * (1 - s)
		}
		return vector.MustNew(out...)
	})
}

// NewReLUOp creates x·[x>0].
//
// d(ReLU(x))/dx = 1 if x > 0, else 0 (including the kink at 0).
func NewReLUOp() *UnaryOp {
	return newUnaryOp("ReLU", func(x vector.Vector) vector.Vector {
		out := x.Data()
		for i, v := range out {
			if v <= 0 {
				out[i] = 0
			}
		}
		return vector.MustNew(out...)
	}, vector.Vector.Step)
}

// NewSumOp creates Σx. The output has width 1; the derivative is a vector
// of ones at the input's width, so the adjoint is broadcast back out.
func NewSumOp() *UnaryOp {
	return newUnaryOp("Sum", vector.Vector.Sum, func(x vector.Vector) vector.Vector {
		return x.Fill(1)
	})
}
