package ops

import (
	"math"

	"github.com/born-ml/autograd/internal/vector"
)

// reciprocal returns 1 / (scale*x + offset + Epsilon) elementwise.
func reciprocal(x vector.Vector, scale, offset float64) vector.Vector {
	out := x.Data()
	for i, v := range out {
		out[i] = 1 / (v*scale + offset + Epsilon)
	}
	return vector.MustNew(out...)
}

// NewLogOp creates the natural logarithm: d(ln x)/dx = 1/(x+ε).
func NewLogOp() *UnaryOp {
	return newUnaryOp("Log", vector.Vector.Log, func(x vector.Vector) vector.Vector {
		return reciprocal(x, 1, 0)
	})
}

// NewLog2Op creates the base-2 logarithm: d(log2 x)/dx = 1/(x·ln2+ε).
func NewLog2Op() *UnaryOp {
	return newUnaryOp("Log2", vector.Vector.Log2, func(x vector.Vector) vector.Vector {
		return reciprocal(x, math.Ln2, 0)
	})
}

// NewLog10Op creates the base-10 logarithm: d(log10 x)/dx = 1/(x·ln10+ε).
func NewLog10Op() *UnaryOp {
	return newUnaryOp("Log10", vector.Vector.Log10, func(x vector.Vector) vector.Vector {
		return reciprocal(x, math.Ln10, 0)
	})
}

// NewLog1pOp creates ln(1+x): derivative 1/((1+x)+ε).
func NewLog1pOp() *UnaryOp {
	return newUnaryOp("Log1p", vector.Vector.Log1p, func(x vector.Vector) vector.Vector {
		return reciprocal(x, 1, 1)
	})
}

// NewExpOp creates e^x, which is its own derivative.
func NewExpOp() *UnaryOp {
	return newUnaryOp("Exp", vector.Vector.Exp, vector.Vector.Exp)
}
