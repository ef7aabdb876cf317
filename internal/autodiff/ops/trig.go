package ops

import (
	"math"

	"github.com/born-ml/autograd/internal/vector"
)

// NewSinOp creates sin(x): derivative cos(x).
func NewSinOp() *UnaryOp {
	return newUnaryOp("Sin", vector.Vector.Sin, vector.Vector.Cos)
}

// NewCosOp creates cos(x): derivative -sin(x).
func NewCosOp() *UnaryOp {
	return newUnaryOp("Cos", vector.Vector.Cos, func(x vector.Vector) vector.Vector {
		return x.Sin().Neg()
	})
}

// NewTanOp creates tan(x): derivative 1/cos²(x).
func NewTanOp() *UnaryOp {
	return newUnaryOp("Tan", vector.Vector.Tan, func(x vector.Vector) vector.Vector {
		out := x.Data()
		for i, v := range out {
			c := math.Cos(v)
			out[i] = 1 / (c * c)
		}
		return vector.MustNew(out...)
	})
}

// NewSinhOp creates sinh(x): derivative cosh(x).
func NewSinhOp() *UnaryOp {
	return newUnaryOp("Sinh", vector.Vector.Sinh, vector.Vector.Cosh)
}

// NewCoshOp creates cosh(x): derivative +sinh(x).
func NewCoshOp() *UnaryOp {
	return newUnaryOp("Cosh", vector.Vector.Cosh, vector.Vector.Sinh)
}

// NewTanhOp creates tanh(x): derivative 1 - tanh²(x).
func NewTanhOp() *UnaryOp {
	return newUnaryOp("Tanh", vector.Vector.Tanh, func(x vector.Vector) vector.Vector {
		out := x.Data()
		for i, v := range out {
			t := math.Tanh(v)
			out[i] = 1 - t*t
		}
		return vector.MustNew(out...)
	})
}
