package vector

import "math"

// unaryOp applies f to every element.
func (v Vector) unaryOp(f func(float64) float64) Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}
	return Vector{data: out}
}

// binaryOp applies f elementwise, broadcasting a 1-element operand across
// the other operand's width.
func (v Vector) binaryOp(op string, other Vector, f func(a, b float64) float64) (Vector, error) {
	if err := checkOperands(op, v, other); err != nil {
		return Vector{}, err
	}
	switch {
	case v.Dim() == other.Dim():
		out := make([]float64, len(v.data))
		for i := range v.data {
			out[i] = f(v.data[i], other.data[i])
		}
		return Vector{data: out}, nil
	case v.Dim() == 1:
		s := v.data[0]
		out := make([]float64, len(other.data))
		for i, x := range other.data {
			out[i] = f(s, x)
		}
		return Vector{data: out}, nil
	case other.Dim() == 1:
		s := other.data[0]
		out := make([]float64, len(v.data))
		for i, x := range v.data {
			out[i] = f(x, s)
		}
		return Vector{data: out}, nil
	default:
		return Vector{}, shapeError(op, v.Dim(), other.Dim())
	}
}

// checkOperands rejects the empty zero value, which no constructor returns.
func checkOperands(op string, a, b Vector) error {
	if err := checkDim(op, a.Dim()); err != nil {
		return err
	}
	return checkDim(op, b.Dim())
}

// Abs returns |x| elementwise.
func (v Vector) Abs() Vector { return v.unaryOp(math.Abs) }

// Neg returns -x elementwise.
func (v Vector) Neg() Vector { return v.unaryOp(func(x float64) float64 { return -x }) }

// Log returns the natural logarithm elementwise.
func (v Vector) Log() Vector { return v.unaryOp(math.Log) }

// Log2 returns the base-2 logarithm elementwise.
func (v Vector) Log2() Vector { return v.unaryOp(math.Log2) }

// Log10 returns the base-10 logarithm elementwise.
func (v Vector) Log10() Vector { return v.unaryOp(math.Log10) }

// Log1p returns ln(1+x) elementwise.
func (v Vector) Log1p() Vector { return v.unaryOp(math.Log1p) }

// Exp returns e^x elementwise.
func (v Vector) Exp() Vector { return v.unaryOp(math.Exp) }

// Sin returns sin(x) elementwise.
func (v Vector) Sin() Vector { return v.unaryOp(math.Sin) }

// Cos returns cos(x) elementwise.
func (v Vector) Cos() Vector { return v.unaryOp(math.Cos) }

// Tan returns tan(x) elementwise.
func (v Vector) Tan() Vector { return v.unaryOp(math.Tan) }

// Sinh returns sinh(x) elementwise.
func (v Vector) Sinh() Vector { return v.unaryOp(math.Sinh) }

// Cosh returns cosh(x) elementwise.
func (v Vector) Cosh() Vector { return v.unaryOp(math.Cosh) }

// Tanh returns tanh(x) elementwise.
func (v Vector) Tanh() Vector { return v.unaryOp(math.Tanh) }

// Sigmoid returns 1 / (1 + e^-x) elementwise.
func (v Vector) Sigmoid() Vector {
	return v.unaryOp(func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
}

// Sign returns +1, 0 or -1 per element.
func (v Vector) Sign() Vector {
	return v.unaryOp(func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// Step returns 1 where x > 0 and 0 elsewhere (including x == 0).
func (v Vector) Step() Vector {
	return v.unaryOp(func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	})
}

// Add returns v + other.
func (v Vector) Add(other Vector) (Vector, error) {
	return v.binaryOp("add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) (Vector, error) {
	return v.binaryOp("sub", other, func(a, b float64) float64 { return a - b })
}

// Mul returns v * other elementwise.
func (v Vector) Mul(other Vector) (Vector, error) {
	return v.binaryOp("mul", other, func(a, b float64) float64 { return a * b })
}

// Div returns v / other elementwise.
func (v Vector) Div(other Vector) (Vector, error) {
	return v.binaryOp("div", other, func(a, b float64) float64 { return a / b })
}

// Pow returns v raised to other elementwise.
func (v Vector) Pow(other Vector) (Vector, error) {
	return v.binaryOp("pow", other, math.Pow)
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return v.unaryOp(func(x float64) float64 { return x * s })
}

// Sum returns the sum of all elements as a 1-element vector.
func (v Vector) Sum() Vector {
	var sum float64
	for _, x := range v.data {
		sum += x
	}
	return Scalar(sum)
}

// Dot returns Σ v[i]*other[i] as a 1-element vector.
// Both operands must have the same width; no broadcasting is applied.
func (v Vector) Dot(other Vector) (Vector, error) {
	if err := checkOperands("dot", v, other); err != nil {
		return Vector{}, err
	}
	if v.Dim() != other.Dim() {
		return Vector{}, shapeError("dot", v.Dim(), other.Dim())
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}
	return Scalar(sum), nil
}

// MatMul is the vector product v @ other, i.e. Dot.
func (v Vector) MatMul(other Vector) (Vector, error) {
	return v.Dot(other)
}
