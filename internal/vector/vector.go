// Package vector implements a small fixed-length numeric vector with
// elementwise math, reductions and scalar/vector broadcasting.
//
// Vectors have value semantics: every operation returns a new Vector and
// never aliases the receiver's storage. Binary operations broadcast only
// between a 1-element vector and a vector of any width:
//
//	a := vector.MustNew(1, 2, 3)
//	b := vector.Scalar(2)
//	c, _ := a.Mul(b) // [2, 4, 6]
//
// Mismatched widths where neither side is 1 fail with ErrShapeMismatch.
package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an ordered sequence of float64 values with dim >= 1.
type Vector struct {
	data []float64
}

// New creates a vector from the given values.
// At least one value is required.
func New(data ...float64) (Vector, error) {
	if len(data) == 0 {
		return Vector{}, fmt.Errorf("new: empty data: %w", ErrConstruction)
	}
	return Vector{data: clone(data)}, nil
}

// MustNew is like New but panics on error.
func MustNew(data ...float64) Vector {
	v, err := New(data...)
	if err != nil {
		panic(err)
	}
	return v
}

// Scalar creates a 1-element vector.
func Scalar(x float64) Vector {
	return Vector{data: []float64{x}}
}

// FromAny converts a dynamically typed value into a Vector.
//
// Accepted inputs are Vector, []float64, []float32, []int and the Go
// integer and floating point kinds. Anything else is a construction error.
func FromAny(value any) (Vector, error) {
	switch v := value.(type) {
	case Vector:
		if v.Dim() == 0 {
			return Vector{}, fmt.Errorf("from %T: empty vector: %w", value, ErrConstruction)
		}
		return v.Copy(), nil
	case []float64:
		return New(v...)
	case []float32:
		data := make([]float64, len(v))
		for i, x := range v {
			data[i] = float64(x)
		}
		return New(data...)
	case []int:
		data := make([]float64, len(v))
		for i, x := range v {
			data[i] = float64(x)
		}
		return New(data...)
	case float64:
		return Scalar(v), nil
	case float32:
		return Scalar(float64(v)), nil
	case int:
		return Scalar(float64(v)), nil
	case int8:
		return Scalar(float64(v)), nil
	case int16:
		return Scalar(float64(v)), nil
	case int32:
		return Scalar(float64(v)), nil
	case int64:
		return Scalar(float64(v)), nil
	case uint:
		return Scalar(float64(v)), nil
	case uint8:
		return Scalar(float64(v)), nil
	case uint16:
		return Scalar(float64(v)), nil
	case uint32:
		return Scalar(float64(v)), nil
	case uint64:
		return Scalar(float64(v)), nil
	default:
		return Vector{}, fmt.Errorf("unsupported value type %T: %w", value, ErrConstruction)
	}
}

// Ones returns a vector of n ones.
//
// Panics with ErrConstruction if n < 1.
func Ones(n int) Vector {
	return Full(n, 1)
}

// Zeros returns a vector of n zeros.
//
// Panics with ErrConstruction if n < 1.
func Zeros(n int) Vector {
	return Full(n, 0)
}

// Full returns a vector of n copies of x.
//
// Panics with ErrConstruction if n < 1.
func Full(n int, x float64) Vector {
	if err := checkDim("full", n); err != nil {
		panic(err) // Callers derive n from existing vectors
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = x
	}
	return Vector{data: data}
}

// Dim returns the number of elements.
func (v Vector) Dim() int {
	return len(v.data)
}

// Copy returns an independent copy of v.
func (v Vector) Copy() Vector {
	return Vector{data: clone(v.data)}
}

// Fill returns a vector of the same width as v with every element set to x.
func (v Vector) Fill(x float64) Vector {
	return Full(v.Dim(), x)
}

// Item returns the only element of a 1-element vector.
func (v Vector) Item() (float64, error) {
	if v.Dim() != 1 {
		return 0, fmt.Errorf("item: dim %d: %w", v.Dim(), ErrState)
	}
	return v.data[0], nil
}

// Data returns a copy of the underlying values.
func (v Vector) Data() []float64 {
	return clone(v.data)
}

// String formats the vector; 1-element vectors print as Vector(x).
func (v Vector) String() string {
	if v.Dim() == 1 {
		return "Vector(" + formatFloat(v.data[0]) + ")"
	}
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = formatFloat(x)
	}
	return "Vector([" + strings.Join(parts, ", ") + "])"
}

// Expand replicates a 1-element vector to width n.
// A vector that already has width n is returned as a copy.
func (v Vector) Expand(n int) (Vector, error) {
	switch v.Dim() {
	case n:
		return v.Copy(), nil
	case 1:
		return Full(n, v.data[0]), nil
	default:
		return Vector{}, shapeError("expand", v.Dim(), n)
	}
}

// ReduceTo collapses a gradient to width n.
//
// Width 1 sums every element, matching a scalar that was broadcast across
// all positions in the forward pass. A vector already of width n passes
// through unchanged.
func (v Vector) ReduceTo(n int) (Vector, error) {
	switch n {
	case v.Dim():
		return v.Copy(), nil
	case 1:
		return v.Sum(), nil
	default:
		return Vector{}, shapeError("reduce", v.Dim(), n)
	}
}

// checkDim rejects widths below 1.
func checkDim(op string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: dim %d: %w", op, n, ErrConstruction)
	}
	return nil
}

func clone(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	return out
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
