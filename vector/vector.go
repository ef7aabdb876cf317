// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides the fixed-length float64 vectors the autodiff
// engine computes with.
//
// Vectors are immutable values. Binary operations broadcast a 1-element
// vector against a vector of any width; any other width mismatch returns an
// error wrapping ErrShapeMismatch.
//
// Example:
//
//	a := vector.MustNew(1, 2, 3)
//	b, err := a.Mul(vector.Scalar(2)) // [2, 4, 6]
package vector

import (
	"github.com/born-ml/autograd/internal/vector"
)

// Vector is an immutable, fixed-length sequence of float64.
type Vector = vector.Vector

// ShapeError reports incompatible widths in a binary operation.
type ShapeError = vector.ShapeError

// IndexError reports an invalid index or slice.
type IndexError = vector.IndexError

// Errors.
var (
	ErrConstruction  = vector.ErrConstruction
	ErrIndex         = vector.ErrIndex
	ErrShapeMismatch = vector.ErrShapeMismatch
	ErrState         = vector.ErrState
)

// New creates a vector from values. At least one value is required.
func New(data ...float64) (Vector, error) {
	return vector.New(data...)
}

// MustNew is like New but panics on error.
func MustNew(data ...float64) Vector {
	return vector.MustNew(data...)
}

// Scalar creates a 1-element vector.
func Scalar(x float64) Vector {
	return vector.Scalar(x)
}

// FromAny converts a number, a numeric slice or a Vector into a Vector.
func FromAny(value any) (Vector, error) {
	return vector.FromAny(value)
}

// Ones creates a vector of n ones.
func Ones(n int) Vector {
	return vector.Ones(n)
}

// Zeros creates a vector of n zeros.
func Zeros(n int) Vector {
	return vector.Zeros(n)
}

// Full creates a vector of n copies of x.
func Full(n int, x float64) Vector {
	return vector.Full(n, x)
}
