package vector

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrConstruction  = errors.New("invalid vector construction")
	ErrIndex         = errors.New("invalid vector index")
	ErrShapeMismatch = errors.New("vector dimensions don't match and aren't broadcastable")
	ErrState         = errors.New("only one element vectors can be converted to scalars")
)

// ShapeError describes a dimension conflict between two operands.
type ShapeError struct {
	Op    string // Operation that detected the mismatch (e.g., "add", "dot")
	Left  int    // Dimension of the left operand
	Right int    // Dimension of the right operand (or target width)
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: dimensions %d and %d: %v", e.Op, e.Left, e.Right, ErrShapeMismatch)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// IndexError describes an out of range or malformed index.
type IndexError struct {
	Index   int    // Offending index (or slice length for length mismatches)
	Dim     int    // Dimension of the indexed vector
	Details string // Additional details
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("index %d (dim %d): %s: %v", e.Index, e.Dim, e.Details, ErrIndex)
	}
	return fmt.Sprintf("index %d out of range for dim %d: %v", e.Index, e.Dim, ErrIndex)
}

// Unwrap returns ErrIndex.
func (e *IndexError) Unwrap() error {
	return ErrIndex
}

func shapeError(op string, left, right int) error {
	return &ShapeError{Op: op, Left: left, Right: right}
}
