package autodiff

import (
	"errors"

	"github.com/born-ml/autograd/internal/vector"
)

// ErrGraphMismatch is the panic value (wrapped) when nodes from different
// graphs are combined.
var ErrGraphMismatch = errors.New("operands belong to different graphs")

// Errors surfaced from vector algebra.
var (
	ErrConstruction  = vector.ErrConstruction
	ErrIndex         = vector.ErrIndex
	ErrShapeMismatch = vector.ErrShapeMismatch
	ErrState         = vector.ErrState
)
