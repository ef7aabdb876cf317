// Package nn implements small neural network building blocks on top of the
// autodiff graph.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable vector bound into a graph per step
//   - Linear: Single neuron computing w·x + b
//   - Activations: ReLU, Sigmoid, Tanh
//   - Loss functions: BCE, MSE
//   - Sequential: Container for stacking modules
//
// Every Forward call builds nodes in the graph of its input, so a fresh
// graph per training step keeps memory bounded.
package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build small models:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(3, rng),
//	    nn.NewSigmoid(),
//	)
type Module interface {
	// Forward builds the module's output node in the graph of input.
	Forward(input autodiff.Node) autodiff.Node

	// Parameters returns all trainable parameters of this module.
	// Modules without state return nil.
	Parameters() []*Parameter
}
