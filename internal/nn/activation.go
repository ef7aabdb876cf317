package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
)

// ReLU applies f(x) = max(0, x) element-wise.
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU.
func (r *ReLU) Forward(input autodiff.Node) autodiff.Node {
	return input.ReLU()
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid applies f(x) = 1 / (1 + e^-x) element-wise.
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid.
func (s *Sigmoid) Forward(input autodiff.Node) autodiff.Node {
	return input.Sigmoid()
}

// Parameters returns nil.
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// Tanh applies the hyperbolic tangent element-wise.
type Tanh struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies Tanh.
func (t *Tanh) Forward(input autodiff.Node) autodiff.Node {
	return input.Tanh()
}

// Parameters returns nil.
func (t *Tanh) Parameters() []*Parameter {
	return nil
}
