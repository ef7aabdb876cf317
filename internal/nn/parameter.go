package nn

import (
	"fmt"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/vector"
)

// Parameter is a named trainable vector.
//
// The value lives outside any graph. Bind places it into a graph as a leaf
// Variable; after autodiff.Grad has run, Grad reads the gradient back from
// that Variable.
//
// Example:
//
//	weight := nn.NewParameter("weight", vector.MustNew(-0.5, 0.3, 1))
//
//	g := autodiff.NewGraph()
//	w := weight.Bind(g)
//	loss := w.MatMul(autodiff.Const(x)).Sigmoid().Log().Neg()
//	_ = autodiff.Grad(loss)
//
//	grad, _ := weight.Grad()
type Parameter struct {
	name  string
	value vector.Vector
	bound map[*autodiff.Graph]*autodiff.Variable
	last  *autodiff.Variable // Variable in the most recently bound graph
}

// NewParameter creates a new trainable parameter holding a copy of value.
func NewParameter(name string, value vector.Vector) *Parameter {
	return &Parameter{
		name:  name,
		value: value.Copy(),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Dim returns the width of the parameter.
func (p *Parameter) Dim() int {
	return p.value.Dim()
}

// Value returns a copy of the current value.
func (p *Parameter) Value() vector.Vector {
	return p.value.Copy()
}

// SetValue replaces the value. The width must not change.
//
// Bindings are dropped, since bound Variables now hold stale data.
func (p *Parameter) SetValue(v vector.Vector) error {
	if v.Dim() != p.value.Dim() {
		return fmt.Errorf("parameter %q: %w", p.name,
			&vector.ShapeError{Op: "set", Left: p.value.Dim(), Right: v.Dim()})
	}
	p.value = v.Copy()
	p.unbind()
	return nil
}

// Bind returns the Variable representing p in g.
//
// Each graph gets one Variable for as long as the binding lives, so a
// parameter used in several places of g accumulates one gradient, even when
// binds into other graphs happen in between. Bindings are dropped by
// ZeroGrad and SetValue.
func (p *Parameter) Bind(g *autodiff.Graph) *autodiff.Variable {
	v, ok := p.bound[g]
	if !ok {
		if p.bound == nil {
			p.bound = make(map[*autodiff.Graph]*autodiff.Variable)
		}
		v = g.Variable(p.value)
		p.bound[g] = v
	}
	p.last = v
	return v
}

// Grad returns the gradient from the last backward pass over the most
// recently bound graph. The boolean is false if p is unbound or was not
// reached.
func (p *Parameter) Grad() (vector.Vector, bool) {
	if p.last == nil {
		return vector.Vector{}, false
	}
	return p.last.Grad()
}

// ZeroGrad drops every binding, clearing the gradient.
func (p *Parameter) ZeroGrad() {
	p.unbind()
}

func (p *Parameter) unbind() {
	p.bound = nil
	p.last = nil
}

func (p *Parameter) String() string {
	return fmt.Sprintf("Parameter(%s, %s)", p.name, p.value)
}
