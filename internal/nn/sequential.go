package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/vector"
)

// Sequential chains modules; each module's output is the next one's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(3, rng),
//	    nn.NewSigmoid(),
//	)
//	output := model.Forward(input)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input autodiff.Node) autodiff.Node {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns the parameters of all modules, in module order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// StateDict returns a copy of every parameter value keyed by
// "<module index>.<parameter name>" (e.g. "0.weight").
func (s *Sequential) StateDict() map[string]vector.Vector {
	stateDict := make(map[string]vector.Vector)
	for i, module := range s.modules {
		for _, p := range module.Parameters() {
			stateDict[fmt.Sprintf("%d.%s", i, p.Name())] = p.Value()
		}
	}
	return stateDict
}

// LoadStateDict restores parameter values from a state dictionary.
//
// Every parameter must be present and keep its width; unknown keys are
// rejected. Nothing is changed unless the whole dictionary is valid.
func (s *Sequential) LoadStateDict(stateDict map[string]vector.Vector) error {
	type update struct {
		param *Parameter
		value vector.Vector
	}

	var updates []update
	for i, module := range s.modules {
		for _, p := range module.Parameters() {
			key := fmt.Sprintf("%d.%s", i, p.Name())
			v, ok := stateDict[key]
			if !ok {
				return fmt.Errorf("load state: missing %q", key)
			}
			if v.Dim() != p.Dim() {
				return fmt.Errorf("load state: %q: %w", key,
					&vector.ShapeError{Op: "load", Left: p.Dim(), Right: v.Dim()})
			}
			updates = append(updates, update{param: p, value: v})
		}
	}
	if len(updates) != len(stateDict) {
		return fmt.Errorf("load state: %d unexpected keys", len(stateDict)-len(updates))
	}

	for _, u := range updates {
		if err := u.param.SetValue(u.value); err != nil {
			return fmt.Errorf("load state: %w", err)
		}
	}
	return nil
}

func (s *Sequential) String() string {
	names := make([]string, len(s.modules))
	for i, m := range s.modules {
		names[i] = strings.TrimPrefix(fmt.Sprintf("%T", m), "*nn.")
	}
	return "Sequential(" + strings.Join(names, ", ") + ")"
}
