package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/vector"
)

// Linear is a single neuron computing y = w·x + b.
//
// The weight has in features, the bias is a scalar and the output is a
// 1-element vector. Weights use Xavier initialization; the bias starts at 0.
//
// Example:
//
//	neuron := nn.NewLinear(3, rand.New(rand.NewSource(1)))
//	g := autodiff.NewGraph()
//	out := neuron.Forward(g.Variable(x))
type Linear struct {
	inFeatures int
	weight     *Parameter
	bias       *Parameter
}

// NewLinear creates a Linear neuron with inFeatures inputs.
func NewLinear(inFeatures int, rng *rand.Rand) *Linear {
	if inFeatures <= 0 {
		panic(fmt.Sprintf("nn.NewLinear: inFeatures must be positive, got %d", inFeatures))
	}
	return &Linear{
		inFeatures: inFeatures,
		weight:     NewParameter("weight", Xavier(inFeatures, inFeatures, 1, rng)),
		bias:       NewParameter("bias", vector.Zeros(1)),
	}
}

// NewLinearFrom creates a Linear neuron with the given weight and bias.
func NewLinearFrom(weight vector.Vector, bias float64) (*Linear, error) {
	if weight.Dim() == 0 {
		return nil, fmt.Errorf("nn.NewLinearFrom: %w", vector.ErrConstruction)
	}
	return &Linear{
		inFeatures: weight.Dim(),
		weight:     NewParameter("weight", weight),
		bias:       NewParameter("bias", vector.Scalar(bias)),
	}, nil
}

// Forward builds w @ input + b in the graph of input.
//
// A width mismatch surfaces as ErrShapeMismatch when the result is
// evaluated.
func (l *Linear) Forward(input autodiff.Node) autodiff.Node {
	g := input.Graph()
	w := l.weight.Bind(g)
	b := l.bias.Bind(g)
	return w.MatMul(input).Add(b)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the input width.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}
