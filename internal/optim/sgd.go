package optim

import (
	"fmt"

	"github.com/born-ml/autograd/internal/nn"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter][]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter][]float64),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient (not in the graph) are skipped.
func (s *SGD) Step() error {
	for _, param := range s.params {
		grad, ok := getGradient(param)
		if !ok {
			continue
		}

		update := grad
		if s.momentum != 0 {
			velocity, exists := s.velocities[param]
			if !exists {
				velocity = make([]float64, len(grad))
				s.velocities[param] = velocity
			}
			for i, g := range grad {
				velocity[i] = s.momentum*velocity[i] + g
			}
			update = velocity
		}

		data := param.Value().Data()
		for i := range data {
			data[i] -= s.lr * update[i]
		}
		if err := apply(param, data); err != nil {
			return fmt.Errorf("sgd: %w", err)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
