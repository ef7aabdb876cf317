// Package optim implements optimization algorithms for nn parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read gradients from each Parameter after autodiff.Grad has run
// and write the updated values back.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{
//	    LR: 0.01,
//	})
//
//	for epoch := range epochs {
//	    g := autodiff.NewGraph()
//	    loss := lossFn.Forward(model.Forward(g.Variable(x)), y)
//	    if err := autodiff.Grad(loss); err != nil {
//	        return err
//	    }
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/vector"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters that received a
	// gradient in the last backward pass.
	Step() error

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// getGradient returns the gradient of param, or false if the parameter
// was not part of the last backward pass.
func getGradient(param *nn.Parameter) ([]float64, bool) {
	if param == nil {
		return nil, false
	}
	grad, ok := param.Grad()
	if !ok {
		return nil, false
	}
	return grad.Data(), true
}

// apply writes data back into param.
func apply(param *nn.Parameter, data []float64) error {
	v, err := vector.New(data...)
	if err != nil {
		return err
	}
	return param.SetValue(v)
}
