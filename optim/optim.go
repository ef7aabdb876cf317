// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for nn parameters.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
//
//	if err := autodiff.Grad(loss); err != nil {
//	    return err
//	}
//	if err := optimizer.Step(); err != nil {
//	    return err
//	}
//	optimizer.ZeroGrad()
package optim

import (
	"github.com/born-ml/autograd/internal/optim"
	"github.com/born-ml/autograd/nn"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config is the base configuration for optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD is gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam is the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
