// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on the autodiff graph.
//
// # Overview
//
// This package contains:
//   - Layers: Linear (single neuron, w·x + b)
//   - Activations: ReLU, Sigmoid, Tanh
//   - Loss functions: BCELoss, MSELoss
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier
//
// # Basic Usage
//
//	model := nn.NewSequential(
//	    nn.NewLinear(3, rng),
//	    nn.NewSigmoid(),
//	)
//
//	g := autodiff.NewGraph()
//	loss := nn.NewBCELoss().Forward(model.Forward(g.Variable(x)), 1)
//	_ = autodiff.Grad(loss)
package nn

import (
	"math/rand"

	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/vector"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter is a named trainable vector.
type Parameter = nn.Parameter

// NewParameter creates a new parameter holding a copy of value.
func NewParameter(name string, value vector.Vector) *Parameter {
	return nn.NewParameter(name, value)
}

// Layers

// Linear is a single neuron computing w·x + b.
type Linear = nn.Linear

// NewLinear creates a Linear neuron with Xavier-initialized weights.
func NewLinear(inFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, rng)
}

// NewLinearFrom creates a Linear neuron with the given weight and bias.
func NewLinearFrom(weight vector.Vector, bias float64) (*Linear, error) {
	return nn.NewLinearFrom(weight, bias)
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// ReLU applies max(0, x).
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid applies 1 / (1 + e^-x).
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh applies the hyperbolic tangent.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// Losses

// BCELoss is binary cross-entropy.
type BCELoss = nn.BCELoss

// NewBCELoss creates a new binary cross-entropy loss.
func NewBCELoss() *BCELoss {
	return nn.NewBCELoss()
}

// MSELoss is mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Xavier draws n weights from the Glorot uniform distribution.
func Xavier(n, fanIn, fanOut int, rng *rand.Rand) vector.Vector {
	return nn.Xavier(n, fanIn, fanOut, rng)
}
