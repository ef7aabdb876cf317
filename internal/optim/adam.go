package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/autograd/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                         // Timestep for bias correction
	m      map[*nn.Parameter][]float64 // First moment estimates
	v      map[*nn.Parameter][]float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling unset hyperparameters with
// their defaults.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*nn.Parameter][]float64),
		v:      make(map[*nn.Parameter][]float64),
	}
}

// Step performs a single optimization step. Parameters with no gradient
// are skipped.
func (a *Adam) Step() error {
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		grad, ok := getGradient(param)
		if !ok {
			continue
		}

		m, exists := a.m[param]
		if !exists {
			m = make([]float64, len(grad))
			a.m[param] = m
		}
		v, exists := a.v[param]
		if !exists {
			v = make([]float64, len(grad))
			a.v[param] = v
		}

		data := param.Value().Data()
		for i, g := range grad {
			m[i] = a.beta1*m[i] + (1.0-a.beta1)*g
			v[i] = a.beta2*v[i] + (1.0-a.beta2)*g*g

			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2
			data[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
		if err := apply(param, data); err != nil {
			return fmt.Errorf("adam: %w", err)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	for _, param := range a.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}
