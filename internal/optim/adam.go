package optim

import (
	"math"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int                               // Timestep for bias correction
	m     map[*tensor.Tensor]*tensor.Tensor // First moment estimates
	v     map[*tensor.Tensor]*tensor.Tensor // Second moment estimates

	tmp, mHat, vHat tensor.Tensor
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64 // Learning rate (default: 0.001)
	Beta1 float64 // First moment decay (default: 0.9)
	Beta2 float64 // Second moment decay (default: 0.999)
	Eps   float64 // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer. Zero fields take their defaults.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		lr:    config.LR,
		beta1: config.Beta1,
		beta2: config.Beta2,
		eps:   config.Eps,
		m:     make(map[*tensor.Tensor]*tensor.Tensor),
		v:     make(map[*tensor.Tensor]*tensor.Tensor),
	}
}

// Step performs a single optimization step. The timestep advances once per
// call, whatever the number of parameters.
func (a *Adam) Step(params, grads []*tensor.Tensor) {
	checkPairs("adam", params, grads)
	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, param := range params {
		grad := grads[i]
		if grad == nil {
			continue
		}
		m, ok := a.m[param]
		if !ok {
			m = tensor.ZerosLike(param)
			a.m[param] = m
		}
		v, ok := a.v[param]
		if !ok {
			v = tensor.ZerosLike(param)
			a.v[param] = v
		}

		// m = beta1*m + (1-beta1)*g
		m.MulScalarInplace(a.beta1)
		a.tmp.MulScalar(grad, 1-a.beta1)
		m.Add(m, &a.tmp)

		// v = beta2*v + (1-beta2)*g²
		v.MulScalarInplace(a.beta2)
		a.tmp.Square(grad)
		a.tmp.MulScalarInplace(1 - a.beta2)
		v.Add(v, &a.tmp)

		a.mHat.DivScalar(m, biasCorrection1)
		a.vHat.DivScalar(v, biasCorrection2)
		a.vHat.ApplyInplace(math.Sqrt)
		a.vHat.AddScalarInplace(a.eps)

		a.mHat.Div(&a.mHat, &a.vHat)
		a.mHat.MulScalarInplace(a.lr)
		param.Sub(param, &a.mHat)
	}
}

// LR returns the learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR changes the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// Steps returns the number of completed steps.
func (a *Adam) Steps() int {
	return a.t
}
