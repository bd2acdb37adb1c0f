// Package optim implements optimization algorithms for Nexum models.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Updates are built from the engine's scalar and elementwise operations and
// modify the parameter tensors in place.
//
// Example usage:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//
//	for epoch := range epochs {
//	    model.Forward(&out, batch)
//	    grads := computeGradients(model, out, targets)
//	    optimizer.Step(weights, grads)
//	}
package optim

import (
	"fmt"

	"github.com/nexum-ml/nexum/internal/nn"
	"github.com/nexum-ml/nexum/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step updates params[i] in place from grads[i]. Nil gradients are
	// skipped. params and grads must have the same length and each pair the
	// same shape.
	Step(params, grads []*tensor.Tensor)

	// LR returns the current learning rate.
	LR() float64

	// SetLR changes the learning rate, for schedules.
	SetLR(lr float64)
}

// StepParameters applies one step of o to every parameter using its
// gradient slot.
func StepParameters(o Optimizer, params []*nn.Parameter) {
	ts := make([]*tensor.Tensor, len(params))
	gs := make([]*tensor.Tensor, len(params))
	for i, p := range params {
		ts[i] = p.Tensor()
		gs[i] = p.Grad()
	}
	o.Step(ts, gs)
}

// ZeroGrad clears the gradient of every parameter.
func ZeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

func checkPairs(op string, params, grads []*tensor.Tensor) {
	if len(params) != len(grads) {
		panic(fmt.Sprintf("%s: %d parameters but %d gradients", op, len(params), len(grads)))
	}
}
