// Copyright 2026 Nexum Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides SGD and Adam optimizers for Nexum models.
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	for step := range steps {
//	    // ... fill every parameter's Grad() ...
//	    optim.StepParameters(opt, model.Parameters())
//	}
package optim

import (
	"github.com/nexum-ml/nexum/internal/optim"
	"github.com/nexum-ml/nexum/nn"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer. Zero fields take their defaults
// (LR 0.001, Beta1 0.9, Beta2 0.999, Eps 1e-8).
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// StepParameters applies one step of o using each parameter's gradient slot.
func StepParameters(o Optimizer, params []*nn.Parameter) {
	optim.StepParameters(o, params)
}

// ZeroGrad clears the gradient of every parameter.
func ZeroGrad(params []*nn.Parameter) {
	optim.ZeroGrad(params)
}
