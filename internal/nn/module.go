// Package nn implements small neural network building blocks on top of the
// Nexum tensor engine.
//
// This package provides:
//   - Activation: None, ReLU, Sigmoid, Tanh, ELU, LeakyReLU
//   - Dense: fully connected layer computing act(W·x + b)
//   - Sequential: container chaining Dense layers
//   - Loss functions: MSE, MAE, RMSE, categorical and binary cross-entropy
//
// Samples are stored as columns: a batch of B inputs with F features is an
// (F, B) tensor. There is no automatic differentiation; gradients, when
// needed, are computed by the caller and applied through package optim.
package nn

import "github.com/nexum-ml/nexum/internal/tensor"

// Layer is implemented by every component that maps an input batch to an
// output batch.
type Layer interface {
	// Forward stores the layer output for input x in out.
	Forward(out, x *tensor.Tensor)

	// Parameters returns the trainable parameters, or nil for layers without any.
	Parameters() []*Parameter

	// Free releases every tensor owned by the layer.
	Free()
}
