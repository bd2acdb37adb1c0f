// Copyright 2026 Nexum Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides dense layers, activations and loss functions built on
// the Nexum tensor engine.
//
// Samples are columns: a batch of B inputs with F features is an (F, B)
// tensor.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(4, 16, nn.ReLU),
//	    nn.NewDense(16, 1, nn.Sigmoid),
//	)
//	var out tensor.Tensor
//	model.Forward(&out, batch)
//	loss := nn.BinaryCrossEntropy(labels, &out)
package nn

import (
	"io"

	"github.com/nexum-ml/nexum/internal/nn"
	"github.com/nexum-ml/nexum/tensor"
)

// Layer maps an input batch to an output batch.
type Layer = nn.Layer

// Parameter is a named trainable tensor with a gradient slot.
type Parameter = nn.Parameter

// Activation selects an elementwise nonlinearity.
type Activation = nn.Activation

// Activation constants.
const (
	None      Activation = nn.None
	ReLU      Activation = nn.ReLU
	Sigmoid   Activation = nn.Sigmoid
	Tanh      Activation = nn.Tanh
	ELU       Activation = nn.ELU
	LeakyReLU Activation = nn.LeakyReLU
)

// Epsilon is the clipping bound used by the cross-entropy losses.
const Epsilon = nn.Epsilon

// Dense is a fully connected layer computing act(W·x + b).
type Dense = nn.Dense

// Sequential chains layers.
type Sequential = nn.Sequential

// NewParameter wraps t as a trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// ParseActivation parses an activation name such as "relu".
func ParseActivation(s string) (Activation, error) {
	return nn.ParseActivation(s)
}

// NewDense creates a Dense layer with standard normal weights and zero bias.
func NewDense(in, out int, act Activation) *Dense {
	return nn.NewDense(in, out, act)
}

// NewDenseXavier creates a Dense layer with Xavier-initialized weights.
func NewDenseXavier(in, out int, act Activation) *Dense {
	return nn.NewDenseXavier(in, out, act)
}

// NewSequential creates a container over layers.
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Xavier returns an (fanOut, fanIn) Xavier/Glorot uniform tensor.
func Xavier(fanIn, fanOut int) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut)
}

// SaveDense writes d to path: binary for ".bin" paths, text otherwise.
func SaveDense(path string, d *Dense) error {
	return nn.SaveDense(path, d)
}

// LoadDense reads a layer saved by SaveDense.
func LoadDense(path string) (*Dense, error) {
	return nn.LoadDense(path)
}

// ReadDenseText decodes a layer from the text layer format.
func ReadDenseText(r io.Reader) (*Dense, error) {
	return nn.ReadDenseText(r)
}

// ReadDenseBinary decodes a layer from the binary layer format.
func ReadDenseBinary(r io.Reader) (*Dense, error) {
	return nn.ReadDenseBinary(r)
}

// MSE returns half the mean squared error.
func MSE(yTrue, yPred *tensor.Tensor) float64 {
	return nn.MSE(yTrue, yPred)
}

// MAE returns the mean absolute error.
func MAE(yTrue, yPred *tensor.Tensor) float64 {
	return nn.MAE(yTrue, yPred)
}

// RMSE returns the square root of MSE.
func RMSE(yTrue, yPred *tensor.Tensor) float64 {
	return nn.RMSE(yTrue, yPred)
}

// CategoricalCrossEntropy returns the per-sample categorical cross-entropy.
func CategoricalCrossEntropy(yTrue, yPred *tensor.Tensor) float64 {
	return nn.CategoricalCrossEntropy(yTrue, yPred)
}

// BinaryCrossEntropy returns the mean binary cross-entropy.
func BinaryCrossEntropy(yTrue, yPred *tensor.Tensor) float64 {
	return nn.BinaryCrossEntropy(yTrue, yPred)
}
