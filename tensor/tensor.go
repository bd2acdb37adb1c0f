// Copyright 2026 Nexum Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/nexum-ml/nexum/internal/tensor"
)

// Tensor is a dense row-major matrix of float64 values.
// The zero value is an empty tensor ready for Alloc or any operation.
type Tensor = tensor.Tensor

// Shape is the (rows, cols) dimensions of a tensor.
type Shape = tensor.Shape

// Axis selects the direction of a broadcast, reduction, or expansion.
type Axis = tensor.Axis

// Axis constants.
const (
	AxisRow Axis = tensor.AxisRow
	AxisCol Axis = tensor.AxisCol
)

// MaxElements is the largest element count a single tensor may hold.
const MaxElements = tensor.MaxElements

// ShapeError reports operands with incompatible shapes.
type ShapeError = tensor.ShapeError

// OpError reports a precondition violation inside an operation.
type OpError = tensor.OpError

// Precondition sentinels carried by OpError.
var (
	ErrNotAllocated      = tensor.ErrNotAllocated
	ErrInvalidDimension  = tensor.ErrInvalidDimension
	ErrDimensionOverflow = tensor.ErrDimensionOverflow
	ErrZeroDivisor       = tensor.ErrZeroDivisor
	ErrInvalidAxis       = tensor.ErrInvalidAxis
	ErrIndexOutOfRange   = tensor.ErrIndexOutOfRange
	ErrBufferSize        = tensor.ErrBufferSize
)

// New returns an allocated m×n tensor of zeros.
func New(m, n int) *Tensor {
	return tensor.New(m, n)
}

// FromSlice returns an m×n tensor holding a copy of data.
func FromSlice(m, n int, data []float64) *Tensor {
	return tensor.FromSlice(m, n, data)
}

// Zeros returns a new m×n tensor of zeros.
func Zeros(m, n int) *Tensor {
	return tensor.Zeros(m, n)
}

// Ones returns a new m×n tensor of ones.
func Ones(m, n int) *Tensor {
	return tensor.Ones(m, n)
}

// Full returns a new m×n tensor filled with value.
func Full(m, n int, value float64) *Tensor {
	return tensor.Full(m, n, value)
}

// Eye returns the m×m identity matrix.
func Eye(m int) *Tensor {
	return tensor.Eye(m)
}

// Rand returns a new m×n tensor of uniform [0, 1) values.
func Rand(m, n int) *Tensor {
	return tensor.Rand(m, n)
}

// Randn returns a new m×n tensor of standard normal values.
func Randn(m, n int) *Tensor {
	return tensor.Randn(m, n)
}

// Arange returns a 1×k row from start towards end (exclusive) by step.
func Arange(start, end, step float64) *Tensor {
	return tensor.Arange(start, end, step)
}

// Linspace returns a 1×size row from start with step (end-start)/size.
func Linspace(start, end float64, size int) *Tensor {
	return tensor.Linspace(start, end, size)
}

// ZerosLike returns a zero tensor shaped like ref.
func ZerosLike(ref *Tensor) *Tensor {
	return tensor.ZerosLike(ref)
}

// OnesLike returns a tensor of ones shaped like ref.
func OnesLike(ref *Tensor) *Tensor {
	return tensor.OnesLike(ref)
}

// FullLike returns a tensor shaped like ref filled with value.
func FullLike(ref *Tensor, value float64) *Tensor {
	return tensor.FullLike(ref, value)
}

// Seed reseeds the random source used by Rand, Randn, AllocRand and AllocRandn.
func Seed(seed uint64) {
	tensor.Seed(seed)
}

// Equal reports whether a and b have the same shape and identical elements.
func Equal(a, b *Tensor) bool {
	return tensor.Equal(a, b)
}

// EqualApprox reports whether a and b have the same shape and elements within tol.
func EqualApprox(a, b *Tensor, tol float64) bool {
	return tensor.EqualApprox(a, b, tol)
}
