// Package tensor provides the dense 2D float64 tensor type of the Nexum engine
// and every operation over it.
//
// A Tensor is either empty (the zero value) or allocated with a row-major
// buffer of exactly Rows()*Cols() elements. Operations write their result into
// the receiver, following the destination-first convention of gonum:
//
//	var c tensor.Tensor
//	c.MatMul(a, b) // c = a × b
//
// Misuse (shape mismatch, empty operands, invalid axes) panics with a
// *ShapeError or *OpError. These are programming errors, not runtime
// conditions; callers that need graceful handling must validate shapes first.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense row-major matrix of float64 values.
//
// Each Tensor exclusively owns its buffer. No operation shares a buffer
// between two tensors; reshape and transpose always copy.
type Tensor struct {
	id        uint64 // Opaque identifier reserved for a future autodiff graph
	rows      int
	cols      int
	data      []float64
	allocated bool
	refCount  uint32 // Reserved; never consulted by the engine
}

// New returns an allocated m×n tensor filled with zeros.
func New(m, n int) *Tensor {
	t := &Tensor{}
	t.Alloc(m, n)
	return t
}

// FromSlice returns an m×n tensor holding a copy of data.
func FromSlice(m, n int, data []float64) *Tensor {
	size := checkedSize("from_slice", m, n)
	if len(data) != size {
		fail("from_slice", ErrBufferSize, "shape %v requires %d elements, got %d", Shape{m, n}, size, len(data))
	}
	t := New(m, n)
	copy(t.data, data)
	return t
}

// Rows returns the number of rows (0 when empty).
func (t *Tensor) Rows() int {
	return t.rows
}

// Cols returns the number of columns (0 when empty).
func (t *Tensor) Cols() int {
	return t.cols
}

// Shape returns the tensor's dimensions.
func (t *Tensor) Shape() Shape {
	return Shape{Rows: t.rows, Cols: t.cols}
}

// Size returns the total number of elements, rows*cols.
func (t *Tensor) Size() int {
	return t.rows * t.cols
}

// Allocated reports whether the tensor holds a buffer.
func (t *Tensor) Allocated() bool {
	return t.allocated
}

// Data returns the row-major buffer (nil when empty).
//
// WARNING: the slice aliases the tensor's storage. Modifications are visible
// through the tensor, and the slice must not be handed to another tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// ID returns the opaque identifier.
func (t *Tensor) ID() uint64 {
	return t.id
}

// SetID sets the opaque identifier. It has no effect on any operation.
func (t *Tensor) SetID(id uint64) {
	t.id = id
}

// RefCount returns the reserved reference counter.
func (t *Tensor) RefCount() uint32 {
	return t.refCount
}

// At returns the element at row i, column j.
// Panics if the tensor is empty or the indices are out of bounds.
func (t *Tensor) At(i, j int) float64 {
	t.checkIndex("at", i, j)
	return t.data[i*t.cols+j]
}

// Set stores v at row i, column j.
func (t *Tensor) Set(i, j int, v float64) {
	t.checkIndex("set", i, j)
	t.data[i*t.cols+j] = v
}

func (t *Tensor) checkIndex(op string, i, j int) {
	mustAllocated(op, t)
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		fail(op, ErrIndexOutOfRange, "[%d, %d] for shape %v", i, j, t.Shape())
	}
}

// Row returns a copy of row i.
func (t *Tensor) Row(i int) []float64 {
	t.checkIndex("row", i, 0)
	out := make([]float64, t.cols)
	copy(out, t.data[i*t.cols:(i+1)*t.cols])
	return out
}

// String returns a short description such as "Tensor(2, 3)".
func (t *Tensor) String() string {
	if !t.allocated {
		return "Tensor(empty)"
	}
	return fmt.Sprintf("Tensor(%d, %d)", t.rows, t.cols)
}

// Equal reports whether a and b have the same shape and identical elements.
// Two empty tensors are equal.
func Equal(a, b *Tensor) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	return floats.Equal(a.data, b.data)
}

// EqualApprox reports whether a and b have the same shape and all elements
// within tol of each other (absolute or relative).
func EqualApprox(a, b *Tensor, tol float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	return floats.EqualApprox(a.data, b.data, tol)
}
