package tensor

import (
	"errors"
	"fmt"
)

// Precondition failures. Engine operations panic with an *OpError wrapping one
// of these, so a recovered value can be matched with errors.Is.
var (
	ErrNotAllocated      = errors.New("tensor is not allocated")
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrDimensionOverflow = errors.New("dimensions overflow the addressable size")
	ErrZeroDivisor       = errors.New("division by zero scalar")
	ErrInvalidAxis       = errors.New("invalid axis")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrBufferSize        = errors.New("buffer length does not match tensor size")
)

// OpError reports a precondition violation inside a named operation.
type OpError struct {
	Op      string // Operation name (e.g. "alloc", "div_scalar")
	Err     error  // Underlying sentinel error
	Details string // Optional context
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Details)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// ShapeError reports operands whose shapes are incompatible for an operation.
type ShapeError struct {
	Op string
	A  Shape
	B  Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch %v vs %v", e.Op, e.A, e.B)
}

func fail(op string, err error, format string, args ...any) {
	panic(&OpError{Op: op, Err: err, Details: fmt.Sprintf(format, args...)})
}

func failShape(op string, a, b Shape) {
	panic(&ShapeError{Op: op, A: a, B: b})
}

// mustAllocated panics with ErrNotAllocated for the first empty operand.
func mustAllocated(op string, ts ...*Tensor) {
	for i, t := range ts {
		if t == nil || !t.allocated {
			fail(op, ErrNotAllocated, "operand %d", i)
		}
	}
}
