package tensor

import (
	"fmt"
	"math"
)

// elementSize is the byte width of one float64 element.
const elementSize = 8

// MaxElements is the largest element count a single tensor may hold.
const MaxElements = math.MaxInt / elementSize

// Shape is the (rows, cols) dimensions of a 2D tensor.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns rows*cols.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// String renders the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Validate checks that both dimensions are positive and that their product
// fits in MaxElements.
func (s Shape) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: %v (must be > 0)", ErrInvalidDimension, s)
	}
	if s.Rows > MaxElements/s.Cols {
		return fmt.Errorf("%w: %v", ErrDimensionOverflow, s)
	}
	return nil
}

// Axis selects the direction of a broadcast, reduction, or expansion.
type Axis int

// Supported axes. AxisRow treats the second operand as a single row repeated
// over all rows; AxisCol as a single column repeated over all columns.
const (
	AxisRow Axis = iota
	AxisCol
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// checkedSize validates m×n for op and returns the element count.
func checkedSize(op string, m, n int) int {
	s := Shape{Rows: m, Cols: n}
	if m <= 0 || n <= 0 {
		fail(op, ErrInvalidDimension, "%v (must be > 0)", s)
	}
	if m > MaxElements/n {
		fail(op, ErrDimensionOverflow, "%v", s)
	}
	return m * n
}
