package tensor

import "github.com/nexum-ml/nexum/internal/backend/cpu"

// Reshape stores a copy of a with shape (m, n) in t. m*n must equal a.Size().
//
// The row-major order of the elements is preserved and t gets its own buffer,
// so later writes to t never reach a.
func (t *Tensor) Reshape(a *Tensor, m, n int) {
	mustAllocated("reshape", a)
	if checkedSize("reshape", m, n) != a.Size() {
		failShape("reshape", a.Shape(), Shape{Rows: m, Cols: n})
	}
	buf := make([]float64, m*n)
	copy(buf, a.data)
	t.adopt(m, n, buf)
}

// ReshapeInplace relabels t as (m, n) without touching its buffer.
func (t *Tensor) ReshapeInplace(m, n int) {
	mustAllocated("reshape_inplace", t)
	if checkedSize("reshape_inplace", m, n) != t.Size() {
		failShape("reshape_inplace", t.Shape(), Shape{Rows: m, Cols: n})
	}
	t.rows, t.cols = m, n
}

// Expand stores a repeated copies times in t.
//
// AxisRow stacks the copies vertically, giving (m*copies, n). AxisCol places
// them side by side, giving (m, n*copies).
func (t *Tensor) Expand(a *Tensor, axis Axis, copies int) {
	mustAllocated("expand", a)
	if copies < 1 {
		fail("expand", ErrInvalidDimension, "copies must be > 0, got %d", copies)
	}
	if copies > MaxElements/a.Size() {
		fail("expand", ErrDimensionOverflow, "%v x %d", a.Shape(), copies)
	}
	m, n := a.rows, a.cols
	switch axis {
	case AxisRow:
		buf := make([]float64, m*n*copies)
		cpu.TileRows(buf, a.data, m, n, copies)
		t.adopt(m*copies, n, buf)
	case AxisCol:
		buf := make([]float64, m*n*copies)
		cpu.TileCols(buf, a.data, m, n, copies)
		t.adopt(m, n*copies, buf)
	default:
		fail("expand", ErrInvalidAxis, "%v", axis)
	}
}
