package tensor

import "github.com/nexum-ml/nexum/internal/backend/cpu"

// MatMul stores the matrix product a × b in t.
//
// a must be (m, k) and b (k, n); the result is (m, n). t may alias a or b.
// Large products are computed with BLAS, see cpu.Config.
func (t *Tensor) MatMul(a, b *Tensor) {
	mustAllocated("matmul", a, b)
	if a.cols != b.rows {
		failShape("matmul", a.Shape(), b.Shape())
	}
	m, k, n := a.rows, a.cols, b.cols
	buf := make([]float64, checkedSize("matmul", m, n))
	cpu.MatMul(buf, a.data, b.data, m, k, n)
	t.adopt(m, n, buf)
}

// Transpose stores the transpose of a in t: t[j][i] = a[i][j].
// The result always has its own buffer, even when t is a.
func (t *Tensor) Transpose(a *Tensor) {
	mustAllocated("transpose", a)
	m, n := a.rows, a.cols
	buf := make([]float64, m*n)
	cpu.Transpose(buf, a.data, m, n)
	t.adopt(n, m, buf)
}

// TransposeInplace swaps the row and column counts without moving data.
//
// This is a true transpose only for square symmetric tensors and for vectors.
// For anything else it reinterprets the row-major buffer under the swapped
// shape. Use Transpose for a real permutation.
func (t *Tensor) TransposeInplace() {
	mustAllocated("transpose_inplace", t)
	t.rows, t.cols = t.cols, t.rows
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	mustAllocated("sum", t)
	return cpu.Sum(t.data)
}

// SumAxis stores the sums of a along axis in t.
//
// AxisRow collapses the rows into a (1, n) tensor of column sums. AxisCol
// collapses the columns into an (m, 1) tensor of row sums.
func (t *Tensor) SumAxis(a *Tensor, axis Axis) {
	mustAllocated("sum_axis", a)
	m, n := a.rows, a.cols
	switch axis {
	case AxisRow:
		buf := make([]float64, n)
		cpu.SumCols(buf, a.data, m, n)
		t.adopt(1, n, buf)
	case AxisCol:
		buf := make([]float64, m)
		cpu.SumRows(buf, a.data, m, n)
		t.adopt(m, 1, buf)
	default:
		fail("sum_axis", ErrInvalidAxis, "%v", axis)
	}
}

// Min returns the smallest element, or NaN if any element is NaN.
// Panics with ErrNotAllocated on an empty tensor.
func (t *Tensor) Min() float64 {
	mustAllocated("min", t)
	lo, _ := cpu.MinMax(t.data)
	return lo
}

// Max returns the largest element, or NaN if any element is NaN.
// Panics with ErrNotAllocated on an empty tensor.
func (t *Tensor) Max() float64 {
	mustAllocated("max", t)
	_, hi := cpu.MinMax(t.data)
	return hi
}
