package tensor

import "math"

// AllocZeros allocates an m×n tensor filled with zeros.
//
// A reused buffer is cleared explicitly, so the result never carries stale values.
func (t *Tensor) AllocZeros(m, n int) {
	t.AllocFull(m, n, 0)
}

// AllocOnes allocates an m×n tensor filled with ones.
func (t *Tensor) AllocOnes(m, n int) {
	t.AllocFull(m, n, 1)
}

// AllocFull allocates an m×n tensor filled with value.
func (t *Tensor) AllocFull(m, n int, value float64) {
	t.Alloc(m, n)
	for i := range t.data {
		t.data[i] = value
	}
}

// AllocEye allocates the m×m identity matrix.
func (t *Tensor) AllocEye(m int) {
	t.AllocZeros(m, m)
	for i := 0; i < m; i++ {
		t.data[i*m+i] = 1
	}
}

// AllocArange allocates a 1×k row of values start, start+step, ... strictly
// below end (above end for a negative step), with k = ceil((end-start)/step).
//
// Panics with ErrInvalidDimension when step is zero or the range is empty.
//
// Example:
//
//	t.AllocArange(0, 1, 0.25) // [[0, 0.25, 0.5, 0.75]]
func (t *Tensor) AllocArange(start, end, step float64) {
	if step == 0 || math.IsNaN(step) {
		fail("arange", ErrInvalidDimension, "step must be non-zero, got %v", step)
	}
	count := math.Ceil((end - start) / step)
	if !(count >= 1) || count > float64(MaxElements) {
		fail("arange", ErrInvalidDimension, "empty range [%v, %v) with step %v", start, end, step)
	}
	t.Alloc(1, int(count))
	curr := start
	for j := range t.data {
		t.data[j] = curr
		curr += step
	}
}

// AllocLinspace allocates a 1×size row starting at start with step
// (end-start)/size. end itself is excluded.
func (t *Tensor) AllocLinspace(start, end float64, size int) {
	if size < 1 {
		fail("linspace", ErrInvalidDimension, "size must be > 0, got %d", size)
	}
	step := (end - start) / float64(size)
	if step == 0 {
		// Degenerate range: size copies of start.
		t.AllocFull(1, size, start)
		return
	}
	t.AllocArange(start, end, step)
	if t.cols != size {
		// ceil((end-start)/step) can miss size by one through rounding.
		buf := make([]float64, size)
		for j := range buf {
			buf[j] = start + float64(j)*step
		}
		t.adopt(1, size, buf)
	}
}

// AllocZerosLike allocates a zero tensor with ref's shape.
func (t *Tensor) AllocZerosLike(ref *Tensor) {
	mustAllocated("zeros_like", ref)
	t.AllocZeros(ref.rows, ref.cols)
}

// AllocOnesLike allocates a tensor of ones with ref's shape.
func (t *Tensor) AllocOnesLike(ref *Tensor) {
	mustAllocated("ones_like", ref)
	t.AllocOnes(ref.rows, ref.cols)
}

// AllocFullLike allocates a tensor with ref's shape filled with value.
func (t *Tensor) AllocFullLike(ref *Tensor, value float64) {
	mustAllocated("full_like", ref)
	t.AllocFull(ref.rows, ref.cols, value)
}

// Zeros returns a new m×n tensor of zeros.
func Zeros(m, n int) *Tensor {
	t := &Tensor{}
	t.AllocZeros(m, n)
	return t
}

// Ones returns a new m×n tensor of ones.
func Ones(m, n int) *Tensor {
	t := &Tensor{}
	t.AllocOnes(m, n)
	return t
}

// Full returns a new m×n tensor filled with value.
func Full(m, n int, value float64) *Tensor {
	t := &Tensor{}
	t.AllocFull(m, n, value)
	return t
}

// Eye returns the m×m identity matrix.
func Eye(m int) *Tensor {
	t := &Tensor{}
	t.AllocEye(m)
	return t
}

// Arange returns a 1×k row from start towards end (exclusive) by step.
func Arange(start, end, step float64) *Tensor {
	t := &Tensor{}
	t.AllocArange(start, end, step)
	return t
}

// Linspace returns a 1×size row from start with step (end-start)/size.
func Linspace(start, end float64, size int) *Tensor {
	t := &Tensor{}
	t.AllocLinspace(start, end, size)
	return t
}

// ZerosLike returns a zero tensor shaped like ref.
func ZerosLike(ref *Tensor) *Tensor {
	t := &Tensor{}
	t.AllocZerosLike(ref)
	return t
}

// OnesLike returns a tensor of ones shaped like ref.
func OnesLike(ref *Tensor) *Tensor {
	t := &Tensor{}
	t.AllocOnesLike(ref)
	return t
}

// FullLike returns a tensor shaped like ref filled with value.
func FullLike(ref *Tensor, value float64) *Tensor {
	t := &Tensor{}
	t.AllocFullLike(ref, value)
	return t
}
