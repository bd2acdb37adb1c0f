package tensor

// Alloc ensures the tensor holds exactly m*n elements with shape (m, n).
//
// An empty tensor gets a new zeroed buffer. An allocated tensor whose element
// count already equals m*n keeps its buffer and contents verbatim; only the
// dimensions are relabelled. Otherwise the old buffer is released first.
//
// Panics with ErrInvalidDimension for m or n < 1 and ErrDimensionOverflow when
// m*n exceeds MaxElements. Running out of memory is fatal to the process.
//
// Example:
//
//	var t tensor.Tensor
//	t.Alloc(2, 3) // new buffer of 6 zeros
//	t.Alloc(3, 2) // same buffer, shape relabelled
//	t.Alloc(4, 4) // buffer replaced
func (t *Tensor) Alloc(m, n int) {
	size := checkedSize("alloc", m, n)
	if t.allocated && len(t.data) == size {
		t.rows, t.cols = m, n
		return
	}
	t.Free()
	t.data = make([]float64, size)
	t.rows, t.cols = m, n
	t.allocated = true
}

// Free releases the buffer and resets the tensor to the empty state.
// Calling Free on an empty tensor, or twice, is a no-op.
func (t *Tensor) Free() {
	if !t.allocated {
		return
	}
	t.data = nil
	t.rows, t.cols = 0, 0
	t.allocated = false
}

// SetData replaces the tensor's buffer with buf without allocating.
//
// The tensor must already be allocated and buf must hold exactly Size()
// elements. The tensor takes ownership of buf: the caller must not keep
// writing to it or pass it to another tensor.
func (t *Tensor) SetData(buf []float64) {
	mustAllocated("set_data", t)
	if len(buf) != t.Size() {
		fail("set_data", ErrBufferSize, "got %d elements for shape %v", len(buf), t.Shape())
	}
	t.data = buf
}

// CopyData allocates t to src's shape and deep-copies src's elements.
func (t *Tensor) CopyData(src *Tensor) {
	mustAllocated("copy_data", src)
	if t == src {
		return
	}
	t.Alloc(src.rows, src.cols)
	copy(t.data, src.data)
}

// Clone returns a deep copy of t. Cloning an empty tensor yields an empty tensor.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{id: t.id}
	if t.allocated {
		out.CopyData(t)
	}
	return out
}

// adopt installs buf as a freshly produced m×n result, releasing the previous
// buffer. Used by operations whose output may differ in shape from, or alias,
// an input.
func (t *Tensor) adopt(m, n int, buf []float64) {
	t.Free()
	t.data = buf
	t.rows, t.cols = m, n
	t.allocated = true
}
