package serialization

import (
	"slices"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// elementFiller decodes len(chunk) consecutive elements into chunk. offset is
// the index of chunk[0] within the tensor.
type elementFiller func(chunk []float64, offset int) error

// decodeInto fills dst with shape's elements as decoded by fill.
//
// A destination that already holds shape.NumElements() elements is decoded in
// place. Otherwise the elements are staged in a buffer that grows one chunk at
// a time, so a header claiming more elements than the stream delivers fails
// with the stream's error instead of allocating the claimed size up front.
// dst is freed on error.
func decodeInto(dst *tensor.Tensor, shape tensor.Shape, fill elementFiller) error {
	count := shape.NumElements()
	if dst.Allocated() && dst.Size() == count {
		if err := fill(dst.Data(), 0); err != nil {
			dst.Free()
			return err
		}
		dst.Alloc(shape.Rows, shape.Cols)
		return nil
	}

	staged := make([]float64, 0, min(count, chunkElements))
	for len(staged) < count {
		start := len(staged)
		n := min(count-start, chunkElements)
		staged = slices.Grow(staged, n)[:start+n]
		if err := fill(staged[start:], start); err != nil {
			dst.Free()
			return err
		}
	}
	dst.Alloc(shape.Rows, shape.Cols)
	copy(dst.Data(), staged)
	return nil
}
