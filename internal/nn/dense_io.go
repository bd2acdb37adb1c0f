package nn

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/nexum-ml/nexum/internal/serialization"
	"github.com/nexum-ml/nexum/internal/tensor"
)

// Layer files start with a header of in features, out features and the
// activation code, followed by the out×in weights and the out bias values
// with no shape records of their own:
//
//	text:   "<in> <out> <act>\n", weight rows, blank line, bias rows
//	binary: u64 in, u64 out, u32 act, out*in float64, out float64
//
// Both kinds use the element encoding of the tensor format of the same kind.

const denseHeaderSize = 20

// WriteText encodes the layer in the text layer format.
func (d *Dense) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d %d\n", d.In, d.Out, uint32(d.Act)); err != nil {
		return fmt.Errorf("write dense: %w", err)
	}
	if err := serialization.WriteTextBody(w, d.Weights()); err != nil {
		return fmt.Errorf("write dense weights: %w", err)
	}
	if err := serialization.WriteTextBody(w, d.Bias()); err != nil {
		return fmt.Errorf("write dense bias: %w", err)
	}
	return nil
}

// WriteBinary encodes the layer in the binary layer format.
func (d *Dense) WriteBinary(w io.Writer) error {
	var header [denseHeaderSize]byte
	binary.NativeEndian.PutUint64(header[0:8], uint64(d.In))   //nolint:gosec // G115: dimensions are positive
	binary.NativeEndian.PutUint64(header[8:16], uint64(d.Out)) //nolint:gosec // G115: dimensions are positive
	binary.NativeEndian.PutUint32(header[16:20], uint32(d.Act))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write dense: %w", err)
	}
	if err := serialization.WriteBinaryBody(w, d.Weights()); err != nil {
		return fmt.Errorf("write dense weights: %w", err)
	}
	if err := serialization.WriteBinaryBody(w, d.Bias()); err != nil {
		return fmt.Errorf("write dense bias: %w", err)
	}
	return nil
}

// ReadDenseText decodes a layer written by (*Dense).WriteText.
func ReadDenseText(r io.Reader) (*Dense, error) {
	dec := serialization.NewTextDecoder(r)
	in, err := dec.Uint("in features")
	if err != nil {
		return nil, fmt.Errorf("read dense: %w", err)
	}
	out, err := dec.Uint("out features")
	if err != nil {
		return nil, fmt.Errorf("read dense: %w", err)
	}
	act, err := dec.Uint("activation")
	if err != nil {
		return nil, fmt.Errorf("read dense: %w", err)
	}
	ws, bs, err := denseShapes(serialization.FormatText, in, out, act)
	if err != nil {
		return nil, err
	}

	var w, b tensor.Tensor
	if err := dec.DecodeBody(&w, ws); err != nil {
		return nil, fmt.Errorf("read dense weights: %w", err)
	}
	if err := dec.DecodeBody(&b, bs); err != nil {
		return nil, fmt.Errorf("read dense bias: %w", err)
	}
	return assembleDense(Activation(act), &w, &b), nil
}

// ReadDenseBinary decodes a layer written by (*Dense).WriteBinary.
func ReadDenseBinary(r io.Reader) (*Dense, error) {
	var header [denseHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read dense: %w: %w", serialization.ErrInvalidHeader, err)
	}
	in := binary.NativeEndian.Uint64(header[0:8])
	out := binary.NativeEndian.Uint64(header[8:16])
	act := uint64(binary.NativeEndian.Uint32(header[16:20]))
	ws, bs, err := denseShapes(serialization.FormatBinary, in, out, act)
	if err != nil {
		return nil, err
	}

	var w, b tensor.Tensor
	if err := serialization.ReadBinaryBody(r, &w, ws); err != nil {
		return nil, fmt.Errorf("read dense weights: %w", err)
	}
	if err := serialization.ReadBinaryBody(r, &b, bs); err != nil {
		return nil, fmt.Errorf("read dense bias: %w", err)
	}
	return assembleDense(Activation(act), &w, &b), nil
}

// denseShapes validates a layer header and returns the weight and bias shapes.
func denseShapes(f serialization.Format, in, out, act uint64) (w, b tensor.Shape, err error) {
	if act >= uint64(len(activationNames)) {
		return w, b, fmt.Errorf("read dense: %w: activation %d", serialization.ErrInvalidHeader, act)
	}
	if w, err = serialization.HeaderShape(f, out, in); err != nil {
		return w, b, fmt.Errorf("read dense: %w", err)
	}
	return w, tensor.Shape{Rows: w.Rows, Cols: 1}, nil
}

func assembleDense(act Activation, w, b *tensor.Tensor) *Dense {
	return &Dense{
		In:      w.Cols(),
		Out:     w.Rows(),
		Act:     act,
		weights: NewParameter("weights", w),
		bias:    NewParameter("bias", b),
	}
}

// SaveDense writes d to path, in the binary layer format for ".bin" paths and
// the text layer format otherwise.
func SaveDense(path string, d *Dense) error {
	//nolint:gosec // G304: the path is chosen by the caller
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	bw := bufio.NewWriter(file)
	if serialization.FormatFromPath(path) == serialization.FormatBinary {
		err = d.WriteBinary(bw)
	} else {
		err = d.WriteText(bw)
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		_ = file.Close() // Best effort close on error
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// LoadDense reads a layer saved by SaveDense.
func LoadDense(path string) (*Dense, error) {
	//nolint:gosec // G304: the path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r := bufio.NewReader(file)
	var d *Dense
	if serialization.FormatFromPath(path) == serialization.FormatBinary {
		d, err = ReadDenseBinary(r)
	} else {
		d, err = ReadDenseText(r)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}
