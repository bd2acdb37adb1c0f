package serialization

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// WriteText encodes t in the text format.
func WriteText(w io.Writer, t *tensor.Tensor) error {
	if !t.Allocated() {
		return fmt.Errorf("write text: %w", ErrNotAllocated)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", t.Rows(), t.Cols())
	writeTextRows(bw, t)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// WriteTextBody writes the values of t in the text layout without the
// "<rows> <cols>" header line.
func WriteTextBody(w io.Writer, t *tensor.Tensor) error {
	if !t.Allocated() {
		return fmt.Errorf("write text: %w", ErrNotAllocated)
	}
	bw := bufio.NewWriter(w)
	writeTextRows(bw, t)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

func writeTextRows(bw *bufio.Writer, t *tensor.Tensor) {
	data, n := t.Data(), t.Cols()
	buf := make([]byte, 0, 16)
	for i := 0; i < t.Rows(); i++ {
		for _, v := range data[i*n : (i+1)*n] {
			buf = strconv.AppendFloat(buf[:0], v, 'e', 3, 64)
			buf = append(buf, ' ')
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
}

// ReadText decodes a text-format tensor from r into dst.
//
// r may be consumed past the end of the tensor. Use a TextDecoder to read
// several records from one stream.
func ReadText(r io.Reader, dst *tensor.Tensor) error {
	if err := NewTextDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("read text: %w", err)
	}
	return nil
}

// TextDecoder reads whitespace-separated text records from a stream.
type TextDecoder struct {
	sc *bufio.Scanner
}

// NewTextDecoder returns a decoder reading from r.
func NewTextDecoder(r io.Reader) *TextDecoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &TextDecoder{sc: sc}
}

// Uint reads one unsigned integer field. name is used in error messages.
func (d *TextDecoder) Uint(name string) (uint64, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidHeader, name)
	}
	v, err := strconv.ParseUint(d.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidHeader, name, d.sc.Text())
	}
	return v, nil
}

// Decode reads the next "<rows> <cols> values..." record into dst.
func (d *TextDecoder) Decode(dst *tensor.Tensor) error {
	rows, err := d.Uint("rows")
	if err != nil {
		return err
	}
	cols, err := d.Uint("cols")
	if err != nil {
		return err
	}
	shape, err := HeaderShape(FormatText, rows, cols)
	if err != nil {
		return err
	}
	return d.DecodeBody(dst, shape)
}

// DecodeBody reads the values of a record whose shape is already known, as
// written by WriteTextBody.
func (d *TextDecoder) DecodeBody(dst *tensor.Tensor, shape tensor.Shape) error {
	total := shape.NumElements()
	return decodeInto(dst, shape, func(chunk []float64, offset int) error {
		for i := range chunk {
			if !d.sc.Scan() {
				return fmt.Errorf("%w: got %d of %d elements", d.truncation(), offset+i, total)
			}
			v, err := strconv.ParseFloat(d.sc.Text(), 64)
			if err != nil {
				return fmt.Errorf("%w at element %d: %q", ErrInvalidValue, offset+i, d.sc.Text())
			}
			chunk[i] = v
		}
		return nil
	})
}

// truncation reports the scanner's I/O error, or ErrTruncated at a clean EOF.
func (d *TextDecoder) truncation() error {
	if err := d.sc.Err(); err != nil {
		return err
	}
	return ErrTruncated
}
