package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Binary layout sizes.
const (
	binaryHeaderSize = 16   // rows and cols as uint64
	elementSize      = 8    // one float64
	chunkElements    = 8192 // elements per I/O chunk
	chunkBytes       = chunkElements * elementSize
)

var byteOrder = binary.NativeEndian

// BinarySize returns the encoded size in bytes of an m×n tensor.
func BinarySize(m, n int) int64 {
	return binaryHeaderSize + int64(m)*int64(n)*elementSize
}

// WriteBinary encodes t in the binary format.
func WriteBinary(w io.Writer, t *tensor.Tensor) error {
	if !t.Allocated() {
		return fmt.Errorf("write binary: %w", ErrNotAllocated)
	}
	bw := bufio.NewWriter(w)

	var header [binaryHeaderSize]byte
	byteOrder.PutUint64(header[0:8], uint64(t.Rows()))
	byteOrder.PutUint64(header[8:16], uint64(t.Cols()))
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("write binary header: %w", err)
	}
	if err := writeElements(bw, t.Data()); err != nil {
		return fmt.Errorf("write binary data: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write binary: %w", err)
	}
	return nil
}

// WriteBinaryBody writes the elements of t in the binary layout without the
// 16-byte shape header.
func WriteBinaryBody(w io.Writer, t *tensor.Tensor) error {
	if !t.Allocated() {
		return fmt.Errorf("write binary: %w", ErrNotAllocated)
	}
	bw := bufio.NewWriter(w)
	if err := writeElements(bw, t.Data()); err != nil {
		return fmt.Errorf("write binary data: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write binary: %w", err)
	}
	return nil
}

func writeElements(bw *bufio.Writer, data []float64) error {
	buf := make([]byte, 0, chunkBytes)
	for len(data) > 0 {
		n := min(len(data), chunkElements)
		buf = buf[:0]
		for _, v := range data[:n] {
			buf = byteOrder.AppendUint64(buf, math.Float64bits(v))
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// ReadBinary decodes a binary-format tensor from r into dst.
//
// The header is not trusted for allocation: elements are staged as they
// arrive, so a header larger than the stream fails with ErrTruncated.
func ReadBinary(r io.Reader, dst *tensor.Tensor) error {
	shape, err := readBinaryHeader(r)
	if err != nil {
		return fmt.Errorf("read binary: %w", err)
	}
	if err := ReadBinaryBody(r, dst, shape); err != nil {
		return fmt.Errorf("read binary: %w", err)
	}
	return nil
}

// ReadBinaryBody reads shape's elements, as written by WriteBinaryBody, into dst.
func ReadBinaryBody(r io.Reader, dst *tensor.Tensor, shape tensor.Shape) error {
	total := shape.NumElements()
	return decodeInto(dst, shape, func(chunk []float64, offset int) error {
		if err := readElements(r, chunk); err != nil {
			return fmt.Errorf("%w (elements %d to %d of %d)", err, offset, offset+len(chunk), total)
		}
		return nil
	})
}

func readBinaryHeader(r io.Reader) (tensor.Shape, error) {
	var header [binaryHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return tensor.Shape{}, fmt.Errorf("%w: short header", ErrInvalidHeader)
		}
		return tensor.Shape{}, err
	}
	rows := byteOrder.Uint64(header[0:8])
	cols := byteOrder.Uint64(header[8:16])
	return HeaderShape(FormatBinary, rows, cols)
}

func readElements(r io.Reader, data []float64) error {
	buf := make([]byte, min(len(data), chunkElements)*elementSize)
	for len(data) > 0 {
		n := min(len(data), chunkElements)
		chunk := buf[:n*elementSize]
		if _, err := io.ReadFull(r, chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return ErrTruncated
			}
			return err
		}
		for i := range data[:n] {
			data[i] = math.Float64frombits(byteOrder.Uint64(chunk[i*elementSize:]))
		}
		data = data[n:]
	}
	return nil
}
