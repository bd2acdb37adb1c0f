package serialization

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Format identifies an on-disk tensor encoding.
type Format int

// Supported formats.
const (
	FormatText Format = iota
	FormatBinary
)

// BinaryExtension marks a path as binary for Save and Load.
const BinaryExtension = ".bin"

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return FormatText, nil
	case "binary", "bin":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath returns FormatBinary for paths ending in ".bin" and
// FormatText for everything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), BinaryExtension) {
		return FormatBinary
	}
	return FormatText
}

// headerShape converts decoded header dimensions into a tensor shape.
func HeaderShape(f Format, rows, cols uint64) (tensor.Shape, error) {
	if rows > uint64(tensor.MaxElements) || cols > uint64(tensor.MaxElements) {
		return tensor.Shape{}, &HeaderError{Format: f, Rows: rows, Cols: cols, Details: "dimension too large"}
	}
	s := tensor.Shape{Rows: int(rows), Cols: int(cols)}
	if err := s.Validate(); err != nil {
		return tensor.Shape{}, &HeaderError{Format: f, Rows: rows, Cols: cols, Details: err.Error()}
	}
	return s, nil
}
