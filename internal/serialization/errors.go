package serialization

import (
	"errors"
	"fmt"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Common errors.
var (
	ErrInvalidHeader = errors.New("invalid tensor header")
	ErrTruncated     = errors.New("tensor data is truncated")
	ErrInvalidValue  = errors.New("invalid tensor element")
	ErrNotAllocated  = tensor.ErrNotAllocated // Writing an empty tensor
	ErrUnknownFormat = errors.New("unknown tensor format")
)

// HeaderError describes a header that cannot describe a valid tensor.
type HeaderError struct {
	Format  Format
	Rows    uint64
	Cols    uint64
	Details string
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s header (%d, %d): %s", e.Format, e.Rows, e.Cols, e.Details)
}

// Unwrap makes HeaderError match ErrInvalidHeader.
func (e *HeaderError) Unwrap() error {
	return ErrInvalidHeader
}
