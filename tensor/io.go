// Copyright 2026 Nexum Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"github.com/nexum-ml/nexum/internal/serialization"
	"github.com/nexum-ml/nexum/internal/tensor"
)

// Format identifies an on-disk tensor encoding.
type Format = serialization.Format

// Format constants.
const (
	FormatText   Format = serialization.FormatText
	FormatBinary Format = serialization.FormatBinary
)

// Persistence errors.
var (
	ErrInvalidHeader = serialization.ErrInvalidHeader
	ErrTruncated     = serialization.ErrTruncated
	ErrInvalidValue  = serialization.ErrInvalidValue
)

// Save writes t to path: binary for ".bin" paths, text otherwise.
func Save(path string, t *Tensor) error {
	return serialization.Save(path, t)
}

// Load reads path into dst: binary for ".bin" paths, text otherwise.
func Load(path string, dst *Tensor) error {
	return serialization.Load(path, dst)
}

// MustSave is like Save but panics on error.
func MustSave(path string, t *Tensor) {
	if err := serialization.Save(path, t); err != nil {
		panic(err)
	}
}

// MustLoad is like Load but panics on error.
func MustLoad(path string, dst *Tensor) {
	if err := serialization.Load(path, dst); err != nil {
		panic(err)
	}
}

// SaveText writes t to path in the text format.
func SaveText(path string, t *Tensor) error {
	return serialization.SaveText(path, t)
}

// LoadText reads a text-format tensor from path.
func LoadText(path string, dst *Tensor) error {
	return serialization.LoadText(path, dst)
}

// SaveBinary writes t to path in the binary format.
func SaveBinary(path string, t *Tensor) error {
	return serialization.SaveBinary(path, t)
}

// LoadBinary reads a binary-format tensor from path.
func LoadBinary(path string, dst *Tensor) error {
	return serialization.LoadBinary(path, dst)
}

// WriteText encodes t in the text format.
func WriteText(w io.Writer, t *Tensor) error {
	return serialization.WriteText(w, t)
}

// ReadText decodes a text-format tensor into dst.
func ReadText(r io.Reader, dst *Tensor) error {
	return serialization.ReadText(r, dst)
}

// WriteBinary encodes t in the binary format.
func WriteBinary(w io.Writer, t *Tensor) error {
	return serialization.WriteBinary(w, t)
}

// ReadBinary decodes a binary-format tensor into dst.
func ReadBinary(r io.Reader, dst *Tensor) error {
	return serialization.ReadBinary(r, dst)
}

// Fprint writes a readable dump of t with "%5.2f, " values.
func Fprint(w io.Writer, t *Tensor) error {
	return tensor.Fprint(w, t)
}

// FprintRaw writes the rows of t with "%.3e " values.
func FprintRaw(w io.Writer, t *Tensor) error {
	return tensor.FprintRaw(w, t)
}

// SaveAs writes t to path in format f regardless of the extension.
func SaveAs(path string, t *Tensor, f Format) error {
	return serialization.SaveAs(path, t, f)
}

// LoadAs reads path in format f regardless of the extension.
func LoadAs(path string, dst *Tensor, f Format) error {
	return serialization.LoadAs(path, dst, f)
}

// ParseFormat parses "text" or "binary" (also "txt" and "bin").
func ParseFormat(s string) (Format, error) {
	return serialization.ParseFormat(s)
}

// FormatFromPath picks the format implied by the extension of path.
func FormatFromPath(path string) Format {
	return serialization.FormatFromPath(path)
}

// Checksum returns the hex SHA-256 digest of t's binary encoding.
func Checksum(t *Tensor) (string, error) {
	sum, err := serialization.Checksum(t)
	if err != nil {
		return "", err
	}
	return serialization.HexDigest(sum), nil
}
