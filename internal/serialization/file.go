package serialization

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// SaveText writes t to path in the text format, creating or truncating it.
func SaveText(path string, t *tensor.Tensor) error {
	return saveFile(path, t, FormatText)
}

// SaveBinary writes t to path in the binary format, creating or truncating it.
func SaveBinary(path string, t *tensor.Tensor) error {
	return saveFile(path, t, FormatBinary)
}

// LoadText reads a text-format tensor from path into dst.
func LoadText(path string, dst *tensor.Tensor) error {
	return loadFile(path, dst, FormatText)
}

// LoadBinary reads a binary-format tensor from path into dst.
//
// The file size is checked against the header before any allocation, so a
// corrupt header cannot trigger a huge allocation.
func LoadBinary(path string, dst *tensor.Tensor) error {
	return loadFile(path, dst, FormatBinary)
}

// Save writes t to path, using the binary format for ".bin" paths and text otherwise.
func Save(path string, t *tensor.Tensor) error {
	return saveFile(path, t, FormatFromPath(path))
}

// Load reads path into dst, using the binary format for ".bin" paths and text otherwise.
func Load(path string, dst *tensor.Tensor) error {
	return loadFile(path, dst, FormatFromPath(path))
}

// SaveAs writes t to path in the given format regardless of its extension.
func SaveAs(path string, t *tensor.Tensor, f Format) error {
	return saveFile(path, t, f)
}

// LoadAs reads path into dst in the given format regardless of its extension.
func LoadAs(path string, dst *tensor.Tensor, f Format) error {
	return loadFile(path, dst, f)
}

func saveFile(path string, t *tensor.Tensor, f Format) error {
	if !t.Allocated() {
		return fmt.Errorf("save %s: %w", path, ErrNotAllocated)
	}

	//nolint:gosec // G304: the path is chosen by the caller
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	switch f {
	case FormatBinary:
		err = WriteBinary(file, t)
	case FormatText:
		err = WriteText(file, t)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownFormat, f)
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

func loadFile(path string, dst *tensor.Tensor, f Format) error {
	//nolint:gosec // G304: the path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	switch f {
	case FormatBinary:
		err = loadBinaryFile(file, dst)
	case FormatText:
		err = ReadText(bufio.NewReader(file), dst)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadBinaryFile(file *os.File, dst *tensor.Tensor) error {
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	r := bufio.NewReader(file)
	shape, err := readBinaryHeader(r)
	if err != nil {
		return fmt.Errorf("read binary: %w", err)
	}
	if want := BinarySize(shape.Rows, shape.Cols); info.Size() < want {
		return fmt.Errorf("read binary: %w: header %v needs %d bytes, file has %d",
			ErrTruncated, shape, want, info.Size())
	}

	dst.Alloc(shape.Rows, shape.Cols)
	if err := readElements(r, dst.Data()); err != nil {
		dst.Free()
		return fmt.Errorf("read binary: %w", err)
	}
	return nil
}
