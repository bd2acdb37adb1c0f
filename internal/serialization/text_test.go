package serialization

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nexum-ml/nexum/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextLayout(t *testing.T) {
	var buf bytes.Buffer
	x := tensor.FromSlice(2, 2, []float64{1, -2.5, 0.001234, 12340})

	require.NoError(t, WriteText(&buf, x))

	want := "2 2\n" +
		"1.000e+00 -2.500e+00 \n" +
		"1.234e-03 1.234e+04 \n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestTextRoundTrip(t *testing.T) {
	tensor.Seed(21)
	x := tensor.Randn(4, 7)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, x))

	var y tensor.Tensor
	require.NoError(t, ReadText(&buf, &y))

	require.Equal(t, x.Shape(), y.Shape())
	for i, v := range x.Data() {
		// %.3e keeps four significant digits.
		assert.InEpsilon(t, v, y.Data()[i], 1e-3)
	}
}

func TestReadTextIgnoresLineStructure(t *testing.T) {
	var x tensor.Tensor

	require.NoError(t, ReadText(strings.NewReader("2 3 1 2\n3\t4 5 6"), &x))

	assert.Equal(t, tensor.Shape{Rows: 2, Cols: 3}, x.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data())
}

func TestReadTextReusesDestination(t *testing.T) {
	x := tensor.New(3, 2)
	buf := &x.Data()[0]

	require.NoError(t, ReadText(strings.NewReader("2 3\n1 2 3\n4 5 6\n"), x))

	assert.Equal(t, tensor.Shape{Rows: 2, Cols: 3}, x.Shape())
	assert.Same(t, buf, &x.Data()[0])
}

func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrInvalidHeader},
		{"missing cols", "3", ErrInvalidHeader},
		{"non-numeric header", "two 2\n1 2 3 4", ErrInvalidHeader},
		{"negative dimension", "-1 2\n1 2", ErrInvalidHeader},
		{"zero dimension", "0 2\n", ErrInvalidHeader},
		{"too few values", "2 2\n1 2 3", ErrTruncated},
		{"bad value", "1 2\n1 x", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x tensor.Tensor
			err := ReadText(strings.NewReader(tt.input), &x)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, x.Allocated())
		})
	}
}

func TestHeaderErrorDetails(t *testing.T) {
	var x tensor.Tensor
	err := ReadText(strings.NewReader("0 4\n"), &x)

	var he *HeaderError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, FormatText, he.Format)
	assert.Equal(t, uint64(0), he.Rows)
	assert.Equal(t, uint64(4), he.Cols)
}

func TestWriteTextRejectsEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteText(&buf, &tensor.Tensor{}), ErrNotAllocated)
	assert.Zero(t, buf.Len())
}

func TestTextDecoderReadsConsecutiveRecords(t *testing.T) {
	var buf bytes.Buffer
	a := tensor.FromSlice(1, 2, []float64{1, 2})
	b := tensor.FromSlice(2, 1, []float64{3, 4})
	buf.WriteString("7\n")
	require.NoError(t, WriteText(&buf, a))
	require.NoError(t, WriteText(&buf, b))

	dec := NewTextDecoder(&buf)
	tag, err := dec.Uint("tag")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), tag)

	var x, y tensor.Tensor
	require.NoError(t, dec.Decode(&x))
	require.NoError(t, dec.Decode(&y))
	assert.True(t, tensor.Equal(a, &x))
	assert.True(t, tensor.Equal(b, &y))

	_, err = dec.Uint("next")
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestReadTextOversizedHeader(t *testing.T) {
	input := "1000000000 1000000000\n1 2 3\n"

	var x tensor.Tensor
	var err error
	require.NotPanics(t, func() { err = ReadText(strings.NewReader(input), &x) })
	require.ErrorIs(t, err, ErrTruncated)
	assert.Contains(t, err.Error(), "got 3 of")
	assert.False(t, x.Allocated())

	path := filepath.Join(t.TempDir(), "huge.txt")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))
	require.NotPanics(t, func() { err = LoadText(path, &x) })
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadTextLargeRecord(t *testing.T) {
	x := tensor.Full(1, 3*chunkElements+5, 0.5)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, x))

	var y tensor.Tensor
	require.NoError(t, ReadText(&buf, &y))
	assert.True(t, tensor.Equal(x, &y))
}

func TestTextBody(t *testing.T) {
	x := tensor.FromSlice(2, 2, []float64{1, 2, 3, 4})
	var buf bytes.Buffer
	require.NoError(t, WriteTextBody(&buf, x))
	assert.Equal(t, "1.000e+00 2.000e+00 \n3.000e+00 4.000e+00 \n\n", buf.String())

	var y tensor.Tensor
	require.NoError(t, NewTextDecoder(&buf).DecodeBody(&y, tensor.Shape{Rows: 2, Cols: 2}))
	assert.True(t, tensor.Equal(x, &y))
}
