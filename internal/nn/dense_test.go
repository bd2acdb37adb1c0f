package nn

import (
	"bytes"
	"encoding/binary"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nexum-ml/nexum/internal/serialization"
	"github.com/nexum-ml/nexum/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedDense returns a 2 -> 3 layer with known parameters.
func fixedDense(act Activation) *Dense {
	d := NewDense(2, 3, act)
	d.Weights().SetData([]float64{
		1, 2,
		-1, 0,
		0.5, 0.5,
	})
	d.Bias().SetData([]float64{0.5, -1, 0})
	return d
}

func TestNewDenseShapes(t *testing.T) {
	d := NewDense(4, 3, ReLU)

	assert.Equal(t, tensor.Shape{Rows: 3, Cols: 4}, d.Weights().Shape())
	assert.Equal(t, tensor.Shape{Rows: 3, Cols: 1}, d.Bias().Shape())
	assert.Equal(t, 0.0, d.Bias().Sum())
	assert.Len(t, d.Parameters(), 2)
	assert.Equal(t, "Dense(4 -> 3, relu)", d.String())

	assert.Panics(t, func() { NewDense(2, 2, Activation(99)) })
}

func TestDenseForward(t *testing.T) {
	d := fixedDense(None)
	// Two samples as columns: (1, 1) and (2, -1).
	x := tensor.FromSlice(2, 2, []float64{
		1, 2,
		1, -1,
	})
	var out tensor.Tensor

	d.Forward(&out, x)

	assert.Equal(t, tensor.Shape{Rows: 3, Cols: 2}, out.Shape())
	assert.Equal(t, []float64{
		3.5, 0.5,
		-2, -3,
		1, 0.5,
	}, out.Data())
}

func TestDenseForwardAppliesActivation(t *testing.T) {
	d := fixedDense(ReLU)
	x := tensor.FromSlice(2, 1, []float64{1, 1})

	d.Forward(x, x)

	assert.Equal(t, []float64{3.5, 0, 1}, x.Data())
}

func TestDenseForwardShapeMismatch(t *testing.T) {
	d := NewDense(3, 2, None)
	var out tensor.Tensor

	defer func() {
		r := recover()
		require.NotNil(t, r)
		var shapeErr *tensor.ShapeError
		require.ErrorAs(t, r.(error), &shapeErr)
		assert.Equal(t, "matmul", shapeErr.Op)
	}()
	d.Forward(&out, tensor.New(2, 5))
}

func TestDenseFree(t *testing.T) {
	d := NewDense(2, 2, None)
	d.Free()

	assert.False(t, d.Weights().Allocated())
	assert.False(t, d.Bias().Allocated())
	assert.Equal(t, 0, d.In)
	assert.NotPanics(t, d.Free)
}

func TestXavierBounds(t *testing.T) {
	tensor.Seed(17)
	w := Xavier(30, 20)
	bound := math.Sqrt(6.0 / 50)

	assert.Equal(t, tensor.Shape{Rows: 20, Cols: 30}, w.Shape())
	assert.LessOrEqual(t, w.Max(), bound)
	assert.GreaterOrEqual(t, w.Min(), -bound)

	d := NewDenseXavier(30, 20, Tanh)
	assert.LessOrEqual(t, d.Weights().Max(), bound)
}

func TestDenseTextRoundTrip(t *testing.T) {
	d := fixedDense(Sigmoid)
	var buf bytes.Buffer
	require.NoError(t, d.WriteText(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "2 3 2\n1.000e+00 "), buf.String())

	got, err := ReadDenseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.In, got.In)
	assert.Equal(t, d.Out, got.Out)
	assert.Equal(t, Sigmoid, got.Act)
	assert.True(t, tensor.Equal(d.Weights(), got.Weights()))
	assert.True(t, tensor.Equal(d.Bias(), got.Bias()))
}

func TestDenseBinaryRoundTrip(t *testing.T) {
	tensor.Seed(2)
	d := NewDense(5, 4, ELU)
	var buf bytes.Buffer
	require.NoError(t, d.WriteBinary(&buf))

	got, err := ReadDenseBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, ELU, got.Act)
	assert.True(t, tensor.Equal(d.Weights(), got.Weights()))
	assert.True(t, tensor.Equal(d.Bias(), got.Bias()))
}

func TestSaveLoadDense(t *testing.T) {
	dir := t.TempDir()
	d := fixedDense(LeakyReLU)

	for _, name := range []string{"layer.bin", "layer.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveDense(path, d))

			got, err := LoadDense(path)
			require.NoError(t, err)
			assert.Equal(t, LeakyReLU, got.Act)
			assert.True(t, tensor.Equal(d.Weights(), got.Weights()))
		})
	}

	_, err := LoadDense(filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)
}

func TestDenseFileLayout(t *testing.T) {
	d := fixedDense(ReLU)

	var txt bytes.Buffer
	require.NoError(t, d.WriteText(&txt))
	var want strings.Builder
	want.WriteString("2 3 1\n")
	require.NoError(t, serialization.WriteTextBody(&want, d.Weights()))
	require.NoError(t, serialization.WriteTextBody(&want, d.Bias()))
	assert.Equal(t, want.String(), txt.String())

	var bin bytes.Buffer
	require.NoError(t, d.WriteBinary(&bin))
	assert.Equal(t, 20+(6+3)*8, bin.Len())
}

func TestReadDenseTextWithoutLineStructure(t *testing.T) {
	got, err := ReadDenseText(strings.NewReader("2 3 0 1 2 3 4 5 6 7 8 9"))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got.Weights().Data())
	assert.Equal(t, tensor.Shape{Rows: 3, Cols: 1}, got.Bias().Shape())
	assert.Equal(t, []float64{7, 8, 9}, got.Bias().Data())
}

func TestReadDenseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown activation", "2 3 9\n1 2 3 4 5 6\n1 2 3\n", serialization.ErrInvalidHeader},
		{"zero features", "0 3 0\n1 2 3\n", serialization.ErrInvalidHeader},
		{"missing bias", "2 3 0\n1 2 3 4 5 6\n", serialization.ErrTruncated},
		{"huge header", "1000000000 1000000000 0\n1 2 3\n", serialization.ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDenseText(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ReadDenseBinary(bytes.NewReader([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, serialization.ErrInvalidHeader)
}

func TestReadDenseBinaryHugeHeader(t *testing.T) {
	header := binary.NativeEndian.AppendUint64(nil, 1<<20)
	header = binary.NativeEndian.AppendUint64(header, 1<<20)
	header = binary.NativeEndian.AppendUint32(header, 0)
	input := append(header, make([]byte, 24)...)

	_, err := ReadDenseBinary(bytes.NewReader(input))
	assert.ErrorIs(t, err, serialization.ErrTruncated)
}
