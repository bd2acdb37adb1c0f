package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilledConstructors(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0, 0}, Zeros(2, 2).Data())
	assert.Equal(t, []float64{1, 1, 1}, Ones(1, 3).Data())
	assert.Equal(t, []float64{2.5, 2.5}, Full(2, 1, 2.5).Data())
}

func TestAllocZerosClearsReusedBuffer(t *testing.T) {
	x := mat(2, 2, 1, 2, 3, 4)

	x.AllocZeros(1, 4)

	assert.Equal(t, []float64{0, 0, 0, 0}, x.Data())
}

func TestEye(t *testing.T) {
	x := mat(3, 3, 9, 9, 9, 9, 9, 9, 9, 9, 9)

	x.AllocEye(3)

	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, x.Data())
}

func TestArange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float64
		want             []float64
	}{
		{"unit step", 0, 4, 1, []float64{0, 1, 2, 3}},
		{"fractional", 0, 1, 0.25, []float64{0, 0.25, 0.5, 0.75}},
		{"partial last step", 0, 5, 2, []float64{0, 2, 4}},
		{"negative step", 3, 0, -1, []float64{3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := Arange(tt.start, tt.end, tt.step)
			assert.Equal(t, 1, x.Rows())
			assert.Equal(t, tt.want, x.Data())
		})
	}

	requirePanicIs(t, ErrInvalidDimension, func() { Arange(0, 1, 0) })
	requirePanicIs(t, ErrInvalidDimension, func() { Arange(1, 0, 1) })
}

func TestLinspace(t *testing.T) {
	x := Linspace(0, 1, 4)
	assert.Equal(t, Shape{Rows: 1, Cols: 4}, x.Shape())
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, x.Data())

	thirds := Linspace(0, 1, 3)
	require.Equal(t, Shape{Rows: 1, Cols: 3}, thirds.Shape())
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3}, thirds.Data(), 1e-12)

	flat := Linspace(2, 2, 3)
	assert.Equal(t, []float64{2, 2, 2}, flat.Data())

	requirePanicIs(t, ErrInvalidDimension, func() { Linspace(0, 1, 0) })
}

func TestLikeConstructors(t *testing.T) {
	ref := New(2, 3)

	assert.Equal(t, ref.Shape(), ZerosLike(ref).Shape())
	assert.Equal(t, 6.0, OnesLike(ref).Sum())
	assert.Equal(t, 12.0, FullLike(ref, 2).Sum())

	requirePanicIs(t, ErrNotAllocated, func() { ZerosLike(&Tensor{}) })
}
