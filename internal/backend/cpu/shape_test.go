package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranspose(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	dst := make([]float64, 6)

	Transpose(dst, a, 2, 3)

	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, dst)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a)
}

func TestTransposeVector(t *testing.T) {
	a := []float64{1, 2, 3}
	dst := make([]float64, 3)
	Transpose(dst, a, 1, 3)
	assert.Equal(t, a, dst)
}

func TestTile(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	rows := make([]float64, 8)
	TileRows(rows, a, 2, 2, 2)
	assert.Equal(t, []float64{1, 2, 3, 4, 1, 2, 3, 4}, rows)

	cols := make([]float64, 12)
	TileCols(cols, a, 2, 2, 3)
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2, 3, 4, 3, 4, 3, 4}, cols)
}
