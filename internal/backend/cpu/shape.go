package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transpose writes the transpose of the m×n matrix a into dst (n×m).
// dst must not alias a.
func Transpose(dst, a []float64, m, n int) {
	if len(a) != m*n || len(dst) != m*n {
		panic(fmt.Sprintf("transpose: buffer sizes %d into %d do not match (%d, %d)", len(a), len(dst), m, n))
	}
	src := mat.NewDense(m, n, a)
	out := mat.NewDense(n, m, dst)
	out.Copy(src.T())
}

// TileRows stacks copies of the m×n matrix a vertically into dst (m*copies × n).
func TileRows(dst, a []float64, m, n, copies int) {
	size := m * n
	if len(a) != size || len(dst) != size*copies {
		panic(fmt.Sprintf("expand: buffer sizes %d into %d do not match (%d, %d) x %d", len(a), len(dst), m, n, copies))
	}
	for c := 0; c < copies; c++ {
		copy(dst[c*size:(c+1)*size], a)
	}
}

// TileCols places copies of the m×n matrix a side by side into dst (m × n*copies).
func TileCols(dst, a []float64, m, n, copies int) {
	if len(a) != m*n || len(dst) != m*n*copies {
		panic(fmt.Sprintf("expand: buffer sizes %d into %d do not match (%d, %d) x %d", len(a), len(dst), m, n, copies))
	}
	width := n * copies
	for i := 0; i < m; i++ {
		row := a[i*n : (i+1)*n]
		out := dst[i*width : (i+1)*width]
		for c := 0; c < copies; c++ {
			copy(out[c*n:(c+1)*n], row)
		}
	}
}
