package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	return floats.Sum(a)
}

// SumCols writes the column sums of the m×n matrix a into dst (length n).
func SumCols(dst, a []float64, m, n int) {
	if len(a) != m*n || len(dst) != n {
		panic(fmt.Sprintf("sum_axis: buffer sizes %d into %d do not match (%d, %d)", len(a), len(dst), m, n))
	}
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < m; i++ {
		floats.Add(dst, a[i*n:(i+1)*n])
	}
}

// SumRows writes the row sums of the m×n matrix a into dst (length m).
func SumRows(dst, a []float64, m, n int) {
	if len(a) != m*n || len(dst) != m {
		panic(fmt.Sprintf("sum_axis: buffer sizes %d into %d do not match (%d, %d)", len(a), len(dst), m, n))
	}
	for i := range dst {
		dst[i] = floats.Sum(a[i*n : (i+1)*n])
	}
}

// MinMax returns the smallest and largest element of a non-empty a. Both are
// NaN if any element is NaN.
func MinMax(a []float64) (lo, hi float64) {
	if len(a) == 0 {
		panic("minmax: empty buffer")
	}
	if floats.HasNaN(a) {
		return math.NaN(), math.NaN()
	}
	return floats.Min(a), floats.Max(a)
}
