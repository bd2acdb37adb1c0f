package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatMul computes c = a × b for row-major a (m×k) and b (k×n) into c (m×n).
//
// c is overwritten and must not alias a or b. Products with m*k*n below
// Config.BLASThreshold use an i-k-j loop; larger ones use blas64.Gemm.
func MatMul(c, a, b []float64, m, k, n int) {
	if len(a) != m*k || len(b) != k*n || len(c) != m*n {
		panic(fmt.Sprintf("matmul: buffer sizes %d, %d, %d do not match (%d, %d) x (%d, %d)",
			len(a), len(b), len(c), m, k, k, n))
	}
	if m*k*n < CurrentConfig().BLASThreshold {
		matmulNaive(c, a, b, m, k, n)
		return
	}
	matmulBLAS(c, a, b, m, k, n)
}

func matmulBLAS(c, a, b []float64, m, k, n int) {
	ga := blas64.General{Rows: m, Cols: k, Stride: k, Data: a}
	gb := blas64.General{Rows: k, Cols: n, Stride: n, Data: b}
	gc := blas64.General{Rows: m, Cols: n, Stride: n, Data: c}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, 0, gc)
}

// matmulNaive walks b row by row so the inner loop stays contiguous in memory.
func matmulNaive(c, a, b []float64, m, k, n int) {
	for i := range c {
		c[i] = 0
	}
	for i := 0; i < m; i++ {
		ci := c[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			aip := a[i*k+p]
			bp := b[p*n : (p+1)*n]
			for j, v := range bp {
				ci[j] += aip * v
			}
		}
	}
}
