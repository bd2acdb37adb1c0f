package cpu

import "fmt"

// BroadcastRows computes dst[i][j] = op(a[i][j], row[j]) for an m×n a.
// dst must not alias row.
func BroadcastRows(op BinaryOp, dst, a, row []float64, m, n int) {
	if len(a) != m*n || len(dst) != m*n || len(row) != n {
		panic(fmt.Sprintf("%s_broadcast: buffer sizes %d, %d into %d do not match (%d, %d)",
			op, len(a), len(row), len(dst), m, n))
	}
	for i := 0; i < m; i++ {
		lo, hi := i*n, (i+1)*n
		Elementwise(op, dst[lo:hi], a[lo:hi], row)
	}
}

// BroadcastCols computes dst[i][j] = op(a[i][j], col[i]) for an m×n a.
// dst must not alias col.
func BroadcastCols(op BinaryOp, dst, a, col []float64, m, n int) {
	if len(a) != m*n || len(dst) != m*n || len(col) != m {
		panic(fmt.Sprintf("%s_broadcast: buffer sizes %d, %d into %d do not match (%d, %d)",
			op, len(a), len(col), len(dst), m, n))
	}
	for i, s := range col {
		lo, hi := i*n, (i+1)*n
		Scalar(op, dst[lo:hi], a[lo:hi], s)
	}
}
