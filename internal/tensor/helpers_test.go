package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicIs asserts that f panics with an error matching target.
func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

// requireShapePanic asserts that f panics with a *ShapeError for op.
func requireShapePanic(t *testing.T, op string, f func()) *ShapeError {
	t.Helper()
	var got *ShapeError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a panic")
			err, ok := r.(error)
			require.True(t, ok, "panic value %v is not an error", r)
			require.ErrorAs(t, err, &got)
		}()
		f()
	}()
	require.Equal(t, op, got.Op)
	return got
}

// mat builds an m×n tensor from row-major values.
func mat(m, n int, values ...float64) *Tensor {
	return FromSlice(m, n, values)
}
