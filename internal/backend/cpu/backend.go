// Package cpu implements the numeric kernels of the Nexum engine.
//
// Kernels operate on row-major []float64 buffers with explicit dimensions.
// They never allocate result buffers: the caller passes a destination of the
// right length. Length mismatches are programming errors and panic.
//
// Heavy kernels delegate to gonum: GEMM through blas64, transposition through
// mat, and vector arithmetic through floats.
package cpu
