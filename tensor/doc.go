// Copyright 2026 Nexum Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API of the Nexum dense tensor engine.
//
// # Overview
//
// A Tensor is a dense, row-major, two-dimensional matrix of float64 values.
// This package provides:
//   - Allocation with buffer reuse (Alloc, Free) and filled constructors
//   - Elementwise, scalar and row/column broadcast arithmetic
//   - Matrix multiplication, transposition, reshaping and reductions
//   - Text and binary persistence
//
// # Basic Usage
//
//	import "github.com/nexum-ml/nexum/tensor"
//
//	func main() {
//	    a := tensor.FromSlice(2, 2, []float64{1, 2, 3, 4})
//	    b := tensor.FromSlice(2, 2, []float64{5, 6, 7, 8})
//
//	    var c tensor.Tensor
//	    c.MatMul(a, b) // [[19, 22], [43, 50]]
//
//	    if err := tensor.Save("c.bin", &c); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Destinations
//
// Operations store their result in the receiver, which is allocated or
// resized as needed. When the receiver already holds the right number of
// elements its buffer is reused. The receiver may also be one of the operands.
//
// # Errors
//
// Shape mismatches and other misuse panic with a *ShapeError or an *OpError
// wrapping one of the Err* sentinels. File operations return errors; MustSave
// and MustLoad panic instead.
package tensor
