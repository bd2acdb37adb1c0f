package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// BinaryOp selects the arithmetic of an elementwise or broadcast kernel.
type BinaryOp int

// Supported binary operations.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operation name.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// apply returns op(x, y) for a single pair.
func (op BinaryOp) apply(x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	default:
		panic(fmt.Sprintf("cpu: unknown binary op %d", int(op)))
	}
}

// Elementwise computes dst[i] = op(a[i], b[i]). dst may alias a or b.
func Elementwise(op BinaryOp, dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(fmt.Sprintf("%s: length mismatch %d, %d into %d", op, len(a), len(b), len(dst)))
	}
	switch op {
	case OpAdd:
		floats.AddTo(dst, a, b)
	case OpSub:
		floats.SubTo(dst, a, b)
	case OpMul:
		floats.MulTo(dst, a, b)
	case OpDiv:
		floats.DivTo(dst, a, b)
	default:
		panic(fmt.Sprintf("cpu: unknown binary op %d", int(op)))
	}
}

// Scalar computes dst[i] = op(a[i], s). dst may alias a.
func Scalar(op BinaryOp, dst, a []float64, s float64) {
	if len(dst) != len(a) {
		panic(fmt.Sprintf("%s_scalar: length mismatch %d into %d", op, len(a), len(dst)))
	}
	switch op {
	case OpAdd:
		copy(dst, a)
		floats.AddConst(s, dst)
	case OpSub:
		copy(dst, a)
		floats.AddConst(-s, dst)
	case OpMul:
		floats.ScaleTo(dst, s, a)
	default:
		// Division stays exact (x/s, not x*(1/s)).
		for i, v := range a {
			dst[i] = op.apply(v, s)
		}
	}
}

// Apply computes dst[i] = f(a[i]). dst may alias a.
func Apply(dst, a []float64, f func(float64) float64) {
	if len(dst) != len(a) {
		panic(fmt.Sprintf("apply: length mismatch %d into %d", len(a), len(dst)))
	}
	for i, v := range a {
		dst[i] = f(v)
	}
}
