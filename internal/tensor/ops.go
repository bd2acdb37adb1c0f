package tensor

import "github.com/nexum-ml/nexum/internal/backend/cpu"

// Add stores a + b in t. a and b must have the same shape.
// t may be a or b.
func (t *Tensor) Add(a, b *Tensor) {
	t.elementwise("add", cpu.OpAdd, a, b)
}

// Sub stores a - b in t, computed as a + (-b) through a negated copy of b.
func (t *Tensor) Sub(a, b *Tensor) {
	mustAllocated("sub", a, b)
	if !a.Shape().Equal(b.Shape()) {
		failShape("sub", a.Shape(), b.Shape())
	}
	var neg Tensor
	neg.Neg(b)
	t.Add(a, &neg)
}

// Mul stores the elementwise (Hadamard) product of a and b in t.
func (t *Tensor) Mul(a, b *Tensor) {
	t.elementwise("mul", cpu.OpMul, a, b)
}

// Div stores the elementwise quotient a / b in t. Zero elements of b follow
// IEEE-754 (±Inf or NaN).
func (t *Tensor) Div(a, b *Tensor) {
	t.elementwise("div", cpu.OpDiv, a, b)
}

func (t *Tensor) elementwise(name string, op cpu.BinaryOp, a, b *Tensor) {
	mustAllocated(name, a, b)
	if !a.Shape().Equal(b.Shape()) {
		failShape(name, a.Shape(), b.Shape())
	}
	t.Alloc(a.rows, a.cols)
	cpu.Elementwise(op, t.data, a.data, b.data)
}

// AddScalar stores a + s in t.
func (t *Tensor) AddScalar(a *Tensor, s float64) {
	t.scalar("add_scalar", cpu.OpAdd, a, s)
}

// SubScalar stores a - s in t.
func (t *Tensor) SubScalar(a *Tensor, s float64) {
	t.scalar("sub_scalar", cpu.OpSub, a, s)
}

// MulScalar stores a * s in t.
func (t *Tensor) MulScalar(a *Tensor, s float64) {
	t.scalar("mul_scalar", cpu.OpMul, a, s)
}

// DivScalar stores a / s in t. Panics with ErrZeroDivisor when s is zero.
func (t *Tensor) DivScalar(a *Tensor, s float64) {
	if s == 0 {
		fail("div_scalar", ErrZeroDivisor, "")
	}
	t.scalar("div_scalar", cpu.OpDiv, a, s)
}

// AddScalarInplace adds s to every element of t.
func (t *Tensor) AddScalarInplace(s float64) {
	t.scalar("add_scalar_inplace", cpu.OpAdd, t, s)
}

// SubScalarInplace subtracts s from every element of t.
func (t *Tensor) SubScalarInplace(s float64) {
	t.scalar("sub_scalar_inplace", cpu.OpSub, t, s)
}

// MulScalarInplace multiplies every element of t by s.
func (t *Tensor) MulScalarInplace(s float64) {
	t.scalar("mul_scalar_inplace", cpu.OpMul, t, s)
}

// DivScalarInplace divides every element of t by s.
// Panics with ErrZeroDivisor when s is zero.
func (t *Tensor) DivScalarInplace(s float64) {
	if s == 0 {
		fail("div_scalar_inplace", ErrZeroDivisor, "")
	}
	t.scalar("div_scalar_inplace", cpu.OpDiv, t, s)
}

func (t *Tensor) scalar(name string, op cpu.BinaryOp, a *Tensor, s float64) {
	mustAllocated(name, a)
	t.Alloc(a.rows, a.cols)
	cpu.Scalar(op, t.data, a.data, s)
}

// AddBroadcast stores a + b in t, repeating b along axis.
//
// With AxisRow, b is a (1, n) row added to every row of the (m, n) tensor a.
// With AxisCol, b is an (m, 1) column added to every column.
//
// Example:
//
//	a := tensor.FromSlice(2, 2, []float64{1, 2, 3, 4})
//	b := tensor.FromSlice(1, 2, []float64{10, 20})
//	c.AddBroadcast(a, b, tensor.AxisRow) // [[11, 22], [13, 24]]
func (t *Tensor) AddBroadcast(a, b *Tensor, axis Axis) {
	t.broadcast("add_broadcast", cpu.OpAdd, a, b, axis)
}

// SubBroadcast stores a - b in t, repeating b along axis.
func (t *Tensor) SubBroadcast(a, b *Tensor, axis Axis) {
	t.broadcast("sub_broadcast", cpu.OpSub, a, b, axis)
}

// MulBroadcast stores a * b in t, repeating b along axis.
func (t *Tensor) MulBroadcast(a, b *Tensor, axis Axis) {
	t.broadcast("mul_broadcast", cpu.OpMul, a, b, axis)
}

// DivBroadcast stores a / b in t, repeating b along axis.
func (t *Tensor) DivBroadcast(a, b *Tensor, axis Axis) {
	t.broadcast("div_broadcast", cpu.OpDiv, a, b, axis)
}

func (t *Tensor) broadcast(name string, op cpu.BinaryOp, a, b *Tensor, axis Axis) {
	mustAllocated(name, a, b)
	buf := make([]float64, a.Size())
	switch axis {
	case AxisRow:
		if b.rows != 1 || b.cols != a.cols {
			failShape(name, a.Shape(), b.Shape())
		}
		cpu.BroadcastRows(op, buf, a.data, b.data, a.rows, a.cols)
	case AxisCol:
		if b.cols != 1 || b.rows != a.rows {
			failShape(name, a.Shape(), b.Shape())
		}
		cpu.BroadcastCols(op, buf, a.data, b.data, a.rows, a.cols)
	default:
		fail(name, ErrInvalidAxis, "%v", axis)
	}
	t.adopt(a.rows, a.cols, buf)
}
