package tensor

import (
	"math"

	"github.com/nexum-ml/nexum/internal/backend/cpu"
)

// Apply stores f(x) for every element x of a in t.
func (t *Tensor) Apply(a *Tensor, f func(float64) float64) {
	mustAllocated("apply", a)
	t.Alloc(a.rows, a.cols)
	cpu.Apply(t.data, a.data, f)
}

// ApplyInplace replaces every element x of t with f(x).
func (t *Tensor) ApplyInplace(f func(float64) float64) {
	t.Apply(t, f)
}

func neg(x float64) float64 { return -x }

func square(x float64) float64 { return x * x }

// sign maps zero to +1.
func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// Neg stores -a in t.
func (t *Tensor) Neg(a *Tensor) { t.Apply(a, neg) }

// NegInplace negates t.
func (t *Tensor) NegInplace() { t.Neg(t) }

// Abs stores |a| in t.
func (t *Tensor) Abs(a *Tensor) { t.Apply(a, math.Abs) }

// AbsInplace replaces t with |t|.
func (t *Tensor) AbsInplace() { t.Abs(t) }

// Sign stores +1 for non-negative elements of a and -1 otherwise.
func (t *Tensor) Sign(a *Tensor) { t.Apply(a, sign) }

// SignInplace replaces t with its sign.
func (t *Tensor) SignInplace() { t.Sign(t) }

// Square stores a² in t.
func (t *Tensor) Square(a *Tensor) { t.Apply(a, square) }

// SquareInplace squares t.
func (t *Tensor) SquareInplace() { t.Square(t) }

// Pow stores a raised to the integer power p in t.
func (t *Tensor) Pow(a *Tensor, p int) {
	exp := float64(p)
	t.Apply(a, func(x float64) float64 { return math.Pow(x, exp) })
}

// PowInplace raises t to the integer power p.
func (t *Tensor) PowInplace(p int) { t.Pow(t, p) }

// Exp stores e^a in t.
func (t *Tensor) Exp(a *Tensor) { t.Apply(a, math.Exp) }

// ExpInplace replaces t with e^t.
func (t *Tensor) ExpInplace() { t.Exp(t) }

// Log stores the natural logarithm of a in t. Log(0) is -Inf and the log of a
// negative number is NaN.
func (t *Tensor) Log(a *Tensor) { t.Apply(a, math.Log) }

// LogInplace replaces t with its natural logarithm.
func (t *Tensor) LogInplace() { t.Log(t) }

// Log10 stores the base-10 logarithm of a in t.
func (t *Tensor) Log10(a *Tensor) { t.Apply(a, math.Log10) }

// Log10Inplace replaces t with its base-10 logarithm.
func (t *Tensor) Log10Inplace() { t.Log10(t) }

// Sin stores sin(a) in t.
func (t *Tensor) Sin(a *Tensor) { t.Apply(a, math.Sin) }

// SinInplace replaces t with sin(t).
func (t *Tensor) SinInplace() { t.Sin(t) }

// Cos stores cos(a) in t.
func (t *Tensor) Cos(a *Tensor) { t.Apply(a, math.Cos) }

// CosInplace replaces t with cos(t).
func (t *Tensor) CosInplace() { t.Cos(t) }
