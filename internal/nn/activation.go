package nn

import (
	"fmt"
	"math"
	"strings"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Activation selects the elementwise nonlinearity applied by a Dense layer.
// The numeric values are part of the layer file formats.
type Activation uint32

// Supported activations.
const (
	None Activation = iota
	ReLU
	Sigmoid
	Tanh
	ELU
	LeakyReLU
)

// Activation parameters.
const (
	ELUAlpha       = 1.0  // Scale of the negative ELU branch
	LeakyReLUSlope = 0.01 // Slope of the negative LeakyReLU branch
)

var activationNames = [...]string{
	None:      "none",
	ReLU:      "relu",
	Sigmoid:   "sigmoid",
	Tanh:      "tanh",
	ELU:       "elu",
	LeakyReLU: "leaky_relu",
}

// String returns the activation name.
func (a Activation) String() string {
	if int(a) < len(activationNames) {
		return activationNames[a]
	}
	return fmt.Sprintf("Activation(%d)", uint32(a))
}

// Valid reports whether a is a known activation.
func (a Activation) Valid() bool {
	return int(a) < len(activationNames)
}

// ParseActivation parses an activation name such as "relu".
func ParseActivation(s string) (Activation, error) {
	for i, name := range activationNames {
		if strings.EqualFold(s, name) {
			return Activation(i), nil //nolint:gosec // G115: index of a short table
		}
	}
	return 0, fmt.Errorf("unknown activation %q", s)
}

// Func returns the scalar function for a. None maps to the identity.
func (a Activation) Func() func(float64) float64 {
	switch a {
	case None:
		return identity
	case ReLU:
		return relu
	case Sigmoid:
		return sigmoid
	case Tanh:
		return math.Tanh
	case ELU:
		return elu
	case LeakyReLU:
		return leakyReLU
	default:
		panic(fmt.Sprintf("activation: unknown activation %d", uint32(a)))
	}
}

// Apply stores a(x) in out elementwise. out may be x.
func (a Activation) Apply(out, x *tensor.Tensor) {
	if a == None {
		if out != x {
			out.CopyData(x)
		}
		return
	}
	out.Apply(x, a.Func())
}

func identity(x float64) float64 { return x }

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// sigmoid is evaluated on the side that cannot overflow exp.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

func elu(x float64) float64 {
	if x > 0 {
		return x
	}
	return ELUAlpha * math.Expm1(x)
}

func leakyReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return LeakyReLUSlope * x
}
