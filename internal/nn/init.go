package nn

import (
	"math"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Xavier returns an (fanOut, fanIn) tensor drawn from the Xavier/Glorot
// uniform distribution U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
func Xavier(fanIn, fanOut int) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	w := tensor.Rand(fanOut, fanIn)
	w.MulScalarInplace(2 * bound)
	w.SubScalarInplace(bound)
	return w
}
