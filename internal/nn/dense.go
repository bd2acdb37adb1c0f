package nn

import (
	"fmt"
	"io"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: out = act(W·x + b)
// where:
//   - x is the input with shape (In, batch)
//   - W is the weight matrix with shape (Out, In)
//   - b is the bias column with shape (Out, 1), broadcast over the batch
//   - out has shape (Out, batch)
//
// Weights are drawn from a standard normal distribution and biases start at
// zero.
//
// Example:
//
//	layer := nn.NewDense(784, 128, nn.ReLU)
//	var out tensor.Tensor
//	layer.Forward(&out, batch) // batch is (784, 32), out is (128, 32)
type Dense struct {
	In  int
	Out int
	Act Activation

	weights *Parameter
	bias    *Parameter
}

// NewDense creates a Dense layer mapping in features to out features.
func NewDense(in, out int, act Activation) *Dense {
	return newDense(in, out, act, tensor.Randn(out, in))
}

// NewDenseXavier creates a Dense layer with Xavier-initialized weights.
func NewDenseXavier(in, out int, act Activation) *Dense {
	return newDense(in, out, act, Xavier(in, out))
}

func newDense(in, out int, act Activation, w *tensor.Tensor) *Dense {
	if !act.Valid() {
		panic(fmt.Sprintf("dense: unknown activation %d", uint32(act)))
	}
	return &Dense{
		In:      in,
		Out:     out,
		Act:     act,
		weights: NewParameter("weights", w),
		bias:    NewParameter("bias", tensor.Zeros(out, 1)),
	}
}

// Weights returns the (Out, In) weight matrix.
func (d *Dense) Weights() *tensor.Tensor {
	return d.weights.Tensor()
}

// Bias returns the (Out, 1) bias column.
func (d *Dense) Bias() *tensor.Tensor {
	return d.bias.Tensor()
}

// Forward stores act(W·x + b) in out. x must have In rows.
// out may be x.
func (d *Dense) Forward(out, x *tensor.Tensor) {
	out.MatMul(d.weights.Tensor(), x)
	out.AddBroadcast(out, d.bias.Tensor(), tensor.AxisCol)
	d.Act.Apply(out, out)
}

// Parameters returns the weights and bias, in that order.
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weights, d.bias}
}

// Free releases the layer's tensors and resets its dimensions.
func (d *Dense) Free() {
	for _, p := range d.Parameters() {
		p.Tensor().Free()
		p.Grad().Free()
	}
	d.In, d.Out = 0, 0
}

// Fprint writes the weights and then the bias with tensor.Fprint.
func (d *Dense) Fprint(w io.Writer) error {
	if err := tensor.Fprint(w, d.Weights()); err != nil {
		return err
	}
	return tensor.Fprint(w, d.Bias())
}

// String returns a short description such as "Dense(784 -> 128, relu)".
func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d -> %d, %s)", d.In, d.Out, d.Act)
}
