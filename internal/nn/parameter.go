package nn

import "github.com/nexum-ml/nexum/internal/tensor"

// Parameter is a named trainable tensor with a gradient slot of the same shape.
//
// Example:
//
//	w := nn.NewParameter("dense.weights", tensor.Randn(4, 3))
//	w.Grad().Set(0, 0, 0.5) // filled by the caller's backward pass
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor
}

// NewParameter wraps t as a trainable parameter. The gradient starts at zero.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
		grad:   tensor.ZerosLike(t),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// ZeroGrad resets the gradient to zero.
func (p *Parameter) ZeroGrad() {
	p.grad.AllocZerosLike(p.tensor)
}
