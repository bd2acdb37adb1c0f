package nn

import (
	"fmt"
	"strings"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Sequential chains layers: each layer's output becomes the next layer's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(784, 128, nn.ReLU),
//	    nn.NewDense(128, 10, nn.Sigmoid),
//	)
//
//	var out tensor.Tensor
//	model.Forward(&out, batch)
type Sequential struct {
	layers  []Layer
	scratch [2]tensor.Tensor
}

// NewSequential creates a container over layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{layers: layers}
}

// Add appends a layer.
func (s *Sequential) Add(l Layer) {
	s.layers = append(s.layers, l)
}

// Layers returns the contained layers in order.
func (s *Sequential) Layers() []Layer {
	return s.layers
}

// Len returns the number of layers.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Forward runs x through every layer and stores the final output in out.
// An empty container copies x. Intermediate results live in two scratch
// tensors that are reused across calls.
func (s *Sequential) Forward(out, x *tensor.Tensor) {
	switch len(s.layers) {
	case 0:
		out.CopyData(x)
		return
	case 1:
		s.layers[0].Forward(out, x)
		return
	}

	in := x
	for i, l := range s.layers[:len(s.layers)-1] {
		next := &s.scratch[i%2]
		l.Forward(next, in)
		in = next
	}
	s.layers[len(s.layers)-1].Forward(out, in)
}

// Parameters returns the parameters of every layer, in layer order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range s.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Free releases every layer and the scratch tensors.
func (s *Sequential) Free() {
	for _, l := range s.layers {
		l.Free()
	}
	s.scratch[0].Free()
	s.scratch[1].Free()
}

// String lists the layers, one per line.
func (s *Sequential) String() string {
	var b strings.Builder
	b.WriteString("Sequential(\n")
	for i, l := range s.layers {
		fmt.Fprintf(&b, "  (%d): %v\n", i, l)
	}
	b.WriteString(")")
	return b.String()
}
