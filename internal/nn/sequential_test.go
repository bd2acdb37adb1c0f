package nn

import (
	"testing"

	"github.com/nexum-ml/nexum/internal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestSequentialForward(t *testing.T) {
	first := fixedDense(ReLU) // 2 -> 3
	second := NewDense(3, 1, None)
	second.Weights().SetData([]float64{1, 1, 1})

	model := NewSequential(first)
	model.Add(second)
	assert.Equal(t, 2, model.Len())

	x := tensor.FromSlice(2, 2, []float64{
		1, 2,
		1, -1,
	})
	var out tensor.Tensor
	model.Forward(&out, x)

	// relu(first) columns: (3.5, 0, 1) and (0.5, 0, 0.5).
	assert.Equal(t, tensor.Shape{Rows: 1, Cols: 2}, out.Shape())
	assert.Equal(t, []float64{4.5, 1}, out.Data())

	// Scratch tensors are reused on later calls.
	model.Forward(&out, x)
	assert.Equal(t, []float64{4.5, 1}, out.Data())
}

func TestSequentialDeepChain(t *testing.T) {
	tensor.Seed(4)
	model := NewSequential(
		NewDense(4, 8, Tanh),
		NewDense(8, 8, Tanh),
		NewDense(8, 8, Tanh),
		NewDense(8, 2, Sigmoid),
	)
	var out tensor.Tensor
	model.Forward(&out, tensor.Randn(4, 16))

	assert.Equal(t, tensor.Shape{Rows: 2, Cols: 16}, out.Shape())
	assert.Greater(t, out.Min(), 0.0)
	assert.Less(t, out.Max(), 1.0)
	assert.Len(t, model.Parameters(), 8)
}

func TestSequentialEmptyCopiesInput(t *testing.T) {
	x := tensor.FromSlice(1, 2, []float64{1, 2})
	var out tensor.Tensor

	NewSequential().Forward(&out, x)

	assert.True(t, tensor.Equal(x, &out))
}

func TestSequentialFreeAndString(t *testing.T) {
	model := NewSequential(NewDense(2, 3, ReLU), NewDense(3, 1, None))
	assert.Equal(t, "Sequential(\n  (0): Dense(2 -> 3, relu)\n  (1): Dense(3 -> 1, none)\n)", model.String())

	model.Free()
	for _, p := range model.Parameters() {
		assert.False(t, p.Tensor().Allocated())
	}
}

func TestParameterZeroGrad(t *testing.T) {
	p := NewParameter("w", tensor.Ones(2, 2))
	assert.Equal(t, "w", p.Name())
	assert.Equal(t, tensor.Shape{Rows: 2, Cols: 2}, p.Grad().Shape())

	p.Grad().AddScalarInplace(3)
	p.ZeroGrad()

	assert.Equal(t, 0.0, p.Grad().Sum())
}
