package optim

import (
	"math"
	"testing"

	"github.com/nexum-ml/nexum/internal/nn"
	"github.com/nexum-ml/nexum/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSGDStep(t *testing.T) {
	param := tensor.FromSlice(1, 3, []float64{1, 2, 3})
	grad := tensor.FromSlice(1, 3, []float64{1, -1, 0.5})

	sgd := NewSGD(SGDConfig{LR: 0.5})
	sgd.Step([]*tensor.Tensor{param}, []*tensor.Tensor{grad})

	assert.Equal(t, []float64{0.5, 2.5, 2.75}, param.Data())
	assert.Equal(t, []float64{1, -1, 0.5}, grad.Data())
}

func TestSGDMomentum(t *testing.T) {
	param := tensor.FromSlice(1, 1, []float64{0})
	grad := tensor.FromSlice(1, 1, []float64{1})
	sgd := NewSGD(SGDConfig{LR: 1, Momentum: 0.5})

	// velocity: 1, then 1.5, then 1.75.
	for range 3 {
		sgd.Step([]*tensor.Tensor{param}, []*tensor.Tensor{grad})
	}

	assert.InDelta(t, -4.25, param.At(0, 0), 1e-15)
}

func TestSGDDefaultsAndNilGradients(t *testing.T) {
	sgd := NewSGD(SGDConfig{})
	assert.Equal(t, 0.01, sgd.LR())
	sgd.SetLR(0.1)
	assert.Equal(t, 0.1, sgd.LR())

	param := tensor.Ones(2, 2)
	sgd.Step([]*tensor.Tensor{param}, []*tensor.Tensor{nil})
	assert.Equal(t, 4.0, param.Sum())

	assert.Panics(t, func() { sgd.Step([]*tensor.Tensor{param}, nil) })
}

func TestSGDMinimizesQuadratic(t *testing.T) {
	// f(p) = 0.5·|p - target|², gradient p - target.
	target := tensor.FromSlice(2, 1, []float64{3, -2})
	param := tensor.Zeros(2, 1)
	var grad tensor.Tensor
	sgd := NewSGD(SGDConfig{LR: 0.1, Momentum: 0.9})

	for range 600 {
		grad.Sub(param, target)
		sgd.Step([]*tensor.Tensor{param}, []*tensor.Tensor{&grad})
	}

	assert.True(t, tensor.EqualApprox(target, param, 1e-6))
}

func TestAdamFirstStep(t *testing.T) {
	// With bias correction the first update is lr * g/|g| (up to eps).
	param := tensor.FromSlice(1, 2, []float64{1, 1})
	grad := tensor.FromSlice(1, 2, []float64{4, -0.5})
	adam := NewAdam(AdamConfig{LR: 0.1})

	adam.Step([]*tensor.Tensor{param}, []*tensor.Tensor{grad})

	assert.InDeltaSlice(t, []float64{0.9, 1.1}, param.Data(), 1e-6)
	assert.Equal(t, 1, adam.Steps())
}

func TestAdamDefaults(t *testing.T) {
	adam := NewAdam(AdamConfig{})
	assert.Equal(t, 0.001, adam.LR())
	assert.Equal(t, 0.9, adam.beta1)
	assert.Equal(t, 0.999, adam.beta2)
	assert.Equal(t, 1e-8, adam.eps)
}

func TestAdamMinimizesQuadratic(t *testing.T) {
	target := tensor.FromSlice(1, 3, []float64{1, -1, 0.5})
	param := tensor.Zeros(1, 3)
	var grad tensor.Tensor
	adam := NewAdam(AdamConfig{LR: 0.05})

	for range 2000 {
		grad.Sub(param, target)
		adam.Step([]*tensor.Tensor{param}, []*tensor.Tensor{&grad})
	}

	for i, want := range target.Data() {
		assert.InDelta(t, want, param.Data()[i], 5e-3)
	}
}

func TestStepParametersTrainsDense(t *testing.T) {
	tensor.Seed(8)
	layer := nn.NewDense(1, 1, nn.None)
	x := tensor.FromSlice(1, 4, []float64{-1, 0, 1, 2})
	y := tensor.FromSlice(1, 4, []float64{-1, 1, 3, 5}) // y = 2x + 1
	var out, diff, gw, gb tensor.Tensor
	var xt tensor.Tensor
	xt.Transpose(x)
	opt := NewSGD(SGDConfig{LR: 0.1})

	for range 500 {
		layer.Forward(&out, x)
		// MSE gradient: dL/dout = (out - y)/size.
		diff.Sub(&out, y)
		diff.DivScalarInplace(float64(diff.Size()))
		gw.MatMul(&diff, &xt)
		gb.SumAxis(&diff, tensor.AxisCol)

		params := layer.Parameters()
		params[0].Grad().CopyData(&gw)
		params[1].Grad().CopyData(&gb)
		StepParameters(opt, params)
	}

	require.Less(t, nn.MSE(y, &out), 1e-8)
	assert.InDelta(t, 2, layer.Weights().At(0, 0), 1e-3)
	assert.InDelta(t, 1, layer.Bias().At(0, 0), 1e-3)

	ZeroGrad(layer.Parameters())
	for _, p := range layer.Parameters() {
		assert.Equal(t, 0.0, p.Grad().Sum())
	}
}

func TestOptimizersSatisfyInterface(t *testing.T) {
	for _, o := range []Optimizer{NewSGD(SGDConfig{}), NewAdam(AdamConfig{})} {
		assert.False(t, math.IsNaN(o.LR()))
	}
}
