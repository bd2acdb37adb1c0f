package nn

import (
	"math"
	"testing"

	"github.com/nexum-ml/nexum/internal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestRegressionLosses(t *testing.T) {
	yTrue := tensor.FromSlice(1, 4, []float64{1, 2, 3, 4})
	yPred := tensor.FromSlice(1, 4, []float64{2, 2, 1, 4})
	// Differences: -1, 0, 2, 0.

	assert.InDelta(t, 0.625, MSE(yTrue, yPred), 1e-15) // 0.5 * 5 / 4
	assert.InDelta(t, 0.75, MAE(yTrue, yPred), 1e-15)
	assert.InDelta(t, math.Sqrt(0.625), RMSE(yTrue, yPred), 1e-15)

	assert.Equal(t, 0.0, MSE(yTrue, yTrue))
	assert.Equal(t, 0.0, MAE(yTrue, yTrue))
}

func TestLossesLeaveInputsUntouched(t *testing.T) {
	yTrue := tensor.FromSlice(1, 2, []float64{1, 0})
	yPred := tensor.FromSlice(1, 2, []float64{0.25, 0.75})

	MSE(yTrue, yPred)
	BinaryCrossEntropy(yTrue, yPred)
	CategoricalCrossEntropy(yTrue, yPred)

	assert.Equal(t, []float64{1, 0}, yTrue.Data())
	assert.Equal(t, []float64{0.25, 0.75}, yPred.Data())
}

func TestCategoricalCrossEntropy(t *testing.T) {
	// Two samples (columns) over three classes.
	yTrue := tensor.FromSlice(3, 2, []float64{
		1, 0,
		0, 0,
		0, 1,
	})
	yPred := tensor.FromSlice(3, 2, []float64{
		0.5, 0.2,
		0.25, 0.4,
		0.25, 0.4,
	})

	want := -(math.Log(0.5) + math.Log(0.4)) / 2
	assert.InDelta(t, want, CategoricalCrossEntropy(yTrue, yPred), 1e-15)
}

func TestBinaryCrossEntropy(t *testing.T) {
	yTrue := tensor.FromSlice(1, 2, []float64{1, 0})
	yPred := tensor.FromSlice(1, 2, []float64{0.8, 0.4})

	want := -(math.Log(0.8) + math.Log(0.6)) / 2
	assert.InDelta(t, want, BinaryCrossEntropy(yTrue, yPred), 1e-15)
}

func TestCrossEntropyClipsPredictions(t *testing.T) {
	yTrue := tensor.FromSlice(1, 2, []float64{1, 0})
	yPred := tensor.FromSlice(1, 2, []float64{0, 1})

	bce := BinaryCrossEntropy(yTrue, yPred)
	assert.False(t, math.IsInf(bce, 0))
	assert.InDelta(t, -math.Log(Epsilon), bce, 1e-3)

	cce := CategoricalCrossEntropy(tensor.FromSlice(2, 1, []float64{1, 0}), tensor.FromSlice(2, 1, []float64{0, 1}))
	assert.InDelta(t, -math.Log(Epsilon), cce, 1e-9)
}

func TestLossShapeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { MSE(tensor.New(2, 2), tensor.New(1, 4)) })
	assert.Panics(t, func() { BinaryCrossEntropy(tensor.New(2, 2), tensor.New(1, 4)) })
}
