package nn

import (
	"math"

	"github.com/nexum-ml/nexum/internal/tensor"
)

// Epsilon bounds predictions away from 0 and 1 inside the cross-entropy losses.
const Epsilon = 1e-12

// MSE returns half the mean squared error, 0.5/size · Σ(yTrue - yPred)².
//
// With the 0.5 factor the gradient with respect to yPred is (yPred - yTrue)/size.
func MSE(yTrue, yPred *tensor.Tensor) float64 {
	var d tensor.Tensor
	d.Sub(yTrue, yPred)
	d.SquareInplace()
	d.MulScalarInplace(0.5 / float64(d.Size()))
	return d.Sum()
}

// MAE returns the mean absolute error, Σ|yTrue - yPred| / size.
func MAE(yTrue, yPred *tensor.Tensor) float64 {
	var d tensor.Tensor
	d.Sub(yTrue, yPred)
	d.AbsInplace()
	return d.Sum() / float64(d.Size())
}

// RMSE returns sqrt(MSE(yTrue, yPred)).
func RMSE(yTrue, yPred *tensor.Tensor) float64 {
	return math.Sqrt(MSE(yTrue, yPred))
}

// CategoricalCrossEntropy returns -Σ yTrue·log(yPred) divided by the number
// of samples (columns). yTrue holds one-hot or probability columns and yPred
// predicted probabilities clipped to [Epsilon, 1-Epsilon].
func CategoricalCrossEntropy(yTrue, yPred *tensor.Tensor) float64 {
	var logp tensor.Tensor
	logp.Apply(yPred, func(p float64) float64 { return math.Log(clip(p)) })
	logp.Mul(yTrue, &logp)
	return -logp.Sum() / float64(yTrue.Cols())
}

// BinaryCrossEntropy returns the mean over all elements of
// -(y·log(p) + (1-y)·log(1-p)) with p clipped to [Epsilon, 1-Epsilon].
func BinaryCrossEntropy(yTrue, yPred *tensor.Tensor) float64 {
	var p tensor.Tensor
	p.Apply(yPred, clip)

	// pos = y·log(p)
	var pos tensor.Tensor
	pos.Log(&p)
	pos.Mul(yTrue, &pos)

	// neg = (1-y)·log(1-p)
	var oneMinusY, neg tensor.Tensor
	oneMinusY.MulScalar(yTrue, -1)
	oneMinusY.AddScalarInplace(1)
	neg.Apply(&p, func(v float64) float64 { return math.Log(1 - v) })
	neg.Mul(&oneMinusY, &neg)

	pos.Add(&pos, &neg)
	return -pos.Sum() / float64(pos.Size())
}

func clip(p float64) float64 {
	return math.Min(math.Max(p, Epsilon), 1-Epsilon)
}
