package optim

import "github.com/nexum-ml/nexum/internal/tensor"

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//	optimizer.Step(params, grads)
type SGD struct {
	lr         float64
	momentum   float64
	velocities map[*tensor.Tensor]*tensor.Tensor
	step       tensor.Tensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*tensor.Tensor]*tensor.Tensor),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(params, grads []*tensor.Tensor) {
	checkPairs("sgd", params, grads)
	for i, param := range params {
		grad := grads[i]
		if grad == nil {
			continue
		}

		update := grad
		if s.momentum != 0 {
			velocity, ok := s.velocities[param]
			if !ok {
				velocity = tensor.ZerosLike(param)
				s.velocities[param] = velocity
			}
			velocity.MulScalarInplace(s.momentum)
			velocity.Add(velocity, grad)
			update = velocity
		}

		s.step.MulScalar(update, s.lr)
		param.Sub(param, &s.step)
	}
}

// LR returns the learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR changes the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
