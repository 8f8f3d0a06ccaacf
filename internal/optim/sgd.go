package optim

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// SGD implements stochastic gradient descent.
//
// Plain update:
//
//	param -= lr * grad
//
// With weight decay the gradient first picks up a decay*param term, and
// with momentum the update runs through a velocity buffer:
//
//	velocity = momentum*velocity + grad
//	param -= lr * velocity
//
// The regression lessons use the plain form with lr 0.03.
type SGD[B tensor.Backend] struct {
	params      []*nn.Parameter[B]
	lr          float32
	momentum    float32
	weightDecay float32
	velocities  map[*nn.Parameter[B]]*tensor.Tensor[float32, B]
	backend     B
}

// SGDConfig configures SGD.
type SGDConfig struct {
	LR          float32 // learning rate, default 0.01
	Momentum    float32 // momentum factor in [0, 1), default 0
	WeightDecay float32 // L2 penalty coefficient, default 0
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[B]{
		params:      params,
		lr:          config.LR,
		momentum:    config.Momentum,
		weightDecay: config.WeightDecay,
		velocities:  make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B]),
		backend:     backend,
	}
}

// Step applies one SGD update per parameter with a gradient.
//
// Updates are computed through the backend and copied back into the
// parameter buffers, so every parameter keeps its RawTensor identity
// and stays findable in future gradient maps.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range s.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}

		update := grad
		if s.weightDecay != 0 {
			// The decay term is the first operand so any in-place reuse
			// lands on the temporary, never on the caller's gradient.
			decay := s.backend.MulScalar(param.Tensor().Raw(), float64(s.weightDecay))
			update = s.backend.Add(decay, grad)
		}

		if s.momentum != 0 {
			velocity, ok := s.velocities[param]
			if !ok {
				velocity = tensor.Zeros[float32](param.Tensor().Shape(), s.backend)
				s.velocities[param] = velocity
			}
			scaled := s.backend.MulScalar(velocity.Raw(), float64(s.momentum))
			newVelocity := s.backend.Add(scaled, update)
			copy(velocity.Data(), newVelocity.AsFloat32())
			update = velocity.Raw()
		}

		step := s.backend.MulScalar(update, float64(s.lr))
		updated := s.backend.Sub(param.Tensor().Raw(), step)
		copy(param.Tensor().Data(), updated.AsFloat32())
	}
}

// ZeroGrad clears all parameter gradients.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the learning rate.
func (s *SGD[B]) GetLR() float32 {
	return s.lr
}

// SetLR changes the learning rate.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}
