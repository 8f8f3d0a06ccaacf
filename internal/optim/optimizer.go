// Package optim implements the optimizers the lessons train with.
//
// Provided:
//   - Optimizer: the interface every algorithm implements
//   - SGD: stochastic gradient descent with momentum and weight decay
//   - Adam: adaptive moment estimation
//   - NewTrainer: resolves an algorithm by name, the way the notebooks
//     construct a trainer from a config string
//
// A training step pairs an optimizer with the gradient map from the
// tape:
//
//	optimizer.ZeroGrad()
//	loss := lossFn.Forward(model.Forward(x), y)
//	grads := autodiff.Backward(loss, backend)
//	optimizer.Step(grads)
//	backend.Tape().Clear()
//
// Clearing the tape after Step also discards any update arithmetic the
// optimizer ran through a recording backend.
package optim

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Optimizer updates parameters from a gradient map.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient
	// in the map (keyed by the parameter's RawTensor). Parameters
	// absent from the map are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears the stored gradient of every parameter.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR changes the learning rate, for manual scheduling.
	SetLR(lr float32)
}

// getGradient looks up the gradient computed for a parameter, or nil
// when the parameter took no part in the recorded forward pass.
func getGradient[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
