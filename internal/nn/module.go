// Package nn provides the neural network building blocks the lessons
// train with:
//   - Module: the interface every layer and container implements
//   - Parameter: a named, trainable tensor
//   - Linear: a fully connected layer (y = x @ Wᵀ + b)
//   - Sequential: chains modules into a model
//   - MSELoss, SquaredLoss: regression losses built from recorded ops
//
// Modules are generic over the backend so the same layer code runs on a
// plain compute backend or an autodiff-decorated one. Training requires
// the latter: gradients only exist where a tape recorded the forward
// pass.
package nn

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Module is the interface shared by all network components.
type Module[B tensor.Backend] interface {
	// Forward computes the module output for an input batch.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns the trainable parameters, including those of
	// nested modules. Parameter-free modules return an empty slice.
	Parameters() []*Parameter[B]

	// StateDict returns parameter names mapped to their raw tensors,
	// for saving learned values.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict copies saved values back into the parameters.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}
