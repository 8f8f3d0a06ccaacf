package nn

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// MSELoss computes mean squared error, loss = mean((pred - target)²).
//
// The loss is composed entirely from backend operations, so on an
// autodiff backend the whole reduction lands on the tape and gradients
// flow from the scalar loss back to every parameter.
type MSELoss[B tensor.Backend] struct {
	backend B
}

// NewMSELoss creates an MSE loss.
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] {
	return &MSELoss[B]{backend: backend}
}

// Forward returns the 0-d mean of the squared residuals. Predictions
// and targets must have identical shapes; reshape targets to
// [batch, 1] before calling when they come in flat.
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic(fmt.Sprintf("nn: MSELoss shapes differ: predictions %v, targets %v",
			[]int(predictions.Shape()), []int(targets.Shape())))
	}
	diff := predictions.Sub(targets)
	return diff.Mul(diff).Mean()
}

// Parameters returns nil; losses have nothing to train.
func (m *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}

// SquaredLoss returns the element-wise squared error halves,
// (pred - target)²/2, without reducing. The from-scratch lesson uses it
// the way the notebooks do: compute per-example losses, then reduce and
// backpropagate explicitly.
func SquaredLoss[T tensor.DType, B tensor.Backend](predictions, targets *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic(fmt.Sprintf("nn: SquaredLoss shapes differ: predictions %v, targets %v",
			[]int(predictions.Shape()), []int(targets.Shape())))
	}
	diff := predictions.Sub(targets)
	return diff.Mul(diff).DivScalar(2)
}
