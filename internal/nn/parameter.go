package nn

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Parameter is a named, trainable tensor. Layers hold their weights and
// biases as Parameters so optimizers can find them, pair them with
// gradients from the tape, and update them in place.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B]
}

// NewParameter wraps an initialized tensor as a trainable parameter.
// The gradient stays nil until a backward pass fills it in.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter name, e.g. "weight".
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the last computed gradient, or nil before any backward
// pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad stores a gradient for this parameter.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the stored gradient. Call it before each training
// step so stale gradients never leak into the next update.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
