// Package ops defines the recorded operations and their backward rules for
// reverse-mode automatic differentiation.
//
// Every operation the backend can perform has a matching Operation here
// that remembers its input and output RawTensors. During the backward pass
// the tape hands each operation the gradient of its output and receives
// the gradients of its inputs, applying the chain rule one recorded step
// at a time.
package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// Operation is one recorded step of the forward computation.
//
// Backward computes input gradients from the output gradient. A nil entry
// in the returned slice means no gradient flows to that input. Backward
// runs with tape recording disabled, so implementations are free to use
// the backend for their own arithmetic.
type Operation interface {
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor
	Inputs() []*tensor.RawTensor
	Output() *tensor.RawTensor
}
