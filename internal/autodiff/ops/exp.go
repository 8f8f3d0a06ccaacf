package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// ExpOp records y = exp(x).
//
// The derivative of exp is exp itself, so the backward pass reuses the
// saved output instead of recomputing it.
type ExpOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewExpOp creates an ExpOp.
func NewExpOp(input, output *tensor.RawTensor) *ExpOp {
	return &ExpOp{input: input, output: output}
}

// Backward returns [dL/dx] = [grad * exp(x)].
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.output)}
}

// Inputs returns [x].
func (op *ExpOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns exp(x).
func (op *ExpOp) Output() *tensor.RawTensor {
	return op.output
}
