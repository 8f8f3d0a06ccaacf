package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// SqrtOp records y = √x.
//
// d(√x)/dx = 1/(2√x), expressed through the saved output as 0.5/y.
type SqrtOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSqrtOp creates a SqrtOp.
func NewSqrtOp(input, output *tensor.RawTensor) *SqrtOp {
	return &SqrtOp{input: input, output: output}
}

// Backward returns [dL/dx] = [0.5 * grad / √x].
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	half := backend.MulScalar(outputGrad, 0.5)
	return []*tensor.RawTensor{backend.Div(half, op.output)}
}

// Inputs returns [x].
func (op *SqrtOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns √x.
func (op *SqrtOp) Output() *tensor.RawTensor {
	return op.output
}
