package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// SumOp records y = Σx over all elements, producing a 0-d scalar.
type SumOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSumOp creates a SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{input: input, output: output}
}

// Backward returns [dL/dx]: every element contributes with weight 1, so
// the scalar gradient broadcasts unchanged to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{expand(outputGrad, op.input.Shape(), backend)}
}

// Inputs returns [x].
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns Σx.
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}
