package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// MeanOp records y = (Σx)/n over all elements, producing a 0-d scalar.
type MeanOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// NewMeanOp creates a MeanOp.
func NewMeanOp(input, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{input: input, output: output}
}

// Backward returns [dL/dx] = [grad/n broadcast to the input shape].
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	n := float64(op.input.NumElements())
	scaled := backend.DivScalar(outputGrad, n)
	return []*tensor.RawTensor{expand(scaled, op.input.Shape(), backend)}
}

// Inputs returns [x].
func (op *MeanOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns (Σx)/n.
func (op *MeanOp) Output() *tensor.RawTensor {
	return op.output
}
