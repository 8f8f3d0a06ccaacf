package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// SumDimOp records y = Σx along a single dimension.
type SumDimOp struct {
	input   *tensor.RawTensor
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewSumDimOp creates a SumDimOp. Negative dims are resolved against the
// input rank so Backward never has to.
func NewSumDimOp(input, output *tensor.RawTensor, dim int, keepDim bool) *SumDimOp {
	if dim < 0 {
		dim += len(input.Shape())
	}
	return &SumDimOp{input: input, output: output, dim: dim, keepDim: keepDim}
}

// Backward returns [dL/dx]: the gradient repeats along the reduced
// dimension. Without keepDim the reduced axis is first restored as a
// size-1 dimension so the broadcast lines up.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := outputGrad
	if !op.keepDim {
		grad = backend.Reshape(grad, unsqueeze(op.output.Shape(), op.dim))
	}
	return []*tensor.RawTensor{expand(grad, op.input.Shape(), backend)}
}

// Inputs returns [x].
func (op *SumDimOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the reduced tensor.
func (op *SumDimOp) Output() *tensor.RawTensor {
	return op.output
}
