package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// MeanDimOp records y = mean(x) along a single dimension.
type MeanDimOp struct {
	input   *tensor.RawTensor
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewMeanDimOp creates a MeanDimOp. Negative dims are resolved against
// the input rank.
func NewMeanDimOp(input, output *tensor.RawTensor, dim int, keepDim bool) *MeanDimOp {
	if dim < 0 {
		dim += len(input.Shape())
	}
	return &MeanDimOp{input: input, output: output, dim: dim, keepDim: keepDim}
}

// Backward returns [dL/dx] = [grad/dimSize repeated along the reduced
// dimension].
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	dimSize := float64(op.input.Shape()[op.dim])
	grad := backend.DivScalar(outputGrad, dimSize)
	if !op.keepDim {
		grad = backend.Reshape(grad, unsqueeze(op.output.Shape(), op.dim))
	}
	return []*tensor.RawTensor{expand(grad, op.input.Shape(), backend)}
}

// Inputs returns [x].
func (op *MeanDimOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the reduced tensor.
func (op *MeanDimOp) Output() *tensor.RawTensor {
	return op.output
}
