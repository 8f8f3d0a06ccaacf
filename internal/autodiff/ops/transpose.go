package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// TransposeOp records y = transpose(x, axes).
type TransposeOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	axes   []int
}

// NewTransposeOp creates a TransposeOp. An empty axes list means the
// default full reversal; negative axes are resolved against the input
// rank. The stored permutation is always explicit so Backward can
// invert it.
func NewTransposeOp(input, output *tensor.RawTensor, axes ...int) *TransposeOp {
	ndim := len(input.Shape())
	resolved := make([]int, ndim)
	if len(axes) == 0 {
		for i := range resolved {
			resolved[i] = ndim - 1 - i
		}
	} else {
		for i, ax := range axes {
			if ax < 0 {
				ax += ndim
			}
			resolved[i] = ax
		}
	}
	return &TransposeOp{input: input, output: output, axes: resolved}
}

// Backward returns [dL/dx]: transposing by the inverse permutation puts
// each gradient element back where its input element came from.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, ax := range op.axes {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}

// Inputs returns [x].
func (op *TransposeOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the transposed tensor.
func (op *TransposeOp) Output() *tensor.RawTensor {
	return op.output
}
