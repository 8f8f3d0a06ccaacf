package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// SubOp records c = a - b.
//
// The minuend receives the output gradient unchanged; the subtrahend
// receives its negation. Both are reduced over broadcast dimensions.
type SubOp struct {
	a, b   *tensor.RawTensor
	output *tensor.RawTensor
}

// NewSubOp creates a SubOp.
func NewSubOp(a, b, output *tensor.RawTensor) *SubOp {
	return &SubOp{a: a, b: b, output: output}
}

// Backward returns [dL/da, dL/db] = [grad, -grad].
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.a.Shape(), backend),
		reduceBroadcast(negate(outputGrad, backend), op.b.Shape(), backend),
	}
}

// Inputs returns [a, b].
func (op *SubOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.a, op.b}
}

// Output returns a - b.
func (op *SubOp) Output() *tensor.RawTensor {
	return op.output
}
