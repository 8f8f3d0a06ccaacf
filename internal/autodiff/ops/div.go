package ops

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// DivOp records c = a / b (element-wise).
//
// d(a/b)/da = 1/b and d(a/b)/db = -a/b², applying the quotient rule to
// each element.
type DivOp struct {
	a, b   *tensor.RawTensor
	output *tensor.RawTensor
}

// NewDivOp creates a DivOp.
func NewDivOp(a, b, output *tensor.RawTensor) *DivOp {
	return &DivOp{a: a, b: b, output: output}
}

// Backward returns [dL/da, dL/db] = [grad/b, -(grad*a)/b²].
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradA := backend.Div(outputGrad, op.b)

	bSquared := backend.Mul(op.b, op.b)
	gradB := negate(backend.Div(backend.Mul(outputGrad, op.a), bSquared), backend)

	return []*tensor.RawTensor{
		reduceBroadcast(gradA, op.a.Shape(), backend),
		reduceBroadcast(gradB, op.b.Shape(), backend),
	}
}

// Inputs returns [a, b].
func (op *DivOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.a, op.b}
}

// Output returns a / b.
func (op *DivOp) Output() *tensor.RawTensor {
	return op.output
}
