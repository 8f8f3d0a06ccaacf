package ops

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Shared backward-pass helpers. Broadcasting in the forward direction
// fans one element out to many positions; the matching backward step sums
// the incoming gradient back down to the operand's shape.

// reduceBroadcast reduces grad to targetShape by summing the dimensions
// broadcasting expanded. When no reduction is needed the gradient is
// returned as a fresh header so callers never alias tape-owned tensors.
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad.Clone()
	}

	// Scalar target: everything collapses.
	if len(targetShape) == 0 {
		return backend.Sum(grad)
	}

	// Drop the leading dimensions broadcasting prepended.
	out := grad
	for len(out.Shape()) > len(targetShape) {
		out = backend.SumDim(out, 0, false)
	}

	// Collapse dimensions the target holds as size 1.
	for i, want := range targetShape {
		if want == 1 && out.Shape()[i] != 1 {
			out = backend.SumDim(out, i, true)
		}
	}

	if !out.Shape().Equal(targetShape) {
		panic(fmt.Sprintf("ops: gradient shape %v cannot reduce to %v",
			[]int(grad.Shape()), []int(targetShape)))
	}
	return out
}

// negate returns -t as zeros - t.
func negate(t *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	zeros, err := tensor.NewRaw(t.Shape(), t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("ops: %v", err))
	}
	return backend.Sub(zeros, t)
}

// expand broadcasts grad up to targetShape, the forward direction of
// broadcasting applied to a gradient: used by the reduction backwards,
// where every input position receives the (possibly scaled) output
// gradient.
func expand(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(targetShape) {
		return grad.Clone()
	}
	zeros, err := tensor.NewRaw(targetShape, grad.DType(), grad.Device())
	if err != nil {
		panic(fmt.Sprintf("ops: %v", err))
	}
	return backend.Add(zeros, grad)
}

// unsqueeze inserts a size-1 dimension at position dim.
func unsqueeze(shape tensor.Shape, dim int) tensor.Shape {
	out := make(tensor.Shape, 0, len(shape)+1)
	out = append(out, shape[:dim]...)
	out = append(out, 1)
	out = append(out, shape[dim:]...)
	return out
}
