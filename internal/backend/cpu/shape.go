package cpu

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Reshape copies the elements into a tensor with a new shape. The element
// count must match.
//
// TODO: return a shared-storage view via a reshaped header instead of
// copying; blocked on lesson code writing through Data() of reshaped
// tensors.
func (c *CPUBackend) Reshape(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if t.NumElements() != shape.NumElements() {
		panic(fmt.Sprintf("cpu: cannot reshape %v (%d elements) to %v (%d elements)",
			[]int(t.Shape()), t.NumElements(), []int(shape), shape.NumElements()))
	}
	out := newRaw(shape, t.DType(), c.Device())
	copy(out.Bytes(), t.Bytes())
	return out
}

// Transpose permutes dimensions. Empty axes reverses them, so
// Transpose(t) is the ordinary matrix transpose for 2-d input. A 2-d swap
// takes a cache-friendlier fast path; higher ranks fall back to a stride
// walk.
func (c *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	perm := resolveAxes(axes, len(shape))

	outShape := make(tensor.Shape, len(shape))
	for k, ax := range perm {
		outShape[k] = shape[ax]
	}
	out := newRaw(outShape, t.DType(), c.Device())

	if len(shape) == 2 && perm[0] == 1 {
		switch t.DType() {
		case tensor.Float32:
			transpose2D(out.AsFloat32(), t.AsFloat32(), shape[0], shape[1])
		case tensor.Float64:
			transpose2D(out.AsFloat64(), t.AsFloat64(), shape[0], shape[1])
		}
		return out
	}

	switch t.DType() {
	case tensor.Float32:
		transposeND(out.AsFloat32(), t.AsFloat32(), shape, outShape, perm)
	case tensor.Float64:
		transposeND(out.AsFloat64(), t.AsFloat64(), shape, outShape, perm)
	}
	return out
}

func transpose2D[T tensor.DType](dst, src []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		row := src[i*cols : (i+1)*cols]
		for j, v := range row {
			dst[j*rows+i] = v
		}
	}
}

func transposeND[T tensor.DType](dst, src []T, inShape, outShape tensor.Shape, perm []int) {
	inStrides := tensor.ComputeStrides(inShape)
	outStrides := tensor.ComputeStrides(outShape)

	// Input stride of the dimension each output coordinate indexes.
	srcStrides := make([]int, len(perm))
	for k, ax := range perm {
		srcStrides[k] = inStrides[ax]
	}

	for i := range dst {
		dst[i] = src[sourceIndex(i, outStrides, srcStrides)]
	}
}

// resolveAxes validates a permutation, or builds the reversing one when
// axes is empty.
func resolveAxes(axes []int, ndim int) []int {
	if len(axes) == 0 {
		perm := make([]int, ndim)
		for i := range perm {
			perm[i] = ndim - 1 - i
		}
		return perm
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("cpu: transpose axes %v do not permute %d dimensions", axes, ndim))
	}
	seen := make([]bool, ndim)
	perm := make([]int, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			panic(fmt.Sprintf("cpu: invalid transpose axes %v", axes))
		}
		seen[ax] = true
		perm[i] = ax
	}
	return perm
}
