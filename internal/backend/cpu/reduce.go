package cpu

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Sum reduces every element to a 0-d scalar. Accumulation runs in float64
// regardless of dtype so long float32 sums keep their low bits.
func (c *CPUBackend) Sum(t *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw(tensor.Shape{}, t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		out.AsFloat32()[0] = float32(sumSlice(t.AsFloat32()))
	case tensor.Float64:
		out.AsFloat64()[0] = sumSlice(t.AsFloat64())
	}
	return out
}

// Mean reduces every element to their 0-d scalar mean.
func (c *CPUBackend) Mean(t *tensor.RawTensor) *tensor.RawTensor {
	n := float64(t.NumElements())
	out := newRaw(tensor.Shape{}, t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		out.AsFloat32()[0] = float32(sumSlice(t.AsFloat32()) / n)
	case tensor.Float64:
		out.AsFloat64()[0] = sumSlice(t.AsFloat64()) / n
	}
	return out
}

// SumDim sums along one dimension. Negative dim counts from the end;
// keepDim retains the reduced dimension as size 1.
func (c *CPUBackend) SumDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := t.Shape()
	d := resolveDim("sumdim", dim, len(shape))

	// Row-major layout factors the tensor into outer x dim x inner blocks
	// around the reduced dimension; both source and destination are walked
	// contiguously.
	outer, inner := 1, 1
	for i := 0; i < d; i++ {
		outer *= shape[i]
	}
	for i := d + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	dimSize := shape[d]

	out := newRaw(reducedShape(shape, d, keepDim), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		sumDimSlice(out.AsFloat32(), t.AsFloat32(), outer, dimSize, inner)
	case tensor.Float64:
		sumDimSlice(out.AsFloat64(), t.AsFloat64(), outer, dimSize, inner)
	}
	return out
}

// MeanDim averages along one dimension; see SumDim for dim semantics.
func (c *CPUBackend) MeanDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	d := resolveDim("meandim", dim, len(t.Shape()))
	n := float64(t.Shape()[d])

	out := c.SumDim(t, d, keepDim)
	switch out.DType() {
	case tensor.Float32:
		data := out.AsFloat32()
		inv := float32(1 / n)
		for i := range data {
			data[i] *= inv
		}
	case tensor.Float64:
		data := out.AsFloat64()
		for i := range data {
			data[i] /= n
		}
	}
	return out
}

func sumSlice[T tensor.DType](src []T) float64 {
	var acc float64
	for _, v := range src {
		acc += float64(v)
	}
	return acc
}

func sumDimSlice[T tensor.DType](dst, src []T, outer, dimSize, inner int) {
	for o := 0; o < outer; o++ {
		outBase := o * inner
		for j := 0; j < dimSize; j++ {
			srcBase := (o*dimSize + j) * inner
			for k := 0; k < inner; k++ {
				dst[outBase+k] += src[srcBase+k]
			}
		}
	}
}

// reducedShape drops or keeps the reduced dimension.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	out := make(tensor.Shape, 0, len(shape))
	for i, v := range shape {
		switch {
		case i == dim && keepDim:
			out = append(out, 1)
		case i == dim:
			// dropped
		default:
			out = append(out, v)
		}
	}
	return out
}

// resolveDim normalizes a possibly negative dimension index.
func resolveDim(op string, dim, ndim int) int {
	d := dim
	if d < 0 {
		d += ndim
	}
	if d < 0 || d >= ndim {
		panic(fmt.Sprintf("cpu: %s: dimension %d out of range for %d-d tensor", op, dim, ndim))
	}
	return d
}
