package cpu

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// Scalar operations convert the host float64 to the tensor dtype once,
// outside the loop.

// AddScalar returns t + s element-wise.
func (c *CPUBackend) AddScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	out := newRaw(t.Shape(), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		scalarAdd(out.AsFloat32(), t.AsFloat32(), float32(s))
	case tensor.Float64:
		scalarAdd(out.AsFloat64(), t.AsFloat64(), s)
	}
	return out
}

// SubScalar returns t - s element-wise.
func (c *CPUBackend) SubScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	out := newRaw(t.Shape(), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		scalarAdd(out.AsFloat32(), t.AsFloat32(), float32(-s))
	case tensor.Float64:
		scalarAdd(out.AsFloat64(), t.AsFloat64(), -s)
	}
	return out
}

// MulScalar returns t * s element-wise.
func (c *CPUBackend) MulScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	out := newRaw(t.Shape(), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		scalarMul(out.AsFloat32(), t.AsFloat32(), float32(s))
	case tensor.Float64:
		scalarMul(out.AsFloat64(), t.AsFloat64(), s)
	}
	return out
}

// DivScalar returns t / s element-wise, with IEEE semantics for s == 0.
func (c *CPUBackend) DivScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	out := newRaw(t.Shape(), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		scalarDiv(out.AsFloat32(), t.AsFloat32(), float32(s))
	case tensor.Float64:
		scalarDiv(out.AsFloat64(), t.AsFloat64(), s)
	}
	return out
}

func scalarAdd[T tensor.DType](dst, src []T, s T) {
	for i := range src {
		dst[i] = src[i] + s
	}
}

func scalarMul[T tensor.DType](dst, src []T, s T) {
	for i := range src {
		dst[i] = src[i] * s
	}
}

func scalarDiv[T tensor.DType](dst, src []T, s T) {
	for i := range src {
		dst[i] = src[i] / s
	}
}
