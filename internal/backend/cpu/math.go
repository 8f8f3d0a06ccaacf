package cpu

import (
	"fmt"
	"math"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Exp returns e**t element-wise.
func (c *CPUBackend) Exp(t *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw(t.Shape(), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		expSlice(out.AsFloat32(), t.AsFloat32())
	case tensor.Float64:
		expSlice(out.AsFloat64(), t.AsFloat64())
	}
	return out
}

// Log returns the natural logarithm element-wise. The domain is enforced:
// a non-positive element is a bug in the calling lesson, not a value to
// silently turn into NaN.
func (c *CPUBackend) Log(t *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw(t.Shape(), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		logSlice(out.AsFloat32(), t.AsFloat32())
	case tensor.Float64:
		logSlice(out.AsFloat64(), t.AsFloat64())
	}
	return out
}

// Sqrt returns the square root element-wise, panicking on negative input.
func (c *CPUBackend) Sqrt(t *tensor.RawTensor) *tensor.RawTensor {
	out := newRaw(t.Shape(), t.DType(), c.Device())
	switch t.DType() {
	case tensor.Float32:
		sqrtSlice(out.AsFloat32(), t.AsFloat32())
	case tensor.Float64:
		sqrtSlice(out.AsFloat64(), t.AsFloat64())
	}
	return out
}

func expSlice[T tensor.DType](dst, src []T) {
	for i, v := range src {
		dst[i] = T(math.Exp(float64(v)))
	}
}

func logSlice[T tensor.DType](dst, src []T) {
	for i, v := range src {
		f := float64(v)
		if f <= 0 {
			panic(fmt.Sprintf("cpu: log of non-positive value %v at index %d", f, i))
		}
		dst[i] = T(math.Log(f))
	}
}

func sqrtSlice[T tensor.DType](dst, src []T) {
	for i, v := range src {
		f := float64(v)
		if f < 0 {
			panic(fmt.Sprintf("cpu: sqrt of negative value %v at index %d", f, i))
		}
		dst[i] = T(math.Sqrt(f))
	}
}
