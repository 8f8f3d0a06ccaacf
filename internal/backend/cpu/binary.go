package cpu

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// The binary operations share one shape: resolve broadcasting, then pick
// the cheapest execution path. Same-shape inputs with an unshared buffer
// are updated in place; same-shape shared inputs get a flat vectorizable
// loop; mismatched shapes fall back to a stride walk.

// Add performs element-wise addition with broadcasting.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, broadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("cpu: add: %v", err))
	}
	checkSameDType("add", a, b)

	if !broadcast {
		if a.IsUnique() {
			switch a.DType() {
			case tensor.Float32:
				addInplace(a.AsFloat32(), b.AsFloat32())
			case tensor.Float64:
				addInplace(a.AsFloat64(), b.AsFloat64())
			}
			return a
		}
		out := newRaw(outShape, a.DType(), c.Device())
		switch a.DType() {
		case tensor.Float32:
			addTo(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			addTo(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		}
		return out
	}

	out := newRaw(outShape, a.DType(), c.Device())
	switch a.DType() {
	case tensor.Float32:
		addBroadcast(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		addBroadcast(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	}
	return out
}

// Sub performs element-wise subtraction with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, broadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("cpu: sub: %v", err))
	}
	checkSameDType("sub", a, b)

	if !broadcast {
		if a.IsUnique() {
			switch a.DType() {
			case tensor.Float32:
				subInplace(a.AsFloat32(), b.AsFloat32())
			case tensor.Float64:
				subInplace(a.AsFloat64(), b.AsFloat64())
			}
			return a
		}
		out := newRaw(outShape, a.DType(), c.Device())
		switch a.DType() {
		case tensor.Float32:
			subTo(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			subTo(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		}
		return out
	}

	out := newRaw(outShape, a.DType(), c.Device())
	switch a.DType() {
	case tensor.Float32:
		subBroadcast(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		subBroadcast(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	}
	return out
}

// Mul performs element-wise multiplication with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, broadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("cpu: mul: %v", err))
	}
	checkSameDType("mul", a, b)

	if !broadcast {
		if a.IsUnique() {
			switch a.DType() {
			case tensor.Float32:
				mulInplace(a.AsFloat32(), b.AsFloat32())
			case tensor.Float64:
				mulInplace(a.AsFloat64(), b.AsFloat64())
			}
			return a
		}
		out := newRaw(outShape, a.DType(), c.Device())
		switch a.DType() {
		case tensor.Float32:
			mulTo(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			mulTo(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		}
		return out
	}

	out := newRaw(outShape, a.DType(), c.Device())
	switch a.DType() {
	case tensor.Float32:
		mulBroadcast(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		mulBroadcast(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	}
	return out
}

// Div performs element-wise division with broadcasting. Division follows
// IEEE semantics: x/0 is ±Inf and 0/0 is NaN.
func (c *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, broadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("cpu: div: %v", err))
	}
	checkSameDType("div", a, b)

	if !broadcast {
		if a.IsUnique() {
			switch a.DType() {
			case tensor.Float32:
				divInplace(a.AsFloat32(), b.AsFloat32())
			case tensor.Float64:
				divInplace(a.AsFloat64(), b.AsFloat64())
			}
			return a
		}
		out := newRaw(outShape, a.DType(), c.Device())
		switch a.DType() {
		case tensor.Float32:
			divTo(out.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		case tensor.Float64:
			divTo(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		}
		return out
	}

	out := newRaw(outShape, a.DType(), c.Device())
	switch a.DType() {
	case tensor.Float32:
		divBroadcast(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		divBroadcast(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
	}
	return out
}
