package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a slow, obviously-correct backend used by tests in this
// package and as a reference for real backends. Every operation routes
// through float64 and plain index arithmetic; nothing is done in place.
type MockBackend struct{}

// NewMockBackend creates a MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string { return "mock" }

// Device returns the device type.
func (m *MockBackend) Device() Device { return CPU }

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar adds a host scalar to every element.
func (m *MockBackend) AddScalar(t *RawTensor, s float64) *RawTensor {
	return m.mapWise(t, func(x float64) float64 { return x + s })
}

// SubScalar subtracts a host scalar from every element.
func (m *MockBackend) SubScalar(t *RawTensor, s float64) *RawTensor {
	return m.mapWise(t, func(x float64) float64 { return x - s })
}

// MulScalar multiplies every element by a host scalar.
func (m *MockBackend) MulScalar(t *RawTensor, s float64) *RawTensor {
	return m.mapWise(t, func(x float64) float64 { return x * s })
}

// DivScalar divides every element by a host scalar.
func (m *MockBackend) DivScalar(t *RawTensor, s float64) *RawTensor {
	return m.mapWise(t, func(x float64) float64 { return x / s })
}

// Exp applies e**x element-wise.
func (m *MockBackend) Exp(t *RawTensor) *RawTensor {
	return m.mapWise(t, math.Exp)
}

// Log applies the natural logarithm element-wise.
func (m *MockBackend) Log(t *RawTensor) *RawTensor {
	return m.mapWise(t, math.Log)
}

// Sqrt applies the square root element-wise.
func (m *MockBackend) Sqrt(t *RawTensor) *RawTensor {
	return m.mapWise(t, math.Sqrt)
}

// MatMul multiplies two 2-d tensors with the textbook triple loop.
func (m *MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	as, bs := a.Shape(), b.Shape()
	if len(as) != 2 || len(bs) != 2 || as[1] != bs[0] {
		panic(fmt.Sprintf("mock: cannot matmul %v x %v", []int(as), []int(bs)))
	}
	rows, inner, cols := as[0], as[1], bs[1]

	out := m.newLike(Shape{rows, cols}, a)
	av, bv, ov := m.read(a), m.read(b), m.read(out)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var acc float64
			for k := 0; k < inner; k++ {
				acc += av[i*inner+k] * bv[k*cols+j]
			}
			ov[i*cols+j] = acc
		}
	}
	m.write(out, ov)
	return out
}

// Sum reduces every element to a 0-d scalar.
func (m *MockBackend) Sum(t *RawTensor) *RawTensor {
	out := m.newLike(Shape{}, t)
	var acc float64
	for _, v := range m.read(t) {
		acc += v
	}
	m.write(out, []float64{acc})
	return out
}

// Mean reduces every element to their 0-d scalar mean.
func (m *MockBackend) Mean(t *RawTensor) *RawTensor {
	out := m.Sum(t)
	v := m.read(out)
	v[0] /= float64(t.NumElements())
	m.write(out, v)
	return out
}

// SumDim sums along one dimension.
func (m *MockBackend) SumDim(t *RawTensor, dim int, keepDim bool) *RawTensor {
	dim = normalizeDim(dim, len(t.Shape()))
	outShape := reducedShape(t.Shape(), dim, keepDim)

	out := m.newLike(outShape, t)
	in := m.read(t)
	acc := make([]float64, outShape.NumElements())

	inShape := t.Shape()
	inStrides := ComputeStrides(inShape)
	for flat := range in {
		idx := unflattenIndex(flat, inShape, inStrides)
		outIdx := make([]int, 0, len(outShape))
		for d, v := range idx {
			switch {
			case d == dim && keepDim:
				outIdx = append(outIdx, 0)
			case d == dim:
				// dropped
			default:
				outIdx = append(outIdx, v)
			}
		}
		acc[flattenIndex(outIdx, ComputeStrides(outShape))] += in[flat]
	}
	m.write(out, acc)
	return out
}

// MeanDim averages along one dimension.
func (m *MockBackend) MeanDim(t *RawTensor, dim int, keepDim bool) *RawTensor {
	d := normalizeDim(dim, len(t.Shape()))
	out := m.SumDim(t, dim, keepDim)
	v := m.read(out)
	n := float64(t.Shape()[d])
	for i := range v {
		v[i] /= n
	}
	m.write(out, v)
	return out
}

// Reshape copies the elements into a new shape.
func (m *MockBackend) Reshape(t *RawTensor, shape Shape) *RawTensor {
	if t.NumElements() != shape.NumElements() {
		panic(fmt.Sprintf("mock: cannot reshape %v (%d elements) to %v (%d elements)",
			[]int(t.Shape()), t.NumElements(), []int(shape), shape.NumElements()))
	}
	out := m.newLike(shape, t)
	m.write(out, m.read(t))
	return out
}

// Transpose permutes dimensions; empty axes reverses them.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	shape := t.Shape()
	perm := normalizeAxes(axes, len(shape))

	outShape := make(Shape, len(shape))
	for k, ax := range perm {
		outShape[k] = shape[ax]
	}

	out := m.newLike(outShape, t)
	in := m.read(t)
	ov := m.read(out)

	inStrides := ComputeStrides(shape)
	outStrides := ComputeStrides(outShape)
	for flat := range ov {
		outIdx := unflattenIndex(flat, outShape, outStrides)
		inIdx := make([]int, len(shape))
		for k, ax := range perm {
			inIdx[ax] = outIdx[k]
		}
		ov[flat] = in[flattenIndex(inIdx, inStrides)]
	}
	m.write(out, ov)
	return out
}

func (m *MockBackend) newLike(shape Shape, src *RawTensor) *RawTensor {
	out, err := NewRaw(shape, src.DType(), m.Device())
	if err != nil {
		panic(fmt.Sprintf("mock: %v", err))
	}
	return out
}

func (m *MockBackend) elementWise(a, b *RawTensor, op func(x, y float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("mock: %v", err))
	}

	out := m.newLike(outShape, a)
	av, bv := m.read(a), m.read(b)
	ov := m.read(out)

	outStrides := ComputeStrides(outShape)
	for flat := range ov {
		idx := unflattenIndex(flat, outShape, outStrides)
		ov[flat] = op(av[broadcastFlatIndex(idx, a.Shape())], bv[broadcastFlatIndex(idx, b.Shape())])
	}
	m.write(out, ov)
	return out
}

func (m *MockBackend) mapWise(t *RawTensor, op func(float64) float64) *RawTensor {
	out := m.newLike(t.Shape(), t)
	v := m.read(t)
	for i := range v {
		v[i] = op(v[i])
	}
	m.write(out, v)
	return out
}

// read copies a tensor's elements into a fresh []float64.
func (m *MockBackend) read(t *RawTensor) []float64 {
	out := make([]float64, t.NumElements())
	switch t.DType() {
	case Float32:
		for i, v := range t.AsFloat32() {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, t.AsFloat64())
	default:
		panic(fmt.Sprintf("mock: unsupported dtype %s", t.DType()))
	}
	return out
}

// write stores float64 values back into a tensor's buffer.
func (m *MockBackend) write(t *RawTensor, values []float64) {
	switch t.DType() {
	case Float32:
		data := t.AsFloat32()
		for i, v := range values {
			data[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), values)
	default:
		panic(fmt.Sprintf("mock: unsupported dtype %s", t.DType()))
	}
}

// normalizeDim resolves a possibly negative dimension index.
func normalizeDim(dim, ndim int) int {
	d := dim
	if d < 0 {
		d += ndim
	}
	if d < 0 || d >= ndim {
		panic(fmt.Sprintf("tensor: dimension %d out of range for %d-d tensor", dim, ndim))
	}
	return d
}

// normalizeAxes validates a permutation, or builds the reversing one if
// axes is empty.
func normalizeAxes(axes []int, ndim int) []int {
	if len(axes) == 0 {
		perm := make([]int, ndim)
		for i := range perm {
			perm[i] = ndim - 1 - i
		}
		return perm
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("tensor: transpose axes %v do not permute %d dimensions", axes, ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim || seen[ax] {
			panic(fmt.Sprintf("tensor: invalid transpose axes %v", axes))
		}
		seen[ax] = true
	}
	perm := make([]int, ndim)
	copy(perm, axes)
	return perm
}

// reducedShape is the shape after reducing dim.
func reducedShape(shape Shape, dim int, keepDim bool) Shape {
	out := make(Shape, 0, len(shape))
	for d, v := range shape {
		switch {
		case d == dim && keepDim:
			out = append(out, 1)
		case d == dim:
			// dropped
		default:
			out = append(out, v)
		}
	}
	return out
}

// unflattenIndex converts a flat offset to a multi-dimensional index.
func unflattenIndex(flat int, shape Shape, strides []int) []int {
	idx := make([]int, len(shape))
	for d := range shape {
		idx[d] = flat / strides[d]
		flat %= strides[d]
	}
	return idx
}

// flattenIndex converts a multi-dimensional index to a flat offset.
func flattenIndex(idx []int, strides []int) int {
	flat := 0
	for d, v := range idx {
		flat += v * strides[d]
	}
	return flat
}

// broadcastFlatIndex maps an output index to the flat offset in an operand
// that may have fewer or size-1 dimensions.
func broadcastFlatIndex(outIdx []int, shape Shape) int {
	strides := ComputeStrides(shape)
	flat := 0
	offset := len(outIdx) - len(shape)
	for d := range shape {
		v := outIdx[offset+d]
		if shape[d] == 1 {
			v = 0
		}
		flat += v * strides[d]
	}
	return flat
}
