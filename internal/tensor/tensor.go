package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Tensor is a typed n-dimensional array bound to a backend.
//
// T fixes the element type at compile time, B the backend; mixing tensors
// from different backends is a type error rather than a runtime surprise.
// The zero value is not usable: construct tensors with New, FromSlice or
// the creation helpers.
type Tensor[T DType, B Backend] struct {
	raw          *RawTensor
	backend      B
	grad         *Tensor[T, B]
	requiresGrad bool
}

// New wraps an existing RawTensor. Panics if the raw dtype does not match T.
func New[T DType, B Backend](raw *RawTensor, backend B) *Tensor[T, B] {
	if dt := dataTypeOf[T](); raw.DType() != dt {
		panic(fmt.Sprintf("tensor: cannot wrap %s raw tensor as Tensor[%s]", raw.DType(), dt))
	}
	return &Tensor[T, B]{raw: raw, backend: backend}
}

// FromSlice builds a tensor from a flat slice in row-major order.
// The slice length must equal the shape's element count; the data is copied.
func FromSlice[T DType, B Backend](data []T, shape Shape, backend B) (*Tensor[T, B], error) {
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("tensor: %d elements do not fit shape %v (%d)",
			len(data), []int(shape), shape.NumElements())
	}
	raw, err := NewRaw(shape, dataTypeOf[T](), backend.Device())
	if err != nil {
		return nil, err
	}
	copy(typedView[T](raw), data)
	return &Tensor[T, B]{raw: raw, backend: backend}, nil
}

// FromSlice2D builds a [rows, cols] tensor from a slice of equal-length
// rows.
func FromSlice2D[T DType, B Backend](rows [][]T, backend B) (*Tensor[T, B], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tensor: FromSlice2D requires at least one row and one column")
	}
	cols := len(rows[0])
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("tensor: ragged rows: row 0 has %d columns, row %d has %d", cols, i, len(row))
		}
		flat = append(flat, row...)
	}
	return FromSlice(flat, Shape{len(rows), cols}, backend)
}

// typedView returns the raw buffer as a []T.
func typedView[T DType](raw *RawTensor) []T {
	switch dataTypeOf[T]() {
	case Float32:
		return any(raw.AsFloat32()).([]T)
	case Float64:
		return any(raw.AsFloat64()).([]T)
	default:
		panic("tensor: unreachable dtype")
	}
}

// Shape returns the tensor shape. Treat as read-only.
func (t *Tensor[T, B]) Shape() Shape { return t.raw.Shape() }

// DType returns the runtime element type.
func (t *Tensor[T, B]) DType() DataType { return t.raw.DType() }

// Device reports where the data lives.
func (t *Tensor[T, B]) Device() Device { return t.raw.Device() }

// NumElements returns the element count.
func (t *Tensor[T, B]) NumElements() int { return t.raw.NumElements() }

// Raw exposes the untyped representation. The autodiff tape and the
// optimizers address tensors by this pointer.
func (t *Tensor[T, B]) Raw() *RawTensor { return t.raw }

// Backend returns the backend this tensor is bound to.
func (t *Tensor[T, B]) Backend() B { return t.backend }

// RequireGrad marks the tensor as a differentiation target and returns it.
// The flag is documentation for the reader; recording is controlled by the
// gradient tape, which tracks every operation while switched on.
func (t *Tensor[T, B]) RequireGrad() *Tensor[T, B] {
	t.requiresGrad = true
	return t
}

// RequiresGrad reports whether RequireGrad was called.
func (t *Tensor[T, B]) RequiresGrad() bool { return t.requiresGrad }

// Grad returns the gradient attached by a backward pass, or nil.
func (t *Tensor[T, B]) Grad() *Tensor[T, B] { return t.grad }

// SetGrad attaches a gradient tensor.
func (t *Tensor[T, B]) SetGrad(g *Tensor[T, B]) { t.grad = g }

// Detach returns a tensor that shares this tensor's data but is a new node
// to the gradient tape: operations on the detached tensor do not propagate
// gradients into the graph that produced it. The tape keys nodes by
// RawTensor identity, so detaching clones the header (cheap, buffer is
// shared) rather than reusing it.
func (t *Tensor[T, B]) Detach() *Tensor[T, B] {
	return &Tensor[T, B]{raw: t.raw.Clone(), backend: t.backend}
}

// Clone returns a new tensor header over shared storage.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return &Tensor[T, B]{raw: t.raw.Clone(), backend: t.backend}
}

// Data returns the tensor's elements as a typed slice backed by the tensor
// buffer. Writes through the slice are visible to the tensor.
func (t *Tensor[T, B]) Data() []T {
	return typedView[T](t.raw)
}

// Item returns the value of a 0-d scalar tensor.
// Panics if the tensor has any dimensions; reduce first.
func (t *Tensor[T, B]) Item() T {
	if len(t.Shape()) != 0 {
		panic(fmt.Sprintf("tensor: Item on non-scalar tensor with shape %v", []int(t.Shape())))
	}
	return t.Data()[0]
}

// At returns the element at the given multi-dimensional index.
func (t *Tensor[T, B]) At(index ...int) T {
	return t.Data()[t.flatIndex(index)]
}

// Set writes the element at the given multi-dimensional index.
func (t *Tensor[T, B]) Set(value T, index ...int) {
	t.Data()[t.flatIndex(index)] = value
}

func (t *Tensor[T, B]) flatIndex(index []int) int {
	shape := t.Shape()
	if len(index) != len(shape) {
		panic(fmt.Sprintf("tensor: index %v does not address shape %v", index, []int(shape)))
	}
	flat := 0
	for i, idx := range index {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", index, []int(shape)))
		}
		flat += idx * t.raw.Strides()[i]
	}
	return flat
}

// Norm returns the L2 norm of the tensor as a float64, computed on the
// host. It is a probe for lesson control flow (e.g. loop-until-large), not
// a recorded operation; gradients do not flow through it.
func (t *Tensor[T, B]) Norm() float64 {
	var sum float64
	for _, v := range t.Data() {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// String formats the tensor for lesson output: dtype, shape and, for small
// tensors, the data itself.
func (t *Tensor[T, B]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor[%s](shape=%v", t.DType(), []int(t.Shape()))
	if t.NumElements() <= 12 {
		fmt.Fprintf(&b, ", data=%v", t.Data())
	}
	b.WriteString(")")
	return b.String()
}
