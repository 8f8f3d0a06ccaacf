package tensor

import "fmt"

// Shape describes the extent of a tensor along each dimension.
//
// An empty Shape{} denotes a 0-dimensional scalar, which still holds exactly
// one element. Reductions such as Sum and Mean produce 0-d tensors, and
// Item() requires one.
type Shape []int

// NumElements returns the total number of elements the shape addresses.
// A 0-d scalar has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate reports an error if any dimension is non-positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("shape %v: dimension %d must be positive, got %d", []int(s), i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if dim != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// ComputeStrides returns row-major (C order) strides for the shape.
// The last dimension is contiguous; a 0-d scalar has no strides.
func ComputeStrides(shape Shape) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// BroadcastShapes resolves the result shape of an element-wise operation on
// two operands, following NumPy alignment rules: shapes are compared from
// the trailing dimension, and each pair must either match or contain a 1.
//
// The second return value reports whether any broadcasting is actually
// required; backends use it to pick the fast same-shape path.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	if a.Equal(b) {
		return a.Clone(), false, nil
	}

	ndim := max(len(a), len(b))
	out := make(Shape, ndim)

	for i := 0; i < ndim; i++ {
		// Walk both shapes from the right.
		da, db := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			da = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			db = b[idx]
		}

		switch {
		case da == db:
			out[ndim-1-i] = da
		case da == 1:
			out[ndim-1-i] = db
		case db == 1:
			out[ndim-1-i] = da
		default:
			return nil, false, fmt.Errorf("shapes %v and %v are not broadcastable: dimension %d vs %d",
				[]int(a), []int(b), da, db)
		}
	}

	return out, true, nil
}
