// Package tensor provides the core n-dimensional array types for the KDD19
// tutorial lessons.
//
// The package is deliberately float-only: every lesson differentiates or
// trains real-valued functions, and a two-entry dispatch table keeps the
// backends readable. Float32 is the working precision of the lessons;
// float64 exists for the numerical gradient checks, which need the extra
// mantissa bits.
package tensor

import "fmt"

// DType is the compile-time constraint for tensor element types.
type DType interface {
	~float32 | ~float64
}

// DataType identifies the element type of a RawTensor at runtime.
type DataType int

const (
	// Float32 is the working precision for lessons and models.
	Float32 DataType = iota
	// Float64 is used where finite-difference checks need extra precision.
	Float64
)

// Size returns the width of one element in bytes.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic(fmt.Sprintf("tensor: unknown data type %d", int(dt)))
	}
}

// String returns the lowercase name of the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
}

// dataTypeOf maps a concrete element type to its runtime DataType.
func dataTypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(fmt.Sprintf("tensor: unsupported element type %T", zero))
	}
}
