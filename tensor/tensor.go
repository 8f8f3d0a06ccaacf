// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Type aliases for the public API.

// Tensor is a typed n-dimensional array bound to a backend.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Shape describes the extent of a tensor along each dimension.
type Shape = tensor.Shape

// DType is the compile-time constraint for tensor element types.
type DType = tensor.DType

// DataType identifies the element type of a RawTensor at runtime.
type DataType = tensor.DataType

// Element types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Device identifies where tensor data lives.
type Device = tensor.Device

// CPU is host memory.
const CPU = tensor.CPU

// Creation functions.

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor with every element set to value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Randn creates a tensor with standard-normal random values.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// Rand creates a tensor with uniform random values from [0, 1).
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, b)
}

// Arange creates a 1-d tensor with values from start up to but excluding
// stop.
//
// Example:
//
//	x := tensor.Arange[float32](0, 4, 1, backend) // [0, 1, 2, 3]
func Arange[T DType, B Backend](start, stop, step float64, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, stop, step, b)
}

// Linspace creates a 1-d tensor of num evenly spaced values from start
// to stop inclusive.
func Linspace[T DType, B Backend](start, stop float64, num int, b B) *Tensor[T, B] {
	return tensor.Linspace[T, B](start, stop, num, b)
}

// Eye creates the n-by-n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from a flat slice in row-major order.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// FromSlice2D creates a [rows, cols] tensor from equal-length rows.
func FromSlice2D[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice2D[T, B](rows, b)
}

// New wraps an existing RawTensor.
//
// This is a low-level function; most callers use the creation helpers.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw allocates a zero-filled raw tensor.
//
// This is a low-level function; most callers use the creation helpers.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Utility functions.

// ComputeStrides returns row-major strides for a shape.
func ComputeStrides(shape Shape) []int {
	return tensor.ComputeStrides(shape)
}

// BroadcastShapes resolves the result shape of an element-wise operation,
// reporting whether broadcasting is required.
//
// Example:
//
//	shape, needed, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 4})
//	// shape = [3, 4], needed = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
