// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public tensor API the lessons are written
// against.
//
// # Overview
//
// Tensors are typed n-dimensional arrays bound to a backend:
//   - Tensor[T, B]: generic, type-safe tensor handle
//   - RawTensor: the untyped representation backends operate on
//   - Backend: the compute interface (see backend/cpu and autodiff)
//   - Shape, DataType, Device: core type definitions
//
// # Basic Usage
//
//	import (
//	    "github.com/rajagopal17/KDD19-tutorial/backend/cpu"
//	    "github.com/rajagopal17/KDD19-tutorial/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Arange[float32](0, 12, 1, backend).Reshape(3, 4)
//	    y := tensor.Ones[float32](tensor.Shape{3, 4}, backend)
//
//	    z := x.Add(y)
//	    p := x.MatMul(y.Transpose())
//	    _ = z.Sum().Item()
//	    _ = p
//	}
//
// # Broadcasting
//
// Element-wise operations follow NumPy alignment rules:
//
//	a := tensor.Arange[float32](0, 3, 1, backend).Reshape(3, 1) // (3, 1)
//	b := tensor.Arange[float32](0, 2, 1, backend).Reshape(1, 2) // (1, 2)
//	c := a.Add(b)                                               // (3, 2)
//
// # Data Types
//
// The lessons differentiate and train real-valued functions, so the
// DType constraint covers float32 (the working precision) and float64
// (extra mantissa bits for numerical gradient checks).
package tensor
