// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// Backend is the interface every compute backend implements. The typed
// Tensor API delegates each operation here.
//
// Implementations:
//   - backend/cpu: pure Go kernels with CPU feature detection
//
// Decorator backends:
//   - autodiff: records operations for gradient computation (wraps any
//     backend)
//
// Example:
//
//	import (
//	    "github.com/rajagopal17/KDD19-tutorial/backend/cpu"
//	    "github.com/rajagopal17/KDD19-tutorial/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y) // runs backend.Add under the hood
type Backend = tensor.Backend
