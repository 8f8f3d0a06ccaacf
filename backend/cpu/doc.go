// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host-memory compute backend.
//
// Element-wise operations run over flat slices, reusing the input
// buffer when reference counting proves exclusive ownership. MatMul
// splits rows across goroutines and selects its inner kernel from the
// CPU features detected at startup via klauspost/cpuid.
//
// Usage:
//
//	import (
//	    "github.com/rajagopal17/KDD19-tutorial/backend/cpu"
//	    "github.com/rajagopal17/KDD19-tutorial/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Randn[float32](tensor.Shape{128, 64}, backend)
//	y := x.MatMul(x.Transpose())
//
// For training, wrap the backend in the autodiff decorator so the
// gradient tape records every operation.
package cpu
