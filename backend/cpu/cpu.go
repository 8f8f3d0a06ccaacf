// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/rajagopal17/KDD19-tutorial/internal/backend/cpu"
	"github.com/rajagopal17/KDD19-tutorial/tensor"
)

// Backend is the CPU backend: pure Go kernels with row-parallel matmul
// and a wide inner kernel on AVX2+FMA hardware.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func New() *Backend {
	return internalcpu.New()
}

// Features describes the detected CPU and the kernel flags in use,
// e.g. for lesson banners.
func Features() string {
	return internalcpu.Features()
}
