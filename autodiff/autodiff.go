// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// The package implements backpropagation with a gradient tape: wrap any
// backend, record the forward pass, then replay the tape in reverse for
// gradients.
//
// Example:
//
//	import (
//	    "github.com/rajagopal17/KDD19-tutorial/autodiff"
//	    "github.com/rajagopal17/KDD19-tutorial/backend/cpu"
//	    "github.com/rajagopal17/KDD19-tutorial/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    x := tensor.Arange[float32](0, 4, 1, backend)
//	    y := x.Mul(x).Sum().MulScalar(2)
//
//	    grads := autodiff.Backward(y, backend)
//	    _ = grads[x.Raw()] // dy/dx = 4x
//	}
package autodiff

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/autodiff"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Backend is the autodiff-enabled backend decorator.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New wraps a backend with a fresh gradient tape. Recording starts off;
// call Tape().StartRecording() before the forward pass.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations during the forward pass and replays
// them in reverse to compute gradients.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates an empty tape with recording off.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable is a backend whose operations land on a gradient
// tape.
type BackwardCapable = autodiff.BackwardCapable

// Backward computes gradients of t with respect to every tensor it was
// computed from, seeding with ones (the implicit-sum convention for
// non-scalar t). Gradients are keyed by RawTensor identity.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}
