// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Module is the interface shared by all network components.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a named, trainable tensor.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter wraps an initialized tensor as a trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Linear is a fully connected layer computing y = x @ Wᵀ + b.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a Linear layer with Xavier-initialized weights and a
// zero bias.
//
// Example:
//
//	layer := nn.NewLinear(2, 1, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// Sequential chains modules so each output feeds the next input.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential builds a Sequential from the given modules, in order.
//
// Example:
//
//	model := nn.NewSequential[Backend](nn.NewLinear(2, 1, backend))
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Losses

// MSELoss computes mean squared error from recorded backend operations,
// so gradients flow from the scalar loss back to every parameter.
type MSELoss[B tensor.Backend] = nn.MSELoss[B]

// NewMSELoss creates an MSE loss.
func NewMSELoss[B tensor.Backend](backend B) *MSELoss[B] {
	return nn.NewMSELoss(backend)
}

// SquaredLoss returns the element-wise squared error halves,
// (pred - target)²/2, without reducing.
func SquaredLoss[T tensor.DType, B tensor.Backend](predictions, targets *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return nn.SquaredLoss(predictions, targets)
}

// Initialization

// Xavier creates a float32 tensor with Xavier/Glorot uniform values.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}

// InitNormal refills a tensor with draws from N(0, sigma²), the
// notebooks' weight initialization for regression.
func InitNormal[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], sigma float64) {
	nn.InitNormal(t, sigma)
}

// InitXavier refills a tensor with Xavier/Glorot uniform values.
func InitXavier[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], fanIn, fanOut int) {
	nn.InitXavier(t, fanIn, fanOut)
}

// InitZeros zeroes a tensor.
func InitZeros[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) {
	nn.InitZeros(t)
}

// InitOnes sets every element to one.
func InitOnes[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) {
	nn.InitOnes(t)
}

// InitConstant sets every element to value.
func InitConstant[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], value T) {
	nn.InitConstant(t, value)
}
