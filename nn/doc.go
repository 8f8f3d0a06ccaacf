// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the neural network building blocks the lessons
// train with.
//
// # Overview
//
//   - Layers: Linear
//   - Containers: Sequential, the Module interface, Parameter
//   - Losses: MSELoss, SquaredLoss
//   - Initialization: Xavier, InitNormal, InitZeros, InitConstant
//
// # Basic Usage
//
//	import (
//	    "github.com/rajagopal17/KDD19-tutorial/autodiff"
//	    "github.com/rajagopal17/KDD19-tutorial/backend/cpu"
//	    "github.com/rajagopal17/KDD19-tutorial/nn"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//
//	    model := nn.NewSequential[*autodiff.Backend[*cpu.Backend]](
//	        nn.NewLinear(2, 1, backend),
//	    )
//	    lossFn := nn.NewMSELoss(backend)
//
//	    predictions := model.Forward(features)
//	    loss := lossFn.Forward(predictions, labels)
//	    _ = loss
//	}
//
// Modules are generic over the backend. Training requires the autodiff
// decorator: gradients only exist where a tape recorded the forward
// pass.
package nn
