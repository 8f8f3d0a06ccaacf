// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the optimizers the lessons train with.
//
// # Overview
//
//   - SGD: stochastic gradient descent with momentum and weight decay
//   - Adam: adaptive moment estimation
//   - NewTrainer: resolves an algorithm by name from a config string
//
// # Training Step
//
//	trainer.ZeroGrad()
//	loss := lossFn.Forward(model.Forward(x), y)
//	grads := autodiff.Backward(loss, backend)
//	trainer.Step(grads)
//	backend.Tape().Clear()
//
// Optimizers pair parameters with gradients by RawTensor identity, so
// parameters keep their tensors across updates.
package optim
