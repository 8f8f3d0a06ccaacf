// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/optim"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Optimizer updates parameters from a gradient map.
type Optimizer = optim.Optimizer

// SGD

// SGD implements stochastic gradient descent with optional momentum and
// weight decay.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig configures SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.03}, backend)
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	return optim.NewSGD(params, config, backend)
}

// Adam

// Adam implements adaptive moment estimation.
type Adam[B tensor.Backend] = optim.Adam[B]

// AdamConfig configures Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam[B tensor.Backend](params []*nn.Parameter[B], config AdamConfig, backend B) *Adam[B] {
	return optim.NewAdam(params, config, backend)
}

// Trainer

// TrainerConfig carries every algorithm's knobs in one struct.
type TrainerConfig = optim.TrainerConfig

// NewTrainer resolves an optimizer by algorithm name ("sgd" or "adam",
// case-insensitive), mirroring how the notebooks attach a named trainer
// to a model's parameters.
//
// Example:
//
//	trainer, err := optim.NewTrainer(model.Parameters(), "sgd",
//	    optim.TrainerConfig{LR: 0.03}, backend)
func NewTrainer[B tensor.Backend](params []*nn.Parameter[B], algorithm string, config TrainerConfig, backend B) (Optimizer, error) {
	return optim.NewTrainer(params, algorithm, config, backend)
}
