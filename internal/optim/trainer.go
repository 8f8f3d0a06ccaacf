package optim

import (
	"fmt"
	"strings"

	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// TrainerConfig carries every algorithm's knobs in one struct so a run
// configuration can describe any optimizer. Each algorithm reads only
// the fields it knows; zero values fall back to that algorithm's
// defaults.
type TrainerConfig struct {
	LR          float32
	Momentum    float32    // SGD
	WeightDecay float32    // SGD
	Betas       [2]float32 // Adam
	Eps         float32    // Adam
}

// NewTrainer resolves an optimizer by algorithm name, mirroring how the
// notebooks attach a named trainer to a model's parameters:
//
//	trainer, err := optim.NewTrainer(model.Parameters(), "sgd",
//	    optim.TrainerConfig{LR: 0.03}, backend)
//
// Names are case-insensitive; "sgd" and "adam" are known.
func NewTrainer[B tensor.Backend](params []*nn.Parameter[B], algorithm string, config TrainerConfig, backend B) (Optimizer, error) {
	switch strings.ToLower(algorithm) {
	case "sgd":
		return NewSGD(params, SGDConfig{
			LR:          config.LR,
			Momentum:    config.Momentum,
			WeightDecay: config.WeightDecay,
		}, backend), nil
	case "adam":
		return NewAdam(params, AdamConfig{
			LR:    config.LR,
			Betas: config.Betas,
			Eps:   config.Eps,
		}, backend), nil
	default:
		return nil, fmt.Errorf("optim: unknown algorithm %q (supported: sgd, adam)", algorithm)
	}
}
