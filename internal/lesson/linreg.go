package lesson

import (
	"context"
	"fmt"
	"io"

	"github.com/rajagopal17/KDD19-tutorial/internal/autodiff"
	"github.com/rajagopal17/KDD19-tutorial/internal/config"
	"github.com/rajagopal17/KDD19-tutorial/internal/data"
	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/optim"
)

func init() {
	Register(linregLesson{})
}

// linregLesson trains the same regression through the high-level API:
// Sequential + Linear, MSELoss, and a named trainer.
type linregLesson struct{}

func (linregLesson) Name() string { return "linreg" }

func (linregLesson) Summary() string {
	return "Concise linear regression: Sequential, Linear, MSELoss and a named trainer"
}

func (linregLesson) Run(ctx context.Context, cfg config.Config, w io.Writer) (*Report, error) {
	backend := NewBackend()
	tape := backend.Tape()
	report := &Report{Lesson: "linreg"}

	dataset, err := lessonDataset(cfg)
	if err != nil {
		return nil, err
	}
	loader, err := data.NewLoader(dataset, data.Options{
		BatchSize: cfg.BatchSize,
		Shuffle:   true,
		Seed:      cfg.Seed,
	}, backend)
	if err != nil {
		return nil, err
	}

	numFeatures := dataset.NumFeatures()
	fmt.Fprintf(w, "# Concise linear regression\n")
	fmt.Fprintf(w, "dataset: %d samples, %d features, batch size %d\n",
		dataset.Len(), numFeatures, cfg.BatchSize)

	// The model is a one-layer net; re-initialize its weights to the
	// notebook's N(0, 0.01²) start and its bias to zero.
	layer := nn.NewLinear(numFeatures, 1, backend)
	nn.InitNormal(layer.Weight().Tensor(), 0.01)
	nn.InitZeros(layer.Bias().Tensor())
	model := nn.NewSequential[Backend](layer)
	lossFn := nn.NewMSELoss(backend)

	trainer, err := optim.NewTrainer(model.Parameters(), cfg.Algorithm,
		optim.TrainerConfig{LR: float32(cfg.LR)}, backend)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "trainer: %s, lr %v\n", cfg.Algorithm, cfg.LR)

	tape.StartRecording()
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for X, y := range loader.Batches() {
			tape.Clear()
			trainer.ZeroGrad()

			loss := lossFn.Forward(model.Forward(X), y)
			grads := autodiff.Backward(loss, backend)
			trainer.Step(grads)
		}

		epochLoss := evalMSE(tape, dataset, model, lossFn, backend)
		report.EpochLoss = append(report.EpochLoss, epochLoss)
		fmt.Fprintf(w, "epoch %d, loss %f\n", epoch, epochLoss)
	}
	tape.StopRecording()

	report.Weights = toFloat64(layer.Weight().Tensor().Data())
	report.Bias = float64(layer.Bias().Tensor().Data()[0])
	fmt.Fprintf(w, "learned w = %v\n", layer.Weight().Tensor().Data())
	fmt.Fprintf(w, "learned b = %v\n", layer.Bias().Tensor().Data()[0])
	reportCoefficients(report, cfg, w)
	return report, nil
}

// evalMSE computes the dataset MSE with recording suspended.
func evalMSE(tape *autodiff.GradientTape, dataset *data.ArrayDataset,
	model nn.Module[Backend], lossFn *nn.MSELoss[Backend], backend Backend) float64 {
	wasRecording := tape.IsRecording()
	tape.StopRecording()
	defer func() {
		if wasRecording {
			tape.StartRecording()
		}
	}()

	X, y := fullTensors(dataset, backend)
	return float64(lossFn.Forward(model.Forward(X), y).Item())
}
