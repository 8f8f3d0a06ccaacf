package lesson

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/rajagopal17/KDD19-tutorial/internal/autodiff"
	"github.com/rajagopal17/KDD19-tutorial/internal/config"
	"github.com/rajagopal17/KDD19-tutorial/internal/data"
	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

func init() {
	Register(linregScratchLesson{})
}

// linregScratchLesson trains linear regression with the model, loss and
// SGD update written out by hand against the tensor API.
type linregScratchLesson struct{}

func (linregScratchLesson) Name() string { return "linreg-scratch" }

func (linregScratchLesson) Summary() string {
	return "Linear regression from scratch: manual parameters, loss and SGD update"
}

func (linregScratchLesson) Run(ctx context.Context, cfg config.Config, w io.Writer) (*Report, error) {
	backend := NewBackend()
	tape := backend.Tape()
	report := &Report{Lesson: "linreg-scratch"}

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
	fmt.Fprintf(w, "# Linear regression from scratch\n")
	fmt.Fprintf(w, "dataset: %d samples, %d features, batch size %d\n",
		dataset.Len(), numFeatures, cfg.BatchSize)

	// w ~ N(0, 0.01²) as a column, b a single zero, exactly the
	// notebook's starting point.
	rng := rand.New(rand.NewSource(cfg.Seed))
	weightData := make([]float32, numFeatures)
	for i := range weightData {
		weightData[i] = float32(rng.NormFloat64() * 0.01)
	}
	weight, err := tensor.FromSlice(weightData, tensor.Shape{numFeatures, 1}, backend)
	if err != nil {
		return nil, err
	}
	weight.RequireGrad()
	bias := tensor.Zeros[float32](tensor.Shape{1}, backend).RequireGrad()

	lr := float32(cfg.LR)
	tape.StartRecording()

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for X, y := range loader.Batches() {
			tape.Clear()

			// net(X) = X @ w + b; loss = mean((ŷ-y)²/2).
			predictions := X.MatMul(weight).Add(bias.Reshape(1, 1))
			loss := nn.SquaredLoss(predictions, y).Mean()

			grads := autodiff.Backward(loss, backend)
			sgdStep(weight, grads, lr)
			sgdStep(bias, grads, lr)
		}

		epochLoss := evalLoss(tape, dataset, weight, bias, backend)
		report.EpochLoss = append(report.EpochLoss, epochLoss)
		fmt.Fprintf(w, "epoch %d, loss %f\n", epoch, epochLoss)
	}
	tape.StopRecording()

	report.Weights = toFloat64(weight.Data())
	report.Bias = float64(bias.Data()[0])
	fmt.Fprintf(w, "learned w = %v\n", weight.Data())
	fmt.Fprintf(w, "learned b = %v\n", bias.Data()[0])
	reportCoefficients(report, cfg, w)
	return report, nil
}

// sgdStep applies param -= lr * grad in place on the host. Gradients
// come from the tape keyed by the parameter's RawTensor; parameters the
// output does not depend on are left alone.
func sgdStep(param *tensor.Tensor[float32, Backend], grads map[*tensor.RawTensor]*tensor.RawTensor, lr float32) {
	grad, ok := grads[param.Raw()]
	if !ok {
		return
	}
	pd, gd := param.Data(), grad.AsFloat32()
	for i := range pd {
		pd[i] -= lr * gd[i]
	}
}

// evalLoss computes the mean squared-loss halves over the whole dataset
// with recording suspended, so the evaluation never lands on the tape.
func evalLoss(tape *autodiff.GradientTape, dataset *data.ArrayDataset,
	weight, bias *tensor.Tensor[float32, Backend], backend Backend) float64 {
	wasRecording := tape.IsRecording()
	tape.StopRecording()
	defer func() {
		if wasRecording {
			tape.StartRecording()
		}
	}()

	X, y := fullTensors(dataset, backend)
	predictions := X.MatMul(weight).Add(bias.Reshape(1, 1))
	return float64(nn.SquaredLoss(predictions, y).Mean().Item())
}

// fullTensors materializes the whole dataset as one (X, y) pair.
func fullTensors(dataset *data.ArrayDataset, backend Backend) (x, y *tensor.Tensor[float32, Backend]) {
	n := dataset.Len()
	features := make([]float32, 0, n*dataset.NumFeatures())
	labels := make([]float32, 0, n*dataset.LabelWidth())
	for i := 0; i < n; i++ {
		f, l := dataset.Sample(i)
		features = append(features, f...)
		labels = append(labels, l...)
	}
	x, err := tensor.FromSlice(features, tensor.Shape{n, dataset.NumFeatures()}, backend)
	if err != nil {
		panic(fmt.Sprintf("lesson: full features: %v", err))
	}
	y, err = tensor.FromSlice(labels, tensor.Shape{n, dataset.LabelWidth()}, backend)
	if err != nil {
		panic(fmt.Sprintf("lesson: full labels: %v", err))
	}
	return x, y
}

// lessonDataset resolves the configured data source: a CSV file when
// one is named, otherwise the synthetic generating function.
func lessonDataset(cfg config.Config) (*data.ArrayDataset, error) {
	if cfg.DatasetCSV != "" {
		return data.LoadCSV(cfg.DatasetCSV)
	}
	return data.SyntheticRegression(data.RegressionConfig{
		Weights:    cfg.TrueWeights,
		Bias:       cfg.TrueBias,
		NumSamples: cfg.NumSamples,
		NoiseSigma: cfg.NoiseSigma,
		Seed:       cfg.Seed,
	})
}

// reportCoefficients records the distance from the generating function
// when it is known, i.e. when the data was synthetic.
func reportCoefficients(report *Report, cfg config.Config, w io.Writer) {
	if cfg.DatasetCSV != "" || len(cfg.TrueWeights) != len(report.Weights) {
		return
	}
	report.WeightError = make([]float64, len(report.Weights))
	for i, learned := range report.Weights {
		report.WeightError[i] = float64(cfg.TrueWeights[i]) - learned
	}
	report.BiasError = float64(cfg.TrueBias) - report.Bias
	fmt.Fprintf(w, "error in w = %v\n", report.WeightError)
	fmt.Fprintf(w, "error in b = %v\n", report.BiasError)
}
