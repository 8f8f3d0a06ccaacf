package data

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Options configures a Loader.
type Options struct {
	BatchSize int   // rows per batch; must be positive
	Shuffle   bool  // reshuffle row order every epoch
	Seed      int64 // shuffle seed; same seed, same epoch order
	DropLast  bool  // drop a partial final batch instead of yielding it
}

// Loader slices a Dataset into mini-batch tensor pairs on a backend.
//
// Each call to Batches is one epoch. With Shuffle on, the epoch order
// comes from a private seeded generator that persists across epochs, so
// a training run visits a deterministic but different permutation each
// epoch, matching the notebook data iterator.
type Loader[B tensor.Backend] struct {
	dataset Dataset
	opts    Options
	backend B
	rng     *rand.Rand
}

// NewLoader builds a Loader over the dataset.
func NewLoader[B tensor.Backend](dataset Dataset, opts Options, backend B) (*Loader[B], error) {
	if dataset == nil || dataset.Len() == 0 {
		return nil, fmt.Errorf("data: loader needs a non-empty dataset")
	}
	if opts.BatchSize <= 0 {
		return nil, fmt.Errorf("data: batch size must be positive, got %d", opts.BatchSize)
	}
	return &Loader[B]{
		dataset: dataset,
		opts:    opts,
		backend: backend,
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

// BatchSize returns the configured batch size.
func (l *Loader[B]) BatchSize() int { return l.opts.BatchSize }

// NumBatches returns how many batches one epoch yields.
func (l *Loader[B]) NumBatches() int {
	n := l.dataset.Len() / l.opts.BatchSize
	if !l.opts.DropLast && l.dataset.Len()%l.opts.BatchSize != 0 {
		n++
	}
	return n
}

// Batches iterates one epoch of (X, y) pairs:
//
//	for X, y := range loader.Batches() {
//	    loss := lossFn.Forward(model.Forward(X), y)
//	    ...
//	}
//
// X has shape [batch, features] and y [batch, labelWidth]. The final
// batch may be smaller unless DropLast is set; a batch size above the
// dataset length yields one partial batch.
func (l *Loader[B]) Batches() iter.Seq2[*tensor.Tensor[float32, B], *tensor.Tensor[float32, B]] {
	n := l.dataset.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if l.opts.Shuffle {
		l.rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	return func(yield func(*tensor.Tensor[float32, B], *tensor.Tensor[float32, B]) bool) {
		for start := 0; start < n; start += l.opts.BatchSize {
			end := min(start+l.opts.BatchSize, n)
			if end-start < l.opts.BatchSize && l.opts.DropLast {
				return
			}
			if !yield(l.batch(order[start:end])) {
				return
			}
		}
	}
}

// batch materializes the rows at the given indices as tensors.
func (l *Loader[B]) batch(indices []int) (x, y *tensor.Tensor[float32, B]) {
	f0, l0 := l.dataset.Sample(indices[0])
	featureWidth, labelWidth := len(f0), len(l0)

	features := make([]float32, 0, len(indices)*featureWidth)
	labels := make([]float32, 0, len(indices)*labelWidth)
	for _, idx := range indices {
		f, lab := l.dataset.Sample(idx)
		features = append(features, f...)
		labels = append(labels, lab...)
	}

	x, err := tensor.FromSlice(features, tensor.Shape{len(indices), featureWidth}, l.backend)
	if err != nil {
		panic(fmt.Sprintf("data: batch features: %v", err))
	}
	y, err = tensor.FromSlice(labels, tensor.Shape{len(indices), labelWidth}, l.backend)
	if err != nil {
		panic(fmt.Sprintf("data: batch labels: %v", err))
	}
	return x, y
}
