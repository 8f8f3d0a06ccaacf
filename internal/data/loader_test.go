package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajagopal17/KDD19-tutorial/internal/backend/cpu"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

func sequentialDataset(t *testing.T, n int) *ArrayDataset {
	t.Helper()
	features := make([][]float32, n)
	labels := make([][]float32, n)
	for i := range features {
		features[i] = []float32{float32(i), float32(i) * 10}
		labels[i] = []float32{float32(i)}
	}
	ds, err := NewArrayDataset(features, labels)
	require.NoError(t, err)
	return ds
}

func TestLoader_BatchShapes(t *testing.T) {
	backend := cpu.New()
	loader, err := NewLoader(sequentialDataset(t, 10), Options{BatchSize: 4}, backend)
	require.NoError(t, err)

	var batchSizes []int
	for x, y := range loader.Batches() {
		require.Equal(t, 2, len(x.Shape()))
		assert.Equal(t, x.Shape()[0], y.Shape()[0])
		assert.Equal(t, 2, x.Shape()[1])
		assert.Equal(t, 1, y.Shape()[1])
		batchSizes = append(batchSizes, x.Shape()[0])
	}

	// 10 rows in batches of 4: two full batches plus the partial one.
	assert.Equal(t, []int{4, 4, 2}, batchSizes)
	assert.Equal(t, 3, loader.NumBatches())
}

func TestLoader_DropLast(t *testing.T) {
	backend := cpu.New()
	loader, err := NewLoader(sequentialDataset(t, 10), Options{BatchSize: 4, DropLast: true}, backend)
	require.NoError(t, err)

	var batchSizes []int
	for x := range loader.Batches() {
		batchSizes = append(batchSizes, x.Shape()[0])
	}
	assert.Equal(t, []int{4, 4}, batchSizes)
	assert.Equal(t, 2, loader.NumBatches())
}

func TestLoader_BatchLargerThanDataset(t *testing.T) {
	backend := cpu.New()
	loader, err := NewLoader(sequentialDataset(t, 3), Options{BatchSize: 8}, backend)
	require.NoError(t, err)

	count := 0
	for x := range loader.Batches() {
		count++
		assert.Equal(t, tensor.Shape{3, 2}, x.Shape())
	}
	assert.Equal(t, 1, count)
}

// TestLoader_ShuffleIsPermutation verifies that a shuffled epoch visits
// every row exactly once.
func TestLoader_ShuffleIsPermutation(t *testing.T) {
	backend := cpu.New()
	loader, err := NewLoader(sequentialDataset(t, 17), Options{BatchSize: 5, Shuffle: true, Seed: 7}, backend)
	require.NoError(t, err)

	seen := make(map[float32]int)
	for _, y := range loader.Batches() {
		for _, v := range y.Data() {
			seen[v]++
		}
	}
	require.Len(t, seen, 17)
	for label, count := range seen {
		assert.Equal(t, 1, count, "label %v", label)
	}
}

func TestLoader_ShuffleOrderDiffersAcrossEpochs(t *testing.T) {
	backend := cpu.New()
	loader, err := NewLoader(sequentialDataset(t, 32), Options{BatchSize: 32, Shuffle: true, Seed: 1}, backend)
	require.NoError(t, err)

	epochOrder := func() []float32 {
		for _, y := range loader.Batches() {
			return append([]float32(nil), y.Data()...)
		}
		return nil
	}

	first := epochOrder()
	second := epochOrder()
	assert.NotEqual(t, first, second, "persisting the rng should reshuffle each epoch")
}

func TestLoader_SameSeedSameOrder(t *testing.T) {
	backend := cpu.New()
	ds := sequentialDataset(t, 16)

	order := func() []float32 {
		loader, err := NewLoader(ds, Options{BatchSize: 16, Shuffle: true, Seed: 99}, backend)
		require.NoError(t, err)
		for _, y := range loader.Batches() {
			return append([]float32(nil), y.Data()...)
		}
		return nil
	}

	assert.Equal(t, order(), order())
}

func TestNewLoader_Validation(t *testing.T) {
	backend := cpu.New()

	_, err := NewLoader(sequentialDataset(t, 4), Options{BatchSize: 0}, backend)
	assert.Error(t, err)

	_, err = NewLoader[*cpu.CPUBackend](nil, Options{BatchSize: 1}, backend)
	assert.Error(t, err)
}
