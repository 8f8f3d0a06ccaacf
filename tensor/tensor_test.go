// Copyright 2019 The KDD19-tutorial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajagopal17/KDD19-tutorial/backend/cpu"
	"github.com/rajagopal17/KDD19-tutorial/tensor"
)

// The public package re-exports internal/tensor; these tests pin the
// surface the lessons and the README snippets rely on.

func TestCreationHelpers(t *testing.T) {
	backend := cpu.New()

	x := tensor.Arange[float32](0, 12, 1, backend)
	assert.Equal(t, tensor.Shape{12}, x.Shape())
	assert.Equal(t, float32(11), x.Data()[11])

	z := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
	assert.Equal(t, 6, z.NumElements())

	eye := tensor.Eye[float32](3, backend)
	assert.Equal(t, float32(1), eye.At(1, 1))
	assert.Equal(t, float32(0), eye.At(0, 2))

	lin := tensor.Linspace[float64](0, 1, 5, backend)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, lin.Data())
}

func TestArithmeticAndReductions(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	sum := x.Add(x)
	assert.Equal(t, []float32{2, 4, 6, 8}, sum.Data())

	assert.Equal(t, float32(10), x.Sum().Item())
	assert.Equal(t, float32(2.5), x.Mean().Item())

	prod := x.MatMul(x.Transpose())
	assert.Equal(t, []float32{5, 11, 11, 25}, prod.Data())
}

func TestBroadcastShapes(t *testing.T) {
	shape, needed, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{3, 4})
	require.NoError(t, err)
	assert.True(t, needed)
	assert.Equal(t, tensor.Shape{3, 4}, shape)

	_, _, err = tensor.BroadcastShapes(tensor.Shape{2}, tensor.Shape{3})
	assert.Error(t, err)
}

func TestFromSlice2D(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice2D([][]float32{{1, 2}, {3, 4}, {5, 6}}, backend)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, x.Shape())

	_, err = tensor.FromSlice2D([][]float32{{1, 2}, {3}}, backend)
	assert.Error(t, err)
}
