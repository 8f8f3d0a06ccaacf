package ops

import (
	"math"
	"testing"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// rawFrom builds a float32 RawTensor for backward tests.
func rawFrom(t *testing.T, shape tensor.Shape, values []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw(%v): %v", []int(shape), err)
	}
	copy(raw.AsFloat32(), values)
	return raw
}

func onesRaw(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	values := make([]float32, shape.NumElements())
	for i := range values {
		values[i] = 1
	}
	return rawFrom(t, shape, values)
}

// checkRaw compares a tensor against expected shape and values.
func checkRaw(t *testing.T, name string, got *tensor.RawTensor, wantShape tensor.Shape, want []float32) {
	t.Helper()
	if !got.Shape().Equal(wantShape) {
		t.Fatalf("%s: shape = %v, want %v", name, []int(got.Shape()), []int(wantShape))
	}
	data := got.AsFloat32()
	for i, w := range want {
		if math.Abs(float64(data[i])-float64(w)) > 1e-5 {
			t.Errorf("%s: [%d] = %v, want %v", name, i, data[i], w)
		}
	}
}

func TestAddOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b := rawFrom(t, tensor.Shape{2, 3}, []float32{10, 20, 30, 40, 50, 60})
	out := backend.Add(a, b)

	op := NewAddOp(a, b, out)
	grad := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	grads := op.Backward(grad, backend)

	if len(grads) != 2 {
		t.Fatalf("Backward returned %d gradients, want 2", len(grads))
	}
	checkRaw(t, "gradA", grads[0], tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	checkRaw(t, "gradB", grads[1], tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
}

func TestAddOpBackwardBroadcast(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b := rawFrom(t, tensor.Shape{3}, []float32{10, 20, 30})
	out := backend.Add(a, b)

	op := NewAddOp(a, b, out)
	grad := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	grads := op.Backward(grad, backend)

	checkRaw(t, "gradA", grads[0], tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	// b was broadcast over rows, so its gradient sums over them.
	checkRaw(t, "gradB", grads[1], tensor.Shape{3}, []float32{5, 7, 9})
}

func TestAddOpBackwardBroadcastKeepDim(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b := rawFrom(t, tensor.Shape{2, 1}, []float32{10, 20})
	out := backend.Add(a, b)

	op := NewAddOp(a, b, out)
	grads := op.Backward(onesRaw(t, tensor.Shape{2, 3}), backend)

	checkRaw(t, "gradB", grads[1], tensor.Shape{2, 1}, []float32{3, 3})
}

func TestSubOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{4}, []float32{5, 6, 7, 8})
	b := rawFrom(t, tensor.Shape{4}, []float32{1, 2, 3, 4})
	out := backend.Sub(a, b)

	op := NewSubOp(a, b, out)
	grad := rawFrom(t, tensor.Shape{4}, []float32{1, 2, 3, 4})
	grads := op.Backward(grad, backend)

	checkRaw(t, "gradA", grads[0], tensor.Shape{4}, []float32{1, 2, 3, 4})
	checkRaw(t, "gradB", grads[1], tensor.Shape{4}, []float32{-1, -2, -3, -4})
}

func TestMulOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
	b := rawFrom(t, tensor.Shape{2, 2}, []float32{5, 6, 7, 8})
	out := backend.Mul(a, b)

	op := NewMulOp(a, b, out)
	grad := rawFrom(t, tensor.Shape{2, 2}, []float32{2, 3, 4, 5})
	grads := op.Backward(grad, backend)

	checkRaw(t, "gradA", grads[0], tensor.Shape{2, 2}, []float32{10, 18, 28, 40})
	checkRaw(t, "gradB", grads[1], tensor.Shape{2, 2}, []float32{2, 6, 12, 20})
}

func TestMulOpBackwardBroadcast(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
	b := rawFrom(t, tensor.Shape{2}, []float32{10, 20})
	out := backend.Mul(a, b)

	op := NewMulOp(a, b, out)
	grads := op.Backward(onesRaw(t, tensor.Shape{2, 2}), backend)

	checkRaw(t, "gradA", grads[0], tensor.Shape{2, 2}, []float32{10, 20, 10, 20})
	checkRaw(t, "gradB", grads[1], tensor.Shape{2}, []float32{4, 6})
}

func TestDivOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{4}, []float32{2, 4, 6, 8})
	b := rawFrom(t, tensor.Shape{4}, []float32{2, 2, 4, 4})
	out := backend.Div(a, b)

	op := NewDivOp(a, b, out)
	grads := op.Backward(onesRaw(t, tensor.Shape{4}), backend)

	checkRaw(t, "gradA", grads[0], tensor.Shape{4}, []float32{0.5, 0.5, 0.25, 0.25})
	// dL/db = -a/b².
	checkRaw(t, "gradB", grads[1], tensor.Shape{4}, []float32{-0.5, -1, -0.375, -0.5})
}

func TestScalarOpsBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{3}, []float32{1, 2, 3})
	grad := rawFrom(t, tensor.Shape{3}, []float32{4, 5, 6})

	addOp := NewAddScalarOp(x, backend.AddScalar(x, 2), 2)
	checkRaw(t, "add scalar", addOp.Backward(grad, backend)[0], tensor.Shape{3}, []float32{4, 5, 6})

	subOp := NewSubScalarOp(x, backend.SubScalar(x, 2), 2)
	checkRaw(t, "sub scalar", subOp.Backward(grad, backend)[0], tensor.Shape{3}, []float32{4, 5, 6})

	mulOp := NewMulScalarOp(x, backend.MulScalar(x, 3), 3)
	checkRaw(t, "mul scalar", mulOp.Backward(grad, backend)[0], tensor.Shape{3}, []float32{12, 15, 18})

	divOp := NewDivScalarOp(x, backend.DivScalar(x, 4), 4)
	checkRaw(t, "div scalar", divOp.Backward(grad, backend)[0], tensor.Shape{3}, []float32{1, 1.25, 1.5})
}

func TestExpOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{3}, []float32{0, float32(math.Log(2)), 1})
	out := backend.Exp(x)

	op := NewExpOp(x, out)
	grads := op.Backward(onesRaw(t, tensor.Shape{3}), backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{3}, []float32{1, 2, float32(math.E)})
}

func TestLogOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{4}, []float32{1, 2, 4, 8})
	out := backend.Log(x)

	op := NewLogOp(x, out)
	grads := op.Backward(onesRaw(t, tensor.Shape{4}), backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{4}, []float32{1, 0.5, 0.25, 0.125})
}

func TestSqrtOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{4}, []float32{1, 4, 16, 25})
	out := backend.Sqrt(x)

	op := NewSqrtOp(x, out)
	grads := op.Backward(onesRaw(t, tensor.Shape{4}), backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{4}, []float32{0.5, 0.25, 0.125, 0.1})
}

func TestMatMulOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b := rawFrom(t, tensor.Shape{3, 2}, []float32{7, 8, 9, 10, 11, 12})
	out := backend.MatMul(a, b)

	op := NewMatMulOp(a, b, out)
	grads := op.Backward(onesRaw(t, tensor.Shape{2, 2}), backend)

	// gradA = grad @ Bᵀ, gradB = Aᵀ @ grad, both hand-computed for ones.
	checkRaw(t, "gradA", grads[0], tensor.Shape{2, 3}, []float32{15, 19, 23, 15, 19, 23})
	checkRaw(t, "gradB", grads[1], tensor.Shape{3, 2}, []float32{5, 5, 7, 7, 9, 9})
}

func TestSumOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	out := backend.Sum(x)

	op := NewSumOp(x, out)
	grad := rawFrom(t, tensor.Shape{}, []float32{2.5})
	grads := op.Backward(grad, backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{2.5, 2.5, 2.5, 2.5, 2.5, 2.5})
}

func TestMeanOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	out := backend.Mean(x)

	op := NewMeanOp(x, out)
	grad := rawFrom(t, tensor.Shape{}, []float32{12})
	grads := op.Backward(grad, backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{2, 2, 2, 2, 2, 2})
}

func TestSumDimOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	t.Run("dim 0", func(t *testing.T) {
		out := backend.SumDim(x, 0, false)
		op := NewSumDimOp(x, out, 0, false)
		grad := rawFrom(t, tensor.Shape{3}, []float32{1, 2, 3})
		grads := op.Backward(grad, backend)
		checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{1, 2, 3, 1, 2, 3})
	})

	t.Run("dim 1 keepDim", func(t *testing.T) {
		out := backend.SumDim(x, 1, true)
		op := NewSumDimOp(x, out, 1, true)
		grad := rawFrom(t, tensor.Shape{2, 1}, []float32{10, 20})
		grads := op.Backward(grad, backend)
		checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{10, 10, 10, 20, 20, 20})
	})

	t.Run("negative dim", func(t *testing.T) {
		out := backend.SumDim(x, -1, false)
		op := NewSumDimOp(x, out, -1, false)
		grad := rawFrom(t, tensor.Shape{2}, []float32{1, 2})
		grads := op.Backward(grad, backend)
		checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{1, 1, 1, 2, 2, 2})
	})
}

func TestMeanDimOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	out := backend.MeanDim(x, 1, false)

	op := NewMeanDimOp(x, out, 1, false)
	grad := rawFrom(t, tensor.Shape{2}, []float32{3, 6})
	grads := op.Backward(grad, backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{1, 1, 1, 2, 2, 2})
}

func TestReshapeOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	out := backend.Reshape(x, tensor.Shape{3, 2})

	op := NewReshapeOp(x, out)
	grad := rawFrom(t, tensor.Shape{3, 2}, []float32{1, 2, 3, 4, 5, 6})
	grads := op.Backward(grad, backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
}

func TestTransposeOpBackward(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	out := backend.Transpose(x)

	op := NewTransposeOp(x, out)
	grad := rawFrom(t, tensor.Shape{3, 2}, []float32{1, 2, 3, 4, 5, 6})
	grads := op.Backward(grad, backend)

	// gradX[i,j] = grad[j,i].
	checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3}, []float32{1, 3, 5, 2, 4, 6})
}

func TestTransposeOpBackwardPermutation(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{2, 3, 4}, arange(24))
	out := backend.Transpose(x, 1, 2, 0)

	op := NewTransposeOp(x, out, 1, 2, 0)
	// Feeding the forward output back through Backward must invert the
	// permutation exactly.
	grads := op.Backward(out, backend)

	checkRaw(t, "gradX", grads[0], tensor.Shape{2, 3, 4}, arange(24))
}

func TestOpAccessors(t *testing.T) {
	backend := tensor.NewMockBackend()
	a := rawFrom(t, tensor.Shape{2}, []float32{1, 2})
	b := rawFrom(t, tensor.Shape{2}, []float32{3, 4})
	out := backend.Add(a, b)

	op := NewAddOp(a, b, out)
	inputs := op.Inputs()
	if len(inputs) != 2 || inputs[0] != a || inputs[1] != b {
		t.Errorf("Inputs() did not return the recorded operands")
	}
	if op.Output() != out {
		t.Errorf("Output() did not return the recorded result")
	}
}

func arange(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}
