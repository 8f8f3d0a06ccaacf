package ops

import (
	"testing"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

func TestReduceBroadcastSameShape(t *testing.T) {
	backend := tensor.NewMockBackend()
	grad := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	got := reduceBroadcast(grad, tensor.Shape{2, 3}, backend)
	checkRaw(t, "same shape", got, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	if got == grad {
		t.Errorf("reduceBroadcast returned the gradient itself; want a fresh header")
	}
}

func TestReduceBroadcastToScalar(t *testing.T) {
	backend := tensor.NewMockBackend()
	grad := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	got := reduceBroadcast(grad, tensor.Shape{}, backend)
	checkRaw(t, "to scalar", got, tensor.Shape{}, []float32{21})
}

func TestReduceBroadcastDropsLeadingDims(t *testing.T) {
	backend := tensor.NewMockBackend()

	grad := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	got := reduceBroadcast(grad, tensor.Shape{3}, backend)
	checkRaw(t, "one leading dim", got, tensor.Shape{3}, []float32{5, 7, 9})

	grad3 := rawFrom(t, tensor.Shape{2, 2, 3}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	got3 := reduceBroadcast(grad3, tensor.Shape{3}, backend)
	checkRaw(t, "two leading dims", got3, tensor.Shape{3}, []float32{22, 26, 30})
}

func TestReduceBroadcastCollapsesSizeOneDims(t *testing.T) {
	backend := tensor.NewMockBackend()
	grad := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	got := reduceBroadcast(grad, tensor.Shape{2, 1}, backend)
	checkRaw(t, "size-1 dim", got, tensor.Shape{2, 1}, []float32{6, 15})
}

func TestReduceBroadcastMismatchPanics(t *testing.T) {
	backend := tensor.NewMockBackend()
	grad := rawFrom(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for non-broadcast target shape")
		}
	}()
	reduceBroadcast(grad, tensor.Shape{4}, backend)
}

func TestNegate(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := rawFrom(t, tensor.Shape{3}, []float32{1, -2, 3})

	checkRaw(t, "negate", negate(x, backend), tensor.Shape{3}, []float32{-1, 2, -3})
}

func TestExpand(t *testing.T) {
	backend := tensor.NewMockBackend()

	scalar := rawFrom(t, tensor.Shape{}, []float32{5})
	checkRaw(t, "scalar", expand(scalar, tensor.Shape{2, 2}, backend),
		tensor.Shape{2, 2}, []float32{5, 5, 5, 5})

	row := rawFrom(t, tensor.Shape{3}, []float32{1, 2, 3})
	checkRaw(t, "row", expand(row, tensor.Shape{2, 3}, backend),
		tensor.Shape{2, 3}, []float32{1, 2, 3, 1, 2, 3})

	col := rawFrom(t, tensor.Shape{2, 1}, []float32{10, 20})
	checkRaw(t, "column", expand(col, tensor.Shape{2, 3}, backend),
		tensor.Shape{2, 3}, []float32{10, 10, 10, 20, 20, 20})
}

func TestUnsqueeze(t *testing.T) {
	tests := []struct {
		shape tensor.Shape
		dim   int
		want  tensor.Shape
	}{
		{tensor.Shape{2, 3}, 0, tensor.Shape{1, 2, 3}},
		{tensor.Shape{2, 3}, 1, tensor.Shape{2, 1, 3}},
		{tensor.Shape{2, 3}, 2, tensor.Shape{2, 3, 1}},
		{tensor.Shape{}, 0, tensor.Shape{1}},
	}
	for _, tc := range tests {
		if got := unsqueeze(tc.shape, tc.dim); !got.Equal(tc.want) {
			t.Errorf("unsqueeze(%v, %d) = %v, want %v", []int(tc.shape), tc.dim, []int(got), []int(tc.want))
		}
	}
}
