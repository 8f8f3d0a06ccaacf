package tensor

import (
	"math"
	"testing"
)

// The operation methods are exercised against MockBackend; the real CPU
// backend has its own tests that compare against the same expectations.

func near32(t *testing.T, got, want float32, msg string) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func TestElementWiseOps(t *testing.T) {
	be := NewMockBackend()
	a, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, be)
	b, _ := FromSlice([]float32{10, 20, 30, 40}, Shape{2, 2}, be)

	near32(t, a.Add(b).At(1, 1), 44, "add")
	near32(t, b.Sub(a).At(0, 1), 18, "sub")
	near32(t, a.Mul(b).At(1, 0), 90, "mul")
	near32(t, b.Div(a).At(1, 1), 10, "div")
}

func TestBroadcastOps(t *testing.T) {
	be := NewMockBackend()
	m, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, be)
	row, _ := FromSlice([]float32{10, 20, 30}, Shape{3}, be)

	got := m.Add(row)
	if !got.Shape().Equal(Shape{2, 3}) {
		t.Fatalf("broadcast add shape = %v", got.Shape())
	}
	near32(t, got.At(0, 0), 11, "broadcast add [0,0]")
	near32(t, got.At(1, 2), 36, "broadcast add [1,2]")

	col, _ := FromSlice([]float32{100, 200}, Shape{2, 1}, be)
	got = m.Add(col)
	near32(t, got.At(0, 2), 103, "column broadcast [0,2]")
	near32(t, got.At(1, 0), 204, "column broadcast [1,0]")
}

func TestScalarOps(t *testing.T) {
	be := NewMockBackend()
	x, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, be)

	near32(t, x.AddScalar(10).At(1), 12, "add scalar")
	near32(t, x.SubScalar(1).At(2), 2, "sub scalar")
	near32(t, x.MulScalar(2).At(0), 2, "mul scalar")
	near32(t, x.DivScalar(2).At(1), 1, "div scalar")
}

func TestMathOps(t *testing.T) {
	be := NewMockBackend()
	x, _ := FromSlice([]float64{0, 1, 2}, Shape{3}, be)

	e := x.Exp()
	if math.Abs(e.At(1)-math.E) > 1e-12 {
		t.Errorf("Exp(1) = %v, want e", e.At(1))
	}

	y, _ := FromSlice([]float64{1, math.E, 4}, Shape{3}, be)
	near := func(got, want float64, msg string) {
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", msg, got, want)
		}
	}
	near(y.Log().At(1), 1, "log e")
	near(y.Sqrt().At(2), 2, "sqrt 4")
}

func TestMatMul(t *testing.T) {
	be := NewMockBackend()
	a, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, be)
	b, _ := FromSlice([]float32{7, 8, 9, 10, 11, 12}, Shape{3, 2}, be)

	c := a.MatMul(b)
	if !c.Shape().Equal(Shape{2, 2}) {
		t.Fatalf("matmul shape = %v, want [2 2]", c.Shape())
	}
	near32(t, c.At(0, 0), 58, "c[0,0]")
	near32(t, c.At(0, 1), 64, "c[0,1]")
	near32(t, c.At(1, 0), 139, "c[1,0]")
	near32(t, c.At(1, 1), 154, "c[1,1]")
}

func TestFullReductions(t *testing.T) {
	be := NewMockBackend()
	x, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, be)

	s := x.Sum()
	if len(s.Shape()) != 0 {
		t.Fatalf("Sum shape = %v, want scalar", s.Shape())
	}
	near32(t, s.Item(), 21, "sum")

	m := x.Mean()
	if len(m.Shape()) != 0 {
		t.Fatalf("Mean shape = %v, want scalar", m.Shape())
	}
	near32(t, m.Item(), 3.5, "mean")
}

func TestDimReductions(t *testing.T) {
	be := NewMockBackend()
	x, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, be)

	rows := x.SumDim(0, false)
	if !rows.Shape().Equal(Shape{3}) {
		t.Fatalf("SumDim(0) shape = %v, want [3]", rows.Shape())
	}
	near32(t, rows.At(0), 5, "col sum 0")
	near32(t, rows.At(2), 9, "col sum 2")

	cols := x.SumDim(1, true)
	if !cols.Shape().Equal(Shape{2, 1}) {
		t.Fatalf("SumDim(1, keep) shape = %v, want [2 1]", cols.Shape())
	}
	near32(t, cols.At(0, 0), 6, "row sum 0")
	near32(t, cols.At(1, 0), 15, "row sum 1")

	// Negative dim counts from the end.
	last := x.MeanDim(-1, false)
	if !last.Shape().Equal(Shape{2}) {
		t.Fatalf("MeanDim(-1) shape = %v, want [2]", last.Shape())
	}
	near32(t, last.At(0), 2, "row mean 0")
	near32(t, last.At(1), 5, "row mean 1")
}

func TestReshape(t *testing.T) {
	be := NewMockBackend()
	x := Arange[float32](0, 12, 1, be)

	m := x.Reshape(3, 4)
	if !m.Shape().Equal(Shape{3, 4}) {
		t.Fatalf("reshape shape = %v, want [3 4]", m.Shape())
	}
	near32(t, m.At(1, 0), 4, "reshape [1,0]")
	near32(t, m.At(2, 3), 11, "reshape [2,3]")
}

func TestTranspose(t *testing.T) {
	be := NewMockBackend()
	x, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, be)

	y := x.Transpose()
	if !y.Shape().Equal(Shape{3, 2}) {
		t.Fatalf("transpose shape = %v, want [3 2]", y.Shape())
	}
	near32(t, y.At(0, 1), 4, "t[0,1]")
	near32(t, y.At(2, 0), 3, "t[2,0]")

	// Explicit axes on a 3-d tensor.
	z := Arange[float32](0, 24, 1, be).Reshape(2, 3, 4).Transpose(1, 0, 2)
	if !z.Shape().Equal(Shape{3, 2, 4}) {
		t.Fatalf("transpose(1,0,2) shape = %v, want [3 2 4]", z.Shape())
	}
	near32(t, z.At(1, 0, 2), 6, "z[1,0,2]")
	near32(t, z.At(0, 1, 3), 15, "z[0,1,3]")
}
