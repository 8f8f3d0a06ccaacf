package lesson

import (
	"context"
	"fmt"
	"io"

	"github.com/rajagopal17/KDD19-tutorial/internal/config"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

func init() {
	Register(ndarrayLesson{})
}

// ndarrayLesson tours the tensor substrate: creation, arithmetic,
// broadcasting, shape manipulation and reductions.
type ndarrayLesson struct{}

func (ndarrayLesson) Name() string { return "ndarray" }

func (ndarrayLesson) Summary() string {
	return "Data manipulation with tensors: creation, arithmetic, broadcasting, reductions"
}

func (ndarrayLesson) Run(ctx context.Context, _ config.Config, w io.Writer) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	backend := NewBackend()
	report := &Report{Lesson: "ndarray"}

	fmt.Fprintln(w, "# Data manipulation")
	fmt.Fprintln(w)

	x := tensor.Arange[float32](0, 12, 1, backend)
	fmt.Fprintf(w, "x = arange(12)         -> %s\n", x)
	fmt.Fprintf(w, "x.NumElements()        -> %d\n", x.NumElements())

	x = x.Reshape(3, 4)
	fmt.Fprintf(w, "x.Reshape(3, 4)        -> %s\n", x)

	zeros := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
	ones := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	fmt.Fprintf(w, "zeros (2,3)            -> %s\n", zeros)
	fmt.Fprintf(w, "ones (2,3)             -> %s\n", ones)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Element-wise arithmetic")
	a, err := tensor.FromSlice([]float32{1, 2, 4, 8}, tensor.Shape{4}, backend)
	if err != nil {
		return nil, err
	}
	b, err := tensor.FromSlice([]float32{2, 2, 2, 2}, tensor.Shape{4}, backend)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "a + b                  -> %v\n", a.Add(b).Data())
	fmt.Fprintf(w, "a - b                  -> %v\n", a.Sub(b).Data())
	fmt.Fprintf(w, "a * b                  -> %v\n", a.Mul(b).Data())
	fmt.Fprintf(w, "a / b                  -> %v\n", a.Div(b).Data())
	fmt.Fprintf(w, "exp(b)                 -> %v\n", b.Exp().Data())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Broadcasting")
	col := tensor.Arange[float32](0, 3, 1, backend).Reshape(3, 1)
	row := tensor.Arange[float32](0, 2, 1, backend).Reshape(1, 2)
	sum := col.Add(row)
	fmt.Fprintf(w, "col (3,1) + row (1,2)  -> %s\n", sum)
	report.Checks = append(report.Checks, newCheck("broadcast col+row",
		[]float64{0, 1, 1, 2, 2, 3}, toFloat64(sum.Data()), 0))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Reductions")
	fmt.Fprintf(w, "x.Sum()                -> %v\n", x.Sum().Item())
	fmt.Fprintf(w, "x.Mean()               -> %v\n", x.Mean().Item())
	fmt.Fprintf(w, "x.SumDim(0)            -> %v\n", x.SumDim(0, false).Data())
	fmt.Fprintf(w, "x.SumDim(1, keepDim)   -> %s\n", x.SumDim(1, true))
	report.Checks = append(report.Checks, newCheck("sum over rows",
		[]float64{12, 15, 18, 21}, toFloat64(x.SumDim(0, false).Data()), 0))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Matrix product and transpose")
	xt := x.T()
	prod := x.MatMul(xt)
	fmt.Fprintf(w, "x.T                    -> shape %v\n", []int(xt.Shape()))
	fmt.Fprintf(w, "x @ x.T                -> %s\n", prod)
	report.Checks = append(report.Checks, newCheck("x @ x.T diagonal",
		[]float64{14, 126, 366}, []float64{
			float64(prod.At(0, 0)), float64(prod.At(1, 1)), float64(prod.At(2, 2)),
		}, 0))

	return report, nil
}

func toFloat64(data []float32) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}
