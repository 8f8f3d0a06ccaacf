package lesson

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/rajagopal17/KDD19-tutorial/internal/autodiff"
	"github.com/rajagopal17/KDD19-tutorial/internal/config"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

func init() {
	Register(autogradLesson{})
}

// autogradLesson walks through recording computations on the gradient
// tape and taking gradients, ending with gradients through data-dependent
// control flow.
type autogradLesson struct{}

func (autogradLesson) Name() string { return "autograd" }

func (autogradLesson) Summary() string {
	return "Automatic differentiation: tapes, backward, detach, and control flow"
}

func (autogradLesson) Run(ctx context.Context, cfg config.Config, w io.Writer) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	backend := NewBackend()
	tape := backend.Tape()
	report := &Report{Lesson: "autograd"}

	// y = 2 * x.x for x = [0, 1, 2, 3]; dy/dx = 4x.
	fmt.Fprintln(w, "# A simple function: y = 2 * dot(x, x)")
	x := tensor.Arange[float32](0, 4, 1, backend).RequireGrad()
	fmt.Fprintf(w, "x          = %v\n", x.Data())

	tape.StartRecording()
	y := x.Mul(x).Sum().MulScalar(2)
	fmt.Fprintf(w, "y          = %v\n", y.Item())

	grads := autodiff.Backward(y, backend)
	gx := grads[x.Raw()].AsFloat32()
	fmt.Fprintf(w, "dy/dx      = %v\n", gx)
	fmt.Fprintf(w, "4x         = %v\n", x.MulScalar(4).Data())
	report.Checks = append(report.Checks, newCheck("dy/dx == 4x",
		toFloat64(x.MulScalar(4).Data()), toFloat64(gx), 1e-5))

	// Backward on a non-scalar seeds with ones, the gradient of y.Sum().
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Backward on a non-scalar: y = x * x")
	tape.Clear()
	y = x.Mul(x)
	grads = autodiff.Backward(y, backend)
	gx = grads[x.Raw()].AsFloat32()
	fmt.Fprintf(w, "d(sum y)/dx = %v\n", gx)
	report.Checks = append(report.Checks, newCheck("implicit sum gradient == 2x",
		toFloat64(x.MulScalar(2).Data()), toFloat64(gx), 1e-5))

	// Detaching y yields a constant u: z = u * x differentiates to u,
	// not to 3x².
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Detaching: z = detach(x*x) * x")
	tape.Clear()
	y = x.Mul(x)
	u := y.Detach()
	z := u.Mul(x)
	grads = autodiff.Backward(z, backend)
	gx = grads[x.Raw()].AsFloat32()
	fmt.Fprintf(w, "dz/dx      = %v\n", gx)
	fmt.Fprintf(w, "u          = %v\n", u.Data())
	report.Checks = append(report.Checks, newCheck("dz/dx == u",
		toFloat64(u.Data()), toFloat64(gx), 1e-5))

	// The tape still holds y = x*x, so the original graph is intact.
	grads = autodiff.Backward(y, backend)
	gx = grads[x.Raw()].AsFloat32()
	fmt.Fprintf(w, "dy/dx      = %v (the detached graph is untouched)\n", gx)
	report.Checks = append(report.Checks, newCheck("detach leaves dy/dx == 2x",
		toFloat64(x.MulScalar(2).Data()), toFloat64(gx), 1e-5))

	// Control flow: the loop and branch depend on values read from the
	// running computation; the recorded graph is still linear in a, so
	// df/da = f(a)/a.
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Gradients through control flow")
	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, draw := range []float64{rng.NormFloat64(), -abs(rng.NormFloat64())} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tape.Clear()
		a, err := tensor.FromSlice([]float32{float32(draw)}, tensor.Shape{1}, backend)
		if err != nil {
			return nil, err
		}
		c := controlFlow(a)
		grads = autodiff.Backward(c, backend)
		ga := grads[a.Raw()].AsFloat32()

		want := float64(c.Data()[0]) / draw
		fmt.Fprintf(w, "a = %9.5f  f(a) = %14.3f  df/da = %12.1f  f(a)/a = %12.1f\n",
			draw, c.Data()[0], ga[0], want)
		report.Checks = append(report.Checks, newCheck(
			fmt.Sprintf("df/da == f(a)/a at a=%.5f", draw),
			[]float64{want}, []float64{float64(ga[0])}, abs(want)*1e-4))
	}

	return report, nil
}

// controlFlow is the notebook's branching function: double
// b until its norm reaches 1000, then scale by 100 when the sum is
// non-positive. Norm and the recorded sum probe steer host-side control
// flow only; gradients never flow through them.
func controlFlow(a *tensor.Tensor[float32, Backend]) *tensor.Tensor[float32, Backend] {
	b := a.MulScalar(2)
	for b.Norm() < 1000 {
		b = b.MulScalar(2)
	}
	if b.Sum().Item() > 0 {
		return b
	}
	return b.MulScalar(100)
}
