// Package autodiff implements reverse-mode automatic differentiation as
// a backend decorator.
//
// AutodiffBackend wraps any tensor.Backend and records every operation
// it executes on a GradientTape. Calling Backward replays the tape in
// reverse, applying each operation's chain rule to produce gradients
// for all tensors the requested output depends on.
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//
//	x := tensor.Ones[float32](tensor.Shape{3}, backend).RequireGrad()
//	y := x.Mul(x).Sum()
//
//	grads := autodiff.Backward(y, backend)
//	_ = grads[x.Raw()] // dy/dx = 2x
//
// A training loop starts recording once, then per batch runs the
// forward pass, calls Backward, steps the optimizer, and clears the
// tape.
package autodiff

import (
	"github.com/rajagopal17/KDD19-tutorial/internal/autodiff/ops"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Verify that the decorator still satisfies the backend contract.
var _ tensor.Backend = (*AutodiffBackend[*tensor.MockBackend])(nil)

// AutodiffBackend decorates a Backend with gradient tracking. It
// satisfies tensor.Backend itself, so tensors built on it run their
// math on the wrapped backend while the tape watches.
type AutodiffBackend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New wraps a backend with a fresh gradient tape. Recording starts off;
// call Tape().StartRecording() before the forward pass.
func New[B tensor.Backend](backend B) *AutodiffBackend[B] {
	return &AutodiffBackend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for recording control and Backward.
func (b *AutodiffBackend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend.
func (b *AutodiffBackend[B]) Inner() B {
	return b.inner
}

// Name returns the decorated backend name, e.g. "Autodiff(cpu)".
func (b *AutodiffBackend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the wrapped backend's device.
func (b *AutodiffBackend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// Add runs element-wise addition on the wrapped backend and records it.
//
// The ForceNonUnique pins keep the wrapped backend from reusing an
// operand's buffer for the result. Recorded tensors must stay exactly
// as they were during the forward pass, otherwise backward formulas
// that reread saved inputs or outputs would see corrupted values.
// Every delegating method below pins its operands the same way.
func (b *AutodiffBackend[B]) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Add(a, c)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddOp(a, c, result))
	}
	return result
}

// Sub runs element-wise subtraction and records it.
func (b *AutodiffBackend[B]) Sub(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Sub(a, c)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubOp(a, c, result))
	}
	return result
}

// Mul runs element-wise multiplication and records it.
func (b *AutodiffBackend[B]) Mul(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Mul(a, c)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulOp(a, c, result))
	}
	return result
}

// Div runs element-wise division and records it.
func (b *AutodiffBackend[B]) Div(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Div(a, c)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewDivOp(a, c, result))
	}
	return result
}

// AddScalar adds a host scalar and records it.
func (b *AutodiffBackend[B]) AddScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.AddScalar(t, s)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddScalarOp(t, result, s))
	}
	return result
}

// SubScalar subtracts a host scalar and records it.
func (b *AutodiffBackend[B]) SubScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.SubScalar(t, s)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubScalarOp(t, result, s))
	}
	return result
}

// MulScalar multiplies by a host scalar and records it.
func (b *AutodiffBackend[B]) MulScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.MulScalar(t, s)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulScalarOp(t, result, s))
	}
	return result
}

// DivScalar divides by a host scalar and records it.
func (b *AutodiffBackend[B]) DivScalar(t *tensor.RawTensor, s float64) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.DivScalar(t, s)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewDivScalarOp(t, result, s))
	}
	return result
}

// Exp applies e**x element-wise and records it.
func (b *AutodiffBackend[B]) Exp(t *tensor.RawTensor) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Exp(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewExpOp(t, result))
	}
	return result
}

// Log applies the natural logarithm element-wise and records it.
func (b *AutodiffBackend[B]) Log(t *tensor.RawTensor) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Log(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewLogOp(t, result))
	}
	return result
}

// Sqrt applies the square root element-wise and records it.
func (b *AutodiffBackend[B]) Sqrt(t *tensor.RawTensor) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Sqrt(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSqrtOp(t, result))
	}
	return result
}

// MatMul multiplies two matrices and records it.
func (b *AutodiffBackend[B]) MatMul(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.MatMul(a, c)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMatMulOp(a, c, result))
	}
	return result
}

// Sum reduces to a 0-d scalar and records it.
func (b *AutodiffBackend[B]) Sum(t *tensor.RawTensor) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Sum(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSumOp(t, result))
	}
	return result
}

// Mean reduces to the 0-d scalar mean and records it.
func (b *AutodiffBackend[B]) Mean(t *tensor.RawTensor) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Mean(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMeanOp(t, result))
	}
	return result
}

// SumDim sums along one dimension and records it.
func (b *AutodiffBackend[B]) SumDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.SumDim(t, dim, keepDim)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSumDimOp(t, result, dim, keepDim))
	}
	return result
}

// MeanDim averages along one dimension and records it.
func (b *AutodiffBackend[B]) MeanDim(t *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.MeanDim(t, dim, keepDim)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMeanDimOp(t, result, dim, keepDim))
	}
	return result
}

// Reshape changes the shape and records it.
//
// Even though a reshape moves no values, it must land on the tape: a
// parameter reshaped for broadcasting is a different RawTensor, and
// without the recorded link its gradient would never reach the original
// parameter the optimizer knows about. The same holds for Transpose.
func (b *AutodiffBackend[B]) Reshape(t *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Reshape(t, shape)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewReshapeOp(t, result))
	}
	return result
}

// Transpose permutes dimensions and records it.
func (b *AutodiffBackend[B]) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Transpose(t, axes...)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewTransposeOp(t, result, axes...))
	}
	return result
}
