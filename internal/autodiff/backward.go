package autodiff

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// BackwardCapable is a backend whose operations land on a gradient
// tape. AutodiffBackend implements it.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the tape that recorded the forward pass.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (satisfies BackwardCapable).
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients of t with respect to every tensor it was
// computed from, seeding dL/dt with ones. For a scalar loss this is
// plain backpropagation; for a non-scalar t it is the gradient of
// t.Sum(), matching the usual implicit-sum convention.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	x := tensor.Ones[float32](tensor.Shape{2}, backend)
//	y := x.Mul(x)
//	grads := autodiff.Backward(y, backend)
//	_ = grads[x.Raw()] // dy/dx = 2x
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()
	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	seed, err := tensor.NewRaw(t.Shape(), t.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("backward: cannot create seed gradient: %v", err))
	}
	switch t.DType() {
	case tensor.Float32:
		data := seed.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := seed.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	}

	return tape.Backward(t.Raw(), seed, backend)
}
