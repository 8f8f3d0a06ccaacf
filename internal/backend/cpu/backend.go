// Package cpu implements the host-memory backend.
//
// Element-wise operations run over flat slices and reuse the input buffer
// when the reference count proves exclusive ownership. Matmul splits rows
// across goroutines and picks its inner kernel from the CPU feature set
// detected at startup (see features.go).
package cpu

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/parallel"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Verify that CPUBackend implements the Backend interface.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend executes tensor operations on the host.
type CPUBackend struct {
	pool parallel.Config
}

// New creates a CPU backend with parallelism sized to the machine.
func New() *CPUBackend {
	return &CPUBackend{pool: parallel.DefaultConfig()}
}

// Name returns "cpu".
func (c *CPUBackend) Name() string { return "cpu" }

// Device returns tensor.CPU.
func (c *CPUBackend) Device() tensor.Device { return tensor.CPU }

// newRaw allocates an output tensor, panicking on invalid shapes: by the
// time a backend runs, shapes have been validated by the caller.
func newRaw(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	out, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("cpu: %v", err))
	}
	return out
}

func checkSameDType(op string, a, b *tensor.RawTensor) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("cpu: %s: mixed dtypes %s and %s", op, a.DType(), b.DType()))
	}
}
