package tensor

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Device identifies where tensor data lives. The tutorial ships a CPU
// backend only, but backends are addressed through the Backend interface so
// the device tag still travels with every tensor.
type Device int

// CPU is host memory.
const CPU Device = iota

// String returns the device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "cpu"
	default:
		return fmt.Sprintf("Device(%d)", int(d))
	}
}

// storage is the reference-counted byte buffer backing one or more
// RawTensor headers. Cloning a tensor shares storage and bumps the count;
// Release drops it. The count lets backends mutate buffers in place when
// they can prove exclusive ownership.
type storage struct {
	data []byte
	refs atomic.Int32
}

func newStorage(byteLen int) *storage {
	s := &storage{data: make([]byte, byteLen)}
	s.refs.Store(1)
	return s
}

func (s *storage) retain() {
	s.refs.Add(1)
}

func (s *storage) release() {
	if s.refs.Add(-1) == 0 {
		s.data = nil
	}
}

// RawTensor is the untyped tensor representation shared by backends and the
// autodiff tape. It couples a shape header to reference-counted storage.
// The typed Tensor wrapper restores compile-time element safety on top.
//
// Identity matters: the gradient tape keys recorded operations by
// *RawTensor pointer, so two headers over the same storage are distinct
// nodes in the computation graph.
type RawTensor struct {
	store   *storage
	shape   Shape
	strides []int
	dtype   DataType
	device  Device
}

// NewRaw allocates a zero-filled tensor with the given shape and dtype.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &RawTensor{
		store:   newStorage(shape.NumElements() * dtype.Size()),
		shape:   shape.Clone(),
		strides: ComputeStrides(shape),
		dtype:   dtype,
		device:  device,
	}, nil
}

// Shape returns the tensor shape. Callers must treat it as read-only.
func (t *RawTensor) Shape() Shape { return t.shape }

// Strides returns the row-major strides. Callers must treat it as read-only.
func (t *RawTensor) Strides() []int { return t.strides }

// DType returns the element type.
func (t *RawTensor) DType() DataType { return t.dtype }

// Device returns where the data lives.
func (t *RawTensor) Device() Device { return t.device }

// NumElements returns the element count.
func (t *RawTensor) NumElements() int { return t.shape.NumElements() }

// Bytes returns the raw backing bytes.
func (t *RawTensor) Bytes() []byte { return t.store.data }

// AsFloat32 views the buffer as a []float32. Panics on dtype mismatch.
func (t *RawTensor) AsFloat32() []float32 {
	if t.dtype != Float32 {
		panic(fmt.Sprintf("tensor: AsFloat32 on %s tensor", t.dtype))
	}
	n := t.NumElements()
	if n == 0 || len(t.store.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&t.store.data[0])), n)
}

// AsFloat64 views the buffer as a []float64. Panics on dtype mismatch.
func (t *RawTensor) AsFloat64() []float64 {
	if t.dtype != Float64 {
		panic(fmt.Sprintf("tensor: AsFloat64 on %s tensor", t.dtype))
	}
	n := t.NumElements()
	if n == 0 || len(t.store.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&t.store.data[0])), n)
}

// Clone returns a new header sharing this tensor's storage. The clone sees
// every write to the shared buffer; copy-on-write is the caller's job via
// IsUnique checks.
func (t *RawTensor) Clone() *RawTensor {
	t.store.retain()
	return &RawTensor{
		store:   t.store,
		shape:   t.shape.Clone(),
		strides: ComputeStrides(t.shape),
		dtype:   t.dtype,
		device:  t.device,
	}
}

// Release drops this header's reference to the storage. After the last
// reference is gone the buffer is freed; the header must not be used again.
func (t *RawTensor) Release() {
	t.store.release()
}

// IsUnique reports whether this header holds the only reference to its
// storage. Backends may mutate the buffer in place only when this is true.
func (t *RawTensor) IsUnique() bool {
	return t.store.refs.Load() == 1
}

// ForceNonUnique pins the storage as shared for the duration of a recorded
// operation, so in-place fast paths cannot clobber data the gradient tape
// still needs. The returned func undoes the pin:
//
//	defer t.ForceNonUnique()()
func (t *RawTensor) ForceNonUnique() func() {
	t.store.retain()
	return func() { t.store.release() }
}
