package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

func mustNewRaw(shape Shape, dtype DataType, device Device) *RawTensor {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return raw
}

// Zeros returns a tensor of the given shape filled with zeros.
func Zeros[T DType, B Backend](shape Shape, backend B) *Tensor[T, B] {
	raw := mustNewRaw(shape, dataTypeOf[T](), backend.Device())
	return &Tensor[T, B]{raw: raw, backend: backend}
}

// Ones returns a tensor of the given shape filled with ones.
func Ones[T DType, B Backend](shape Shape, backend B) *Tensor[T, B] {
	return Full[T](shape, 1, backend)
}

// Full returns a tensor of the given shape with every element set to value.
func Full[T DType, B Backend](shape Shape, value T, backend B) *Tensor[T, B] {
	t := Zeros[T](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn returns a tensor with elements drawn from the standard normal
// distribution, using the shared math/rand source. Lessons that need
// reproducible draws build their data through a seeded *rand.Rand instead
// (see the data package).
func Randn[T DType, B Backend](shape Shape, backend B) *Tensor[T, B] {
	t := Zeros[T](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.NormFloat64())
	}
	return t
}

// Rand returns a tensor with elements drawn uniformly from [0, 1).
func Rand[T DType, B Backend](shape Shape, backend B) *Tensor[T, B] {
	t := Zeros[T](shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.Float64())
	}
	return t
}

// Arange returns a 1-d tensor with values start, start+step, ... up to but
// excluding stop, matching the half-open convention of NumPy's arange.
func Arange[T DType, B Backend](start, stop, step float64, backend B) *Tensor[T, B] {
	if step == 0 {
		panic("tensor: Arange step must be non-zero")
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		panic(fmt.Sprintf("tensor: empty Arange range [%v, %v) with step %v", start, stop, step))
	}
	t := Zeros[T](Shape{n}, backend)
	data := t.Data()
	for i := range data {
		data[i] = T(start + float64(i)*step)
	}
	return t
}

// Linspace returns a 1-d tensor of num evenly spaced values from start to
// stop inclusive. num must be at least 2 so both endpoints exist.
func Linspace[T DType, B Backend](start, stop float64, num int, backend B) *Tensor[T, B] {
	if num < 2 {
		panic(fmt.Sprintf("tensor: Linspace needs at least 2 points, got %d", num))
	}
	step := (stop - start) / float64(num-1)
	t := Zeros[T](Shape{num}, backend)
	data := t.Data()
	for i := range data {
		data[i] = T(start + float64(i)*step)
	}
	data[num-1] = T(stop)
	return t
}

// Eye returns the n-by-n identity matrix.
func Eye[T DType, B Backend](n int, backend B) *Tensor[T, B] {
	t := Zeros[T](Shape{n, n}, backend)
	data := t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return t
}
