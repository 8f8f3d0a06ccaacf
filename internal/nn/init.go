package nn

import (
	"math"
	"math/rand"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Xavier creates a float32 tensor with Xavier/Glorot uniform values,
// U(-√(6/(fanIn+fanOut)), +√(6/(fanIn+fanOut))). This keeps activation
// variance roughly constant across layers and is the default weight
// initialization for Linear.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	raw, err := tensor.NewRaw(shape, tensor.Float32, backend.Device())
	if err != nil {
		panic(err)
	}
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32((rand.Float64()*2 - 1) * bound)
	}
	return tensor.New[float32, B](raw, backend)
}

// InitNormal refills a parameter tensor with draws from N(0, sigma²),
// matching the notebooks' init.Normal(sigma=0.01) start for regression
// weights.
func InitNormal[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], sigma float64) {
	data := t.Data()
	for i := range data {
		data[i] = T(rand.NormFloat64() * sigma)
	}
}

// InitXavier refills a parameter tensor with Xavier/Glorot uniform
// values for the given fan sizes.
func InitXavier[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], fanIn, fanOut int) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	data := t.Data()
	for i := range data {
		data[i] = T((rand.Float64()*2 - 1) * bound)
	}
}

// InitConstant sets every element of a parameter tensor to value.
func InitConstant[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], value T) {
	data := t.Data()
	for i := range data {
		data[i] = value
	}
}

// InitZeros zeroes a parameter tensor, the usual bias start.
func InitZeros[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) {
	var zero T
	InitConstant(t, zero)
}

// InitOnes sets every element of a parameter tensor to one.
func InitOnes[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) {
	InitConstant(t, T(1))
}
