package cpu

import "github.com/rajagopal17/KDD19-tutorial/internal/tensor"

// Flat-slice kernels for the binary operations. The inplace and *To
// variants assume identical shapes; the *Broadcast variants walk output
// coordinates and map them back through broadcast strides. All of them are
// generic over the two float dtypes, so the compiler emits one tight loop
// per element type.

func addInplace[T tensor.DType](a, b []T) {
	for i := range a {
		a[i] += b[i]
	}
}

func subInplace[T tensor.DType](a, b []T) {
	for i := range a {
		a[i] -= b[i]
	}
}

func mulInplace[T tensor.DType](a, b []T) {
	for i := range a {
		a[i] *= b[i]
	}
}

func divInplace[T tensor.DType](a, b []T) {
	for i := range a {
		a[i] /= b[i]
	}
}

func addTo[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subTo[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulTo[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divTo[T tensor.DType](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func addBroadcast[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := tensor.ComputeStrides(outShape)
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	for i := range dst {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] + b[sourceIndex(i, outStrides, bStrides)]
	}
}

func subBroadcast[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := tensor.ComputeStrides(outShape)
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	for i := range dst {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] - b[sourceIndex(i, outStrides, bStrides)]
	}
}

func mulBroadcast[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := tensor.ComputeStrides(outShape)
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	for i := range dst {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] * b[sourceIndex(i, outStrides, bStrides)]
	}
}

func divBroadcast[T tensor.DType](dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := tensor.ComputeStrides(outShape)
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)
	for i := range dst {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] / b[sourceIndex(i, outStrides, bStrides)]
	}
}

// broadcastStrides maps inShape onto outShape: missing leading dimensions
// and dimensions of size 1 get stride 0, so every output coordinate along
// them reads the same source element.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	offset := outDim - len(inShape)
	inStrides := tensor.ComputeStrides(inShape)

	strides := make([]int, outDim)
	for i := range strides {
		inIdx := i - offset
		if inIdx < 0 || inShape[inIdx] == 1 {
			strides[i] = 0
			continue
		}
		strides[i] = inStrides[inIdx]
	}
	return strides
}

// sourceIndex converts a flat output offset to the flat offset in a source
// operand, given the output strides and the operand's broadcast strides.
func sourceIndex(outIdx int, outStrides, srcStrides []int) int {
	flat := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flat += coord * srcStrides[i]
	}
	return flat
}
