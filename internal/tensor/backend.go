package tensor

// Backend executes tensor operations on RawTensors. The typed Tensor API
// delegates every operation here, which lets the autodiff decorator wrap any
// backend and record the call graph without the tensor layer knowing.
//
// Contracts shared by all implementations:
//   - Operations allocate a fresh output unless the input buffer is
//     provably unowned (IsUnique), in which case element-wise ops may
//     reuse it.
//   - Binary ops broadcast following NumPy alignment rules.
//   - Sum and Mean reduce to a 0-d scalar of the same dtype.
//   - Shape or dtype violations panic: they are programming errors in a
//     lesson, not runtime conditions to recover from.
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise operations against a host scalar. The scalar is given
	// as float64 and converted to the tensor's dtype.
	AddScalar(t *RawTensor, s float64) *RawTensor
	SubScalar(t *RawTensor, s float64) *RawTensor
	MulScalar(t *RawTensor, s float64) *RawTensor
	DivScalar(t *RawTensor, s float64) *RawTensor

	// Element-wise math functions.
	Exp(t *RawTensor) *RawTensor
	Log(t *RawTensor) *RawTensor
	Sqrt(t *RawTensor) *RawTensor

	// MatMul multiplies two 2-d tensors: [m,k] x [k,n] -> [m,n].
	MatMul(a, b *RawTensor) *RawTensor

	// Full reductions to a 0-d scalar.
	Sum(t *RawTensor) *RawTensor
	Mean(t *RawTensor) *RawTensor

	// Reductions along one dimension. Negative dim counts from the end.
	SumDim(t *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(t *RawTensor, dim int, keepDim bool) *RawTensor

	// Shape manipulation. Reshape requires an element-count match;
	// Transpose permutes dimensions (empty axes reverses them all).
	Reshape(t *RawTensor, shape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Name identifies the backend, e.g. "cpu".
	Name() string
	// Device reports where this backend's tensors live.
	Device() Device
}
