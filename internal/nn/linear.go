package nn

import (
	"fmt"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Linear is a fully connected layer computing y = x @ Wᵀ + b.
//
// Shapes:
//   - input x: [batch, inFeatures]
//   - weight W: [outFeatures, inFeatures]
//   - bias b: [outFeatures]
//   - output y: [batch, outFeatures]
//
// Weights start with Xavier/Glorot uniform values and the bias with
// zeros; use the Init helpers to re-initialize, e.g. InitNormal for the
// N(0, 0.01²) start the regression lessons use.
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B]
	backend     B
}

// NewLinear creates a Linear layer with freshly initialized parameters.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	weight := NewParameter("weight",
		Xavier(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, backend))
	bias := NewParameter("bias",
		tensor.Zeros[float32](tensor.Shape{outFeatures}, backend))

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// Forward computes y = x @ Wᵀ + b for a [batch, inFeatures] input.
//
// The transpose and the bias reshape go through the backend so they
// land on the tape; without that, gradients would stop at the
// transposed copy instead of reaching the stored parameters.
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("nn: Linear.Forward expects 2-d input [batch, features], got %v", []int(shape)))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("nn: Linear.Forward expects %d input features, got %d", l.inFeatures, shape[1]))
	}

	output := input.MatMul(l.weight.Tensor().Transpose())
	return output.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns [weight, bias].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter ([outFeatures, inFeatures]).
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter ([outFeatures]).
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the input width.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns {"weight": W, "bias": b}.
func (l *Linear[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"weight": l.weight.Tensor().Raw(),
		"bias":   l.bias.Tensor().Raw(),
	}
}

// LoadStateDict copies saved weight and bias values into the layer,
// validating shapes first. The parameter tensors keep their identity so
// an optimizer holding them stays valid.
func (l *Linear[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if err := l.loadParam(stateDict, "weight", l.weight, tensor.Shape{l.outFeatures, l.inFeatures}); err != nil {
		return err
	}
	return l.loadParam(stateDict, "bias", l.bias, tensor.Shape{l.outFeatures})
}

func (l *Linear[B]) loadParam(stateDict map[string]*tensor.RawTensor, name string, p *Parameter[B], want tensor.Shape) error {
	raw, ok := stateDict[name]
	if !ok {
		return fmt.Errorf("nn: state dict is missing %q", name)
	}
	if !raw.Shape().Equal(want) {
		return fmt.Errorf("nn: %s shape mismatch: got %v, want %v", name, []int(raw.Shape()), []int(want))
	}
	if raw.DType() != tensor.Float32 {
		return fmt.Errorf("nn: %s dtype mismatch: got %s, want float32", name, raw.DType())
	}
	copy(p.Tensor().Data(), raw.AsFloat32())
	return nil
}
