package nn_test

import (
	"math"
	"testing"

	"github.com/rajagopal17/KDD19-tutorial/internal/autodiff"
	"github.com/rajagopal17/KDD19-tutorial/internal/backend/cpu"
	"github.com/rajagopal17/KDD19-tutorial/internal/nn"
	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

func floatEqual(a, b, epsilon float32) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

func TestParameter(t *testing.T) {
	backend := autodiff.New(cpu.New())

	data, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	param := nn.NewParameter("weight", data)

	if param.Name() != "weight" {
		t.Errorf("Name() = %s, want weight", param.Name())
	}
	if param.Tensor() != data {
		t.Error("Tensor() should return the wrapped tensor")
	}
	if param.Grad() != nil {
		t.Error("Grad() should start nil")
	}

	grad, err := tensor.FromSlice([]float32{0.1, 0.2, 0.3}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	param.SetGrad(grad)
	if param.Grad() != grad {
		t.Error("SetGrad() should store the gradient")
	}

	param.ZeroGrad()
	if param.Grad() != nil {
		t.Error("ZeroGrad() should clear the gradient")
	}
}

func TestLinear_Creation(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer := nn.NewLinear(10, 5, backend)

	if layer.InFeatures() != 10 {
		t.Errorf("InFeatures() = %d, want 10", layer.InFeatures())
	}
	if layer.OutFeatures() != 5 {
		t.Errorf("OutFeatures() = %d, want 5", layer.OutFeatures())
	}

	if got := layer.Weight().Tensor().Shape(); !got.Equal(tensor.Shape{5, 10}) {
		t.Errorf("weight shape = %v, want [5 10]", []int(got))
	}
	if got := layer.Bias().Tensor().Shape(); !got.Equal(tensor.Shape{5}) {
		t.Errorf("bias shape = %v, want [5]", []int(got))
	}

	for i, v := range layer.Bias().Tensor().Data() {
		if v != 0 {
			t.Errorf("bias[%d] = %f, want 0", i, v)
		}
	}

	if params := layer.Parameters(); len(params) != 2 {
		t.Errorf("Parameters() length = %d, want 2", len(params))
	}
}

func TestLinear_Forward(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer := nn.NewLinear(2, 2, backend)

	// W = [[1, 2], [3, 4]], b = [0.5, 1.0].
	copy(layer.Weight().Tensor().Data(), []float32{1, 2, 3, 4})
	copy(layer.Bias().Tensor().Data(), []float32{0.5, 1.0})

	input, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	output := layer.Forward(input)

	// y = x @ Wᵀ + b = [1+2, 3+4] + [0.5, 1.0] = [3.5, 8.0].
	want := []float32{3.5, 8.0}
	got := output.Data()
	for i, w := range want {
		if !floatEqual(got[i], w, 1e-5) {
			t.Errorf("output[%d] = %f, want %f", i, got[i], w)
		}
	}
	if !output.Shape().Equal(tensor.Shape{1, 2}) {
		t.Errorf("output shape = %v, want [1 2]", []int(output.Shape()))
	}
}

func TestLinear_ForwardBatch(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer := nn.NewLinear(3, 2, backend)
	input := tensor.Randn[float32](tensor.Shape{4, 3}, backend)

	output := layer.Forward(input)
	if !output.Shape().Equal(tensor.Shape{4, 2}) {
		t.Errorf("output shape = %v, want [4 2]", []int(output.Shape()))
	}
}

func TestLinear_ForwardValidation(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := nn.NewLinear(3, 2, backend)

	t.Run("not 2-d", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for 1-d input")
			}
		}()
		input, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
		layer.Forward(input)
	})

	t.Run("wrong feature count", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic for mismatched features")
			}
		}()
		input, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
		layer.Forward(input)
	})
}

func TestSequential(t *testing.T) {
	backend := autodiff.New(cpu.New())

	first := nn.NewLinear(3, 2, backend)
	second := nn.NewLinear(2, 1, backend)
	model := nn.NewSequential[*autodiff.AutodiffBackend[*cpu.CPUBackend]](first, second)

	if model.Len() != 2 {
		t.Errorf("Len() = %d, want 2", model.Len())
	}
	if model.Module(0) != first || model.Module(1) != second {
		t.Error("Module() should return the layers in order")
	}

	input := tensor.Randn[float32](tensor.Shape{4, 3}, backend)
	output := model.Forward(input)
	if !output.Shape().Equal(tensor.Shape{4, 1}) {
		t.Errorf("output shape = %v, want [4 1]", []int(output.Shape()))
	}

	if params := model.Parameters(); len(params) != 4 {
		t.Errorf("Parameters() length = %d, want 4", len(params))
	}
}

func TestSequential_Add(t *testing.T) {
	backend := autodiff.New(cpu.New())

	model := nn.NewSequential[*autodiff.AutodiffBackend[*cpu.CPUBackend]]()
	if model.Len() != 0 {
		t.Error("empty Sequential should have length 0")
	}

	model.Add(nn.NewLinear(10, 5, backend))
	model.Add(nn.NewLinear(5, 2, backend))
	if model.Len() != 2 {
		t.Errorf("Len() = %d after two Adds, want 2", model.Len())
	}
}

func TestMSELoss(t *testing.T) {
	backend := autodiff.New(cpu.New())

	mse := nn.NewMSELoss(backend)

	predictions, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	targets, _ := tensor.FromSlice([]float32{1, 1, 1}, tensor.Shape{3}, backend)

	loss := mse.Forward(predictions, targets)

	// mean(0 + 1 + 4) = 5/3.
	if got, want := loss.Item(), float32(5.0/3.0); !floatEqual(got, want, 1e-5) {
		t.Errorf("loss = %f, want %f", got, want)
	}
	if len(loss.Shape()) != 0 {
		t.Errorf("loss shape = %v, want scalar", []int(loss.Shape()))
	}
	if mse.Parameters() != nil {
		t.Error("MSELoss should have no parameters")
	}
}

func TestMSELoss_ShapeMismatchPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	mse := nn.NewMSELoss(backend)

	predictions, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2, 1}, backend)
	targets, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for mismatched shapes")
		}
	}()
	mse.Forward(predictions, targets)
}

func TestSquaredLoss(t *testing.T) {
	backend := autodiff.New(cpu.New())

	predictions, _ := tensor.FromSlice([]float32{3, 5}, tensor.Shape{2, 1}, backend)
	targets, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2, 1}, backend)

	loss := nn.SquaredLoss(predictions, targets)

	// (3-1)²/2 = 2, (5-2)²/2 = 4.5.
	want := []float32{2, 4.5}
	got := loss.Data()
	for i, w := range want {
		if !floatEqual(got[i], w, 1e-5) {
			t.Errorf("loss[%d] = %f, want %f", i, got[i], w)
		}
	}
}

func TestXavierBounds(t *testing.T) {
	backend := autodiff.New(cpu.New())

	w := nn.Xavier(100, 50, tensor.Shape{50, 100}, backend)

	bound := math.Sqrt(6.0 / 150.0)
	for i, v := range w.Data() {
		if math.Abs(float64(v)) > bound {
			t.Errorf("value[%d] = %f outside [-%f, %f]", i, v, bound, bound)
		}
	}
}

func TestInitNormal(t *testing.T) {
	backend := autodiff.New(cpu.New())

	w := tensor.Zeros[float32](tensor.Shape{1000}, backend)
	nn.InitNormal(w, 0.01)

	nonZero := 0
	for i, v := range w.Data() {
		if math.Abs(float64(v)) > 0.1 {
			t.Errorf("value[%d] = %f implausibly large for sigma 0.01", i, v)
		}
		if v != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("InitNormal left the tensor all zeros")
	}
}

func TestInitConstantAndZeros(t *testing.T) {
	backend := autodiff.New(cpu.New())

	w := tensor.Zeros[float32](tensor.Shape{4}, backend)
	nn.InitConstant(w, 2.5)
	for i, v := range w.Data() {
		if v != 2.5 {
			t.Errorf("after InitConstant value[%d] = %f, want 2.5", i, v)
		}
	}

	nn.InitZeros(w)
	for i, v := range w.Data() {
		if v != 0 {
			t.Errorf("after InitZeros value[%d] = %f, want 0", i, v)
		}
	}
}

func TestLinearStateDictRoundTrip(t *testing.T) {
	backend := autodiff.New(cpu.New())

	src := nn.NewLinear(2, 1, backend)
	copy(src.Weight().Tensor().Data(), []float32{2, -3.4})
	copy(src.Bias().Tensor().Data(), []float32{4.2})

	dst := nn.NewLinear(2, 1, backend)
	if err := dst.LoadStateDict(src.StateDict()); err != nil {
		t.Fatalf("LoadStateDict: %v", err)
	}

	if got := dst.Weight().Tensor().Data(); got[0] != 2 || got[1] != -3.4 {
		t.Errorf("weight = %v, want [2 -3.4]", got)
	}
	if got := dst.Bias().Tensor().Data(); got[0] != 4.2 {
		t.Errorf("bias = %v, want [4.2]", got)
	}
}

func TestLinearLoadStateDictErrors(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := nn.NewLinear(2, 1, backend)

	if err := layer.LoadStateDict(map[string]*tensor.RawTensor{}); err == nil {
		t.Error("expected error for missing weight")
	}

	wrong, _ := tensor.NewRaw(tensor.Shape{3, 3}, tensor.Float32, tensor.CPU)
	err := layer.LoadStateDict(map[string]*tensor.RawTensor{"weight": wrong})
	if err == nil {
		t.Error("expected error for wrong weight shape")
	}
}

func TestSequentialStateDictKeys(t *testing.T) {
	backend := autodiff.New(cpu.New())

	model := nn.NewSequential[*autodiff.AutodiffBackend[*cpu.CPUBackend]](
		nn.NewLinear(3, 2, backend),
		nn.NewLinear(2, 1, backend),
	)

	stateDict := model.StateDict()
	for _, key := range []string{"0.weight", "0.bias", "1.weight", "1.bias"} {
		if _, ok := stateDict[key]; !ok {
			t.Errorf("StateDict missing key %q", key)
		}
	}
	if len(stateDict) != 4 {
		t.Errorf("StateDict has %d entries, want 4", len(stateDict))
	}

	if err := model.LoadStateDict(stateDict); err != nil {
		t.Errorf("LoadStateDict round trip: %v", err)
	}
}
