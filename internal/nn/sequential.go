package nn

import (
	"fmt"
	"strings"

	"github.com/rajagopal17/KDD19-tutorial/internal/tensor"
)

// Sequential chains modules so each output feeds the next input. The
// lessons use it the way the original notebooks stack layers:
//
//	model := nn.NewSequential[Backend](nn.NewLinear(2, 1, backend))
//	predictions := model.Forward(features)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential builds a Sequential from the given modules, in order.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{modules: modules}
}

// Forward applies every module in sequence.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns the parameters of all modules, in module order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module, allowing incremental model construction.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at index, panicking when out of range.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic(fmt.Sprintf("nn: Sequential.Module index %d out of range [0,%d)", index, len(s.modules)))
	}
	return s.modules[index]
}

// StateDict collects every module's state under index-prefixed keys
// ("0.weight", "0.bias", "1.weight", ...) so names never collide.
func (s *Sequential[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	for i, module := range s.modules {
		for name, raw := range module.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = raw
		}
	}
	return stateDict
}

// LoadStateDict routes index-prefixed entries back to their modules.
func (s *Sequential[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	for i, module := range s.modules {
		prefix := fmt.Sprintf("%d.", i)
		sub := make(map[string]*tensor.RawTensor)
		for key, raw := range stateDict {
			if strings.HasPrefix(key, prefix) {
				sub[strings.TrimPrefix(key, prefix)] = raw
			}
		}
		if len(sub) == 0 {
			continue
		}
		if err := module.LoadStateDict(sub); err != nil {
			return fmt.Errorf("nn: loading module %d: %w", i, err)
		}
	}
	return nil
}
