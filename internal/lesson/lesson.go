// Package lesson contains the tutorial itself: registered, runnable
// renditions of the original notebooks.
//
// Each lesson narrates its steps to an io.Writer the way a notebook
// renders cell output, and returns a Report with the numeric results so
// tests and the run store can work with them. Lessons build their own
// framework stack per run: a CPU backend wrapped in the autodiff
// decorator, exactly how the notebooks import and use theirs.
package lesson

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rajagopal17/KDD19-tutorial/internal/autodiff"
	"github.com/rajagopal17/KDD19-tutorial/internal/backend/cpu"
	"github.com/rajagopal17/KDD19-tutorial/internal/config"
)

// Backend is the stack every lesson runs on: CPU kernels under the
// recording decorator.
type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

// NewBackend builds a fresh lesson backend with recording off.
func NewBackend() Backend {
	return autodiff.New(cpu.New())
}

// Lesson is one runnable tutorial unit.
type Lesson interface {
	// Name is the registry key, e.g. "linreg-scratch".
	Name() string

	// Summary is the one-line description shown by the list command.
	Summary() string

	// Run executes the lesson, narrating to w, and returns its numeric
	// results. Run checks ctx between epochs and returns ctx.Err() on
	// cancellation.
	Run(ctx context.Context, cfg config.Config, w io.Writer) (*Report, error)
}

// Report is the machine-readable outcome of a lesson run.
type Report struct {
	Lesson string `json:"lesson"`

	// EpochLoss holds the mean training loss after each epoch.
	EpochLoss []float64 `json:"epoch_loss,omitempty"`

	// Weights and Bias are the learned parameters of a regression
	// lesson, with their distance from the generating coefficients
	// when those are known.
	Weights     []float64 `json:"weights,omitempty"`
	Bias        float64   `json:"bias,omitempty"`
	WeightError []float64 `json:"weight_error,omitempty"`
	BiasError   float64   `json:"bias_error,omitempty"`

	// Checks are the in-lesson gradient comparisons against closed
	// forms.
	Checks []Check `json:"checks,omitempty"`
}

// Check compares a computed result against its closed form.
type Check struct {
	Name   string    `json:"name"`
	Want   []float64 `json:"want"`
	Got    []float64 `json:"got"`
	MaxErr float64   `json:"max_abs_error"`
	Pass   bool      `json:"pass"`
}

// Passed reports whether every check in the report passed.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

// newCheck compares got against want element-wise within tolerance.
func newCheck(name string, want, got []float64, tolerance float64) Check {
	maxErr := 0.0
	for i := range want {
		var g float64
		if i < len(got) {
			g = got[i]
		}
		if diff := abs(want[i] - g); diff > maxErr {
			maxErr = diff
		}
	}
	return Check{
		Name:   name,
		Want:   want,
		Got:    got,
		MaxErr: maxErr,
		Pass:   len(want) == len(got) && maxErr <= tolerance,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

var registry = map[string]Lesson{}

// Register adds a lesson to the registry. Registration happens in
// package init functions; a duplicate name is a programming error and
// panics immediately.
func Register(l Lesson) {
	if _, exists := registry[l.Name()]; exists {
		panic(fmt.Sprintf("lesson: %q registered twice", l.Name()))
	}
	registry[l.Name()] = l
}

// Get looks a lesson up by name.
func Get(name string) (Lesson, error) {
	l, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("lesson: unknown lesson %q (run `kdd19 list`)", name)
	}
	return l, nil
}

// All returns every registered lesson sorted by name.
func All() []Lesson {
	lessons := make([]Lesson, 0, len(registry))
	for _, l := range registry {
		lessons = append(lessons, l)
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].Name() < lessons[j].Name() })
	return lessons
}
