package experiment

import (
	"fmt"

	"github.com/san-kum/hopsim/internal/metrics"
	"github.com/san-kum/hopsim/internal/sim"
	"github.com/san-kum/hopsim/internal/solver"
)

type Registry struct {
	steppers map[string]func() solver.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers: make(map[string]func() solver.Stepper),
	}

	r.steppers["euler"] = func() solver.Stepper { return solver.NewEuler() }
	r.steppers["parallel"] = func() solver.Stepper { return solver.NewParallelEuler() }

	return r
}

func (r *Registry) GetStepper(name string) (solver.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown stepper: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	return names
}

// DefaultMetrics is the standard per-run diagnostic set.
func (r *Registry) DefaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewMass(),
		metrics.NewPositivity(),
		metrics.NewSpread(),
	}
}
