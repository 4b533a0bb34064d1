package sim

import "github.com/san-kum/hopsim/internal/lattice"

// Metric accumulates a scalar over the columns of a run.
type Metric interface {
	Name() string
	Observe(p lattice.Distribution, t float64)
	Value() float64
	Reset()
}

// Observer is called once per computed column, in time order. The slice
// aliases the field's storage and must not be retained or mutated.
type Observer interface {
	OnColumn(p lattice.Distribution, t float64)
}

type Config struct {
	Rate          float64 // hop rate k, 1/time
	Dt            float64 // timestep, time
	Steps         int     // number of time points including the initial one
	ValidateState bool    // stop early on NaN/Inf columns
}

type Result struct {
	Field      *lattice.Field
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Diagnostic string
	Errors     []error
}
