package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/hopsim/internal/lattice"
	"github.com/san-kum/hopsim/internal/solver"
)

type Simulator struct {
	stepper   solver.Stepper
	metrics   []Metric
	observers []Observer
}

func New(stepper solver.Stepper) *Simulator {
	return &Simulator{
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates the master equation from init over cfg.Steps time points.
// The simulator owns the field it allocates; init is copied into column 0
// and never mutated.
func (s *Simulator) Run(ctx context.Context, init lattice.Distribution, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	f, err := lattice.NewField(init, cfg.Steps)
	if err != nil {
		return nil, err
	}
	if err := solver.Validate(f, cfg.Rate, cfg.Dt); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		Field:   f,
		Times:   f.Times(cfg.Dt),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	s.emit(f.At(0), 0)

	for t := 1; t < cfg.Steps; t++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.stepper.Step(f.At(t), f.At(t-1), cfg.Rate, cfg.Dt)

		if cfg.ValidateState && !f.At(t).IsValid() {
			result.Errors = append(result.Errors,
				fmt.Errorf("invalid column at step %d (t=%.4f)", t, result.Times[t]))
			break
		}

		s.emit(f.At(t), result.Times[t])
		result.StepsTaken++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Diagnostic = solver.Diagnose(f).String()

	return result, nil
}

func (s *Simulator) emit(p lattice.Distribution, t float64) {
	for _, m := range s.metrics {
		m.Observe(p, t)
	}
	for _, o := range s.observers {
		o.OnColumn(p, t)
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Rate < 0 {
		return fmt.Errorf("rate must be non-negative, got %f", cfg.Rate)
	}
	if cfg.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", cfg.Steps)
	}
	return nil
}
