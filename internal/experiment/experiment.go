package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/hopsim/internal/config"
	"github.com/san-kum/hopsim/internal/sim"
)

// Experiment glues a config to a simulator: it resolves the stepper, builds
// the initial column, and runs with the default metric set.
type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(registry *Registry) error {
	name := e.cfg.Stepper
	if name == "" {
		name = "euler"
	}
	stepper, err := registry.GetStepper(name)
	if err != nil {
		return err
	}
	e.simulator = sim.New(stepper)
	for _, m := range registry.DefaultMetrics() {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	init, err := e.cfg.InitialDistribution()
	if err != nil {
		return nil, err
	}

	return e.simulator.Run(ctx, init, sim.Config{
		Rate:          e.cfg.Rate,
		Dt:            e.cfg.Dt,
		Steps:         e.cfg.Steps,
		ValidateState: true,
	})
}

// Simulator exposes the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}
