package experiment

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/hopsim/internal/config"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"euler", "parallel"} {
		if _, err := r.GetStepper(name); err != nil {
			t.Errorf("stepper %s: %v", name, err)
		}
	}
	if _, err := r.GetStepper("rk4"); err == nil {
		t.Error("expected error for unknown stepper")
	}
	if len(r.ListSteppers()) != 2 {
		t.Errorf("expected 2 steppers, got %d", len(r.ListSteppers()))
	}
	if len(r.DefaultMetrics()) == 0 {
		t.Error("expected default metrics")
	}
}

func TestExperimentRun(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sites = 20
	cfg.Steps = 50
	cfg.Init.Site = 9

	exp := New(cfg)
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("run before setup should fail")
	}

	if err := exp.Setup(NewRegistry()); err != nil {
		t.Fatalf("setup: %v", err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Field.Sites() != 20 || result.Field.Steps() != 50 {
		t.Fatalf("field shape: %dx%d", result.Field.Sites(), result.Field.Steps())
	}
	if drift := result.Metrics["mass_drift"]; math.Abs(drift) > 1e-12 {
		t.Errorf("mass drift: %v", drift)
	}
	if result.Metrics["negative_cells"] != 0 {
		t.Errorf("negative cells on stable run: %v", result.Metrics["negative_cells"])
	}
	if result.Metrics["spread"] <= 0 {
		t.Errorf("spread should have grown, got %v", result.Metrics["spread"])
	}
}

func TestExperiment_UnknownStepper(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Stepper = "implicit"
	if err := New(cfg).Setup(NewRegistry()); err == nil {
		t.Error("expected error for unknown stepper")
	}
}
