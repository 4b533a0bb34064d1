package solver

import (
	"math"

	"github.com/san-kum/hopsim/internal/lattice"
)

// StabilityLimit returns the largest timestep for which the explicit scheme
// keeps probabilities non-negative. The binding constraint is the interior
// "stay" coefficient 1 - 2*k*dt, which must remain in [0, 1].
func StabilityLimit(k float64) float64 {
	if k <= 0 {
		return math.Inf(1)
	}
	return 0.5 / k
}

// IsStable reports whether k*dt satisfies the interior stability bound.
func IsStable(k, dt float64) bool {
	return k*dt <= 0.5
}

// Integrate fills columns 1..T-1 of the field from column 0 using the given
// stepper, strictly in increasing time order. Column 0 is never touched.
// The field is returned for convenience; mutation is in place.
//
// Shape and parameter preconditions are checked up front. The stability
// bound k*dt <= 0.5 is deliberately NOT enforced: an unstable configuration
// is a caller error that shows up as negative or diverging probabilities,
// and is reported by Diagnose rather than by changing the update rule.
func Integrate(f *lattice.Field, s Stepper, k, dt float64) (*lattice.Field, error) {
	if err := Validate(f, k, dt); err != nil {
		return nil, err
	}
	for t := 1; t < f.Steps(); t++ {
		s.Step(f.At(t), f.At(t-1), k, dt)
	}
	return f, nil
}

// Validate checks the integration preconditions without running anything.
func Validate(f *lattice.Field, k, dt float64) error {
	if f.Sites() < 2 {
		return lattice.ErrTooFewSites
	}
	if f.Steps() < 1 {
		return lattice.ErrNoTimePoints
	}
	if k < 0 {
		return lattice.ErrNegativeRate
	}
	if dt <= 0 {
		return lattice.ErrBadTimestep
	}
	return nil
}
