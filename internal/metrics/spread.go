package metrics

import (
	"github.com/san-kum/hopsim/internal/analysis"
	"github.com/san-kum/hopsim/internal/lattice"
)

// Spread reports the variance of the most recent column about its mean
// site. For a delta initial condition under stable diffusion this grows
// roughly linearly in time before the boundaries saturate it.
type Spread struct {
	name string
	last float64
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(col lattice.Distribution, t float64) {
	s.last = analysis.Variance(col)
}

func (s *Spread) Value() float64 {
	return s.last
}

func (s *Spread) Reset() {
	s.last = 0
}
