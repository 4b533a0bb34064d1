package metrics

import (
	"math"

	"github.com/san-kum/hopsim/internal/lattice"
)

// Mass tracks the worst-case drift of total probability away from the
// initial mass. Should stay at floating-point noise for any stable run.
type Mass struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMass() *Mass {
	return &Mass{name: "mass_drift"}
}

func (m *Mass) Name() string { return m.name }

func (m *Mass) Observe(p lattice.Distribution, t float64) {
	sum := p.Sum()
	if m.samples == 0 {
		m.initial = sum
	}
	m.samples++

	drift := math.Abs(sum - m.initial)
	if drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *Mass) Value() float64 {
	return m.maxDrift
}

func (m *Mass) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
