package metrics

import "github.com/san-kum/hopsim/internal/lattice"

// Positivity counts probability entries that dip below zero. Any nonzero
// count is the signature of a violated stability bound (k*dt > 0.5).
type Positivity struct {
	name       string
	violations int
}

func NewPositivity() *Positivity {
	return &Positivity{name: "negative_cells"}
}

func (p *Positivity) Name() string { return p.name }

func (p *Positivity) Observe(col lattice.Distribution, t float64) {
	for _, v := range col {
		if v < 0 {
			p.violations++
		}
	}
}

func (p *Positivity) Value() float64 {
	return float64(p.violations)
}

func (p *Positivity) Reset() {
	p.violations = 0
}
