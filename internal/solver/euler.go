package solver

import "github.com/san-kum/hopsim/internal/lattice"

// Stepper advances a distribution by one timestep. Implementations must
// compute next purely from prev: the two buffers are distinct, so no site's
// update can observe another site's already-updated value.
type Stepper interface {
	Step(next, prev lattice.Distribution, k, dt float64)
}

// Euler is the explicit forward-Euler discretization of the 1D diffusion
// master equation with symmetric nearest-neighbor hop rate k and reflecting
// boundaries:
//
//	dp_i/dt = k*(p_{i-1} + p_{i+1} - 2*p_i)
//
// Edge sites exchange flux with their single interior neighbor only, so
// probability cannot leak off the lattice.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(next, prev lattice.Distribution, k, dt float64) {
	n := len(prev)
	c := k * dt
	next[0] = prev[0] + c*(prev[1]-prev[0])
	for i := 1; i < n-1; i++ {
		next[i] = prev[i] + c*(prev[i-1]+prev[i+1]-2*prev[i])
	}
	next[n-1] = prev[n-1] + c*(prev[n-2]-prev[n-1])
}
