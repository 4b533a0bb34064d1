// Package analysis computes distribution-level observables for hopping
// runs: moments, entropy, and distance to the uniform stationary state.
package analysis

import (
	"math"

	"github.com/san-kum/hopsim/internal/lattice"
)

// Mean returns the probability-weighted mean site index.
func Mean(p lattice.Distribution) float64 {
	mass := p.Sum()
	if mass == 0 {
		return 0
	}
	m := 0.0
	for i, v := range p {
		m += float64(i) * v
	}
	return m / mass
}

// Variance returns the probability-weighted variance of the site index.
func Variance(p lattice.Distribution) float64 {
	mass := p.Sum()
	if mass == 0 {
		return 0
	}
	mean := Mean(p)
	v := 0.0
	for i, x := range p {
		d := float64(i) - mean
		v += d * d * x
	}
	return v / mass
}

// Entropy returns the Shannon entropy in nats. Zero-probability sites
// contribute nothing; negative entries (unstable runs) are skipped.
func Entropy(p lattice.Distribution) float64 {
	h := 0.0
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log(v)
		}
	}
	return h
}

// DistanceFromUniform returns the L1 distance between p and the flat
// distribution over the same number of sites.
func DistanceFromUniform(p lattice.Distribution) float64 {
	n := len(p)
	if n == 0 {
		return 0
	}
	flat := 1.0 / float64(n)
	d := 0.0
	for _, v := range p {
		d += math.Abs(v - flat)
	}
	return d
}

// MixingStep returns the first time index whose column is within eps of
// uniform in L1 distance, or -1 if the run never mixes that far.
func MixingStep(f *lattice.Field, eps float64) int {
	for t := 0; t < f.Steps(); t++ {
		if DistanceFromUniform(f.At(t)) <= eps {
			return t
		}
	}
	return -1
}
