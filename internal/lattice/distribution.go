package lattice

import "math"

// Distribution is a probability vector over the sites of a 1D lattice.
// Entry i is the probability mass sitting on site i.
type Distribution []float64

func (d Distribution) Clone() Distribution {
	c := make(Distribution, len(d))
	copy(c, d)
	return c
}

func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, v := range d {
		sum += v
	}
	return sum
}

func (d Distribution) IsValid() bool {
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (d Distribution) NonNegative() bool {
	for _, v := range d {
		if v < 0 {
			return false
		}
	}
	return true
}

// Normalize rescales the vector to unit mass in place. A zero vector is
// left untouched.
func (d Distribution) Normalize() Distribution {
	sum := d.Sum()
	if sum == 0 {
		return d
	}
	for i := range d {
		d[i] /= sum
	}
	return d
}

// Delta returns a unit point mass on the given site.
func Delta(n, site int) (Distribution, error) {
	if n < 2 {
		return nil, ErrTooFewSites
	}
	if site < 0 || site >= n {
		return nil, ErrSiteOutOfRange
	}
	d := make(Distribution, n)
	d[site] = 1.0
	return d, nil
}

// Uniform returns the flat distribution 1/n on every site. This is the
// stationary state of the reflecting-boundary hopping dynamics.
func Uniform(n int) (Distribution, error) {
	if n < 2 {
		return nil, ErrTooFewSites
	}
	d := make(Distribution, n)
	p := 1.0 / float64(n)
	for i := range d {
		d[i] = p
	}
	return d, nil
}

// FromWeights builds a normalized distribution from arbitrary non-negative
// weights.
func FromWeights(weights []float64) (Distribution, error) {
	if len(weights) < 2 {
		return nil, ErrTooFewSites
	}
	d := Distribution(weights).Clone()
	if !d.IsValid() || !d.NonNegative() {
		return nil, ErrBadDistribution
	}
	if d.Sum() == 0 {
		return nil, ErrBadDistribution
	}
	return d.Normalize(), nil
}
