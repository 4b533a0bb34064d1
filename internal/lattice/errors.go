package lattice

import "errors"

// Domain errors for lattice construction and integration.
var (
	// ErrTooFewSites indicates a lattice with fewer than two sites; the
	// boundary update needs at least one interior neighbor on each edge.
	ErrTooFewSites = errors.New("lattice: fewer than two sites")

	// ErrNoTimePoints indicates a field with no time points at all.
	ErrNoTimePoints = errors.New("lattice: field needs at least one time point")

	// ErrSiteOutOfRange indicates a site index outside [0, N).
	ErrSiteOutOfRange = errors.New("lattice: site index out of range")

	// ErrShapeMismatch indicates a distribution whose length does not match
	// the lattice it is used with.
	ErrShapeMismatch = errors.New("lattice: distribution length does not match lattice")

	// ErrBadDistribution indicates an initial condition that is not a valid
	// probability vector (negative, NaN/Inf, or zero total mass).
	ErrBadDistribution = errors.New("lattice: invalid probability distribution")

	// ErrNegativeRate indicates a hop rate below zero.
	ErrNegativeRate = errors.New("lattice: hop rate must be >= 0")

	// ErrBadTimestep indicates a non-positive timestep.
	ErrBadTimestep = errors.New("lattice: timestep must be > 0")
)
