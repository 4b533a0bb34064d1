// Package lattice provides the probability primitives for 1D hopping
// simulations.
//
// The package defines the two core types:
//
//   - [Distribution]: probability vector over the sites of a 1D lattice
//   - [Field]: full time history, one Distribution per discrete time point
//
// A Field holds N sites and T time points. Column 0 is the caller-supplied
// initial condition; columns 1..T-1 are filled in by the solver package in
// strictly increasing time order. Total probability is conserved by the
// reflecting-boundary update as long as the caller respects the stability
// bound (see solver.StabilityLimit).
//
// # Thread Safety
//
// Fields are NOT thread-safe. A solver has exclusive write access to the
// field for the duration of an integration run.
package lattice
