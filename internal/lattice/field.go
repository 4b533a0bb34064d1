package lattice

// Field is the full time history of a hopping run: one Distribution per
// discrete time point, over a fixed lattice of N sites. Column 0 holds the
// initial condition and is never rewritten after construction.
type Field struct {
	cols []Distribution
}

// NewField allocates a field of n sites by steps time points and seeds
// column 0 with a copy of init.
func NewField(init Distribution, steps int) (*Field, error) {
	if len(init) < 2 {
		return nil, ErrTooFewSites
	}
	if steps < 1 {
		return nil, ErrNoTimePoints
	}
	if !init.IsValid() || !init.NonNegative() {
		return nil, ErrBadDistribution
	}
	cols := make([]Distribution, steps)
	cols[0] = init.Clone()
	for t := 1; t < steps; t++ {
		cols[t] = make(Distribution, len(init))
	}
	return &Field{cols: cols}, nil
}

func (f *Field) Sites() int { return len(f.cols[0]) }
func (f *Field) Steps() int { return len(f.cols) }

// At returns the column at time index t without copying. The returned slice
// aliases the field's storage.
func (f *Field) At(t int) Distribution {
	return f.cols[t]
}

// Column returns an independent copy of the column at time index t.
func (f *Field) Column(t int) Distribution {
	return f.cols[t].Clone()
}

// Last returns the final column without copying.
func (f *Field) Last() Distribution {
	return f.cols[len(f.cols)-1]
}

// Times returns the physical time of every column for the given timestep.
func (f *Field) Times(dt float64) []float64 {
	times := make([]float64, len(f.cols))
	for t := range times {
		times[t] = float64(t) * dt
	}
	return times
}

// Rows returns the columns as a plain [][]float64, aliasing the field's
// storage. Used by storage and export code.
func (f *Field) Rows() [][]float64 {
	rows := make([][]float64, len(f.cols))
	for t, c := range f.cols {
		rows[t] = c
	}
	return rows
}

// FieldFromRows rebuilds a field from stored rows, e.g. when re-plotting a
// persisted run. Every row must have the same length.
func FieldFromRows(rows [][]float64) (*Field, error) {
	if len(rows) < 1 {
		return nil, ErrNoTimePoints
	}
	n := len(rows[0])
	if n < 2 {
		return nil, ErrTooFewSites
	}
	cols := make([]Distribution, len(rows))
	for t, r := range rows {
		if len(r) != n {
			return nil, ErrShapeMismatch
		}
		cols[t] = Distribution(r).Clone()
	}
	return &Field{cols: cols}, nil
}
