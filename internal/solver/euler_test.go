package solver

import (
	"math"
	"testing"

	"github.com/san-kum/hopsim/internal/lattice"
)

func integrateDelta(t *testing.T, s Stepper, n, site, steps int, k, dt float64) *lattice.Field {
	t.Helper()
	init, err := lattice.Delta(n, site)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	f, err := lattice.NewField(init, steps)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if _, err := Integrate(f, s, k, dt); err != nil {
		t.Fatalf("integrate: %v", err)
	}
	return f
}

func TestBoundaryReflection_ThreeSites(t *testing.T) {
	// N=3, k=5, dt=0.02, init [1,0,0]: one step moves exactly k*dt of the
	// mass to the neighbor and nothing reaches site 2.
	f := integrateDelta(t, NewEuler(), 3, 0, 2, 5.0, 0.02)

	col := f.At(1)
	if math.Abs(col[0]-0.9) > 1e-15 {
		t.Errorf("site 0: got %.17f, want 0.9", col[0])
	}
	if math.Abs(col[1]-0.1) > 1e-15 {
		t.Errorf("site 1: got %.17f, want 0.1", col[1])
	}
	if col[2] != 0 {
		t.Errorf("site 2: got %.17f, want 0", col[2])
	}
}

func TestMassConservation(t *testing.T) {
	f := integrateDelta(t, NewEuler(), 80, 39, 100, 5.0, 0.02)

	for i := 0; i < f.Steps(); i++ {
		sum := f.At(i).Sum()
		if math.Abs(sum-1.0) > 1e-12 {
			t.Fatalf("step %d: mass %.15f drifted from 1", i, sum)
		}
	}
}

func TestNonNegativityUnderStabilityBound(t *testing.T) {
	// k*dt = 0.5 exactly: the interior stay coefficient hits zero but
	// never goes negative.
	f := integrateDelta(t, NewEuler(), 20, 10, 200, 5.0, 0.1)

	for i := 0; i < f.Steps(); i++ {
		if !f.At(i).NonNegative() {
			t.Fatalf("step %d: negative probability under stable k*dt", i)
		}
	}
}

func TestZeroRateFreezesDistribution(t *testing.T) {
	init, _ := lattice.FromWeights([]float64{0.3, 0.1, 0.25, 0.15, 0.2})
	f, _ := lattice.NewField(init, 50)
	if _, err := Integrate(f, NewEuler(), 0.0, 0.02); err != nil {
		t.Fatalf("integrate: %v", err)
	}

	for i := 1; i < f.Steps(); i++ {
		for j, v := range f.At(i) {
			if v != f.At(0)[j] {
				t.Fatalf("step %d site %d: %v != %v (k=0 must be bit-for-bit identity)",
					i, j, v, f.At(0)[j])
			}
		}
	}
}

func TestSymmetry_CenteredDelta(t *testing.T) {
	// Odd lattice, delta at the center: the dynamics are mirror symmetric,
	// so every column must be too.
	const n = 21
	f := integrateDelta(t, NewEuler(), n, n/2, 300, 5.0, 0.02)

	for i := 0; i < f.Steps(); i++ {
		col := f.At(i)
		for j := 0; j < n/2; j++ {
			if col[j] != col[n-1-j] {
				t.Fatalf("step %d: col[%d]=%v != col[%d]=%v", i, j, col[j], n-1-j, col[n-1-j])
			}
		}
	}
}

func TestReferenceScenario(t *testing.T) {
	// Reference defaults: 80 sites, delta at 39, k=5, dt=0.02, 100 points.
	f := integrateDelta(t, NewEuler(), 80, 39, 100, 5.0, 0.02)

	// Column 0 untouched.
	for i, v := range f.At(0) {
		want := 0.0
		if i == 39 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("column 0 site %d modified: %v", i, v)
		}
	}

	// Variance broadens monotonically while the packet is far from the walls.
	prev := -1.0
	for i := 0; i < f.Steps(); i++ {
		v := variance(f.At(i))
		if v <= prev {
			t.Fatalf("step %d: variance %.9f did not grow (prev %.9f)", i, v, prev)
		}
		prev = v
	}
}

func TestLongRunApproachesUniform(t *testing.T) {
	const n = 11
	f := integrateDelta(t, NewEuler(), n, n/2, 2000, 5.0, 0.02)

	flat := 1.0 / float64(n)
	for i, v := range f.Last() {
		if math.Abs(v-flat) > 1e-6 {
			t.Errorf("site %d: got %.9f, want %.9f (stationary state is uniform)", i, v, flat)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := integrateDelta(t, NewEuler(), 40, 20, 100, 5.0, 0.02)
	b := integrateDelta(t, NewEuler(), 40, 20, 100, 5.0, 0.02)

	for i := 0; i < a.Steps(); i++ {
		for j := range a.At(i) {
			if a.At(i)[j] != b.At(i)[j] {
				t.Fatalf("step %d site %d: reruns differ", i, j)
			}
		}
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := integrateDelta(t, NewEuler(), 10000, 5000, 20, 5.0, 0.02)
	parallel := integrateDelta(t, NewParallelEuler(), 10000, 5000, 20, 5.0, 0.02)

	for i := 0; i < serial.Steps(); i++ {
		for j := range serial.At(i) {
			if serial.At(i)[j] != parallel.At(i)[j] {
				t.Fatalf("step %d site %d: parallel diverged from serial", i, j)
			}
		}
	}
}

// variance about the mean site, unnormalized helper for tests.
func variance(p lattice.Distribution) float64 {
	mean := 0.0
	for i, v := range p {
		mean += float64(i) * v
	}
	out := 0.0
	for i, v := range p {
		d := float64(i) - mean
		out += d * d * v
	}
	return out
}
