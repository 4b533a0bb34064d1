package lattice

import "testing"

func TestNewField(t *testing.T) {
	init, _ := Delta(5, 2)
	f, err := NewField(init, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Sites() != 5 || f.Steps() != 10 {
		t.Fatalf("expected 5x10, got %dx%d", f.Sites(), f.Steps())
	}
	if f.At(0)[2] != 1.0 {
		t.Error("column 0 should hold the initial condition")
	}
	for i, v := range f.At(1) {
		if v != 0 {
			t.Errorf("column 1 site %d should be zero, got %f", i, v)
		}
	}
}

func TestNewField_CopiesInit(t *testing.T) {
	init, _ := Delta(5, 2)
	f, _ := NewField(init, 3)
	init[2] = 0.0
	if f.At(0)[2] != 1.0 {
		t.Error("field should own a copy of the initial column")
	}
}

func TestNewField_Errors(t *testing.T) {
	short := Distribution{1.0}
	if _, err := NewField(short, 5); err != ErrTooFewSites {
		t.Errorf("expected ErrTooFewSites, got %v", err)
	}
	init, _ := Delta(5, 2)
	if _, err := NewField(init, 0); err != ErrNoTimePoints {
		t.Errorf("expected ErrNoTimePoints, got %v", err)
	}
	if _, err := NewField(Distribution{1, -1}, 5); err != ErrBadDistribution {
		t.Errorf("expected ErrBadDistribution, got %v", err)
	}
}

func TestColumn_Copies(t *testing.T) {
	init, _ := Delta(4, 1)
	f, _ := NewField(init, 2)
	c := f.Column(0)
	c[1] = 0.0
	if f.At(0)[1] != 1.0 {
		t.Error("Column should return an independent copy")
	}
}

func TestTimes(t *testing.T) {
	init, _ := Delta(3, 1)
	f, _ := NewField(init, 4)
	times := f.Times(0.5)
	want := []float64{0, 0.5, 1.0, 1.5}
	for i, v := range times {
		if v != want[i] {
			t.Errorf("times[%d]: got %f, want %f", i, v, want[i])
		}
	}
}

func TestFieldFromRows(t *testing.T) {
	rows := [][]float64{{1, 0, 0}, {0.9, 0.1, 0}}
	f, err := FieldFromRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Sites() != 3 || f.Steps() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", f.Sites(), f.Steps())
	}
	if f.At(1)[0] != 0.9 {
		t.Errorf("got %f, want 0.9", f.At(1)[0])
	}

	if _, err := FieldFromRows([][]float64{{1, 0}, {1}}); err != ErrShapeMismatch {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := FieldFromRows(nil); err != ErrNoTimePoints {
		t.Errorf("expected ErrNoTimePoints, got %v", err)
	}
}
