package solver

import (
	"fmt"
	"math"

	"github.com/san-kum/hopsim/internal/lattice"
)

// Diagnostic summarizes the numerical health of an integrated field.
type Diagnostic struct {
	MassDrift     float64 // max |sum(col t) - sum(col 0)| over all t
	NegativeCells int     // entries below zero anywhere in the field
	Invalid       bool    // NaN or Inf anywhere in the field
}

func (d Diagnostic) Healthy() bool {
	return !d.Invalid && d.NegativeCells == 0 && d.MassDrift < 1e-9
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("mass drift %.3e, %d negative cells, invalid=%v",
		d.MassDrift, d.NegativeCells, d.Invalid)
}

// Diagnose scans an integrated field for the symptoms of a violated
// stability bound: lost mass, negative probabilities, NaN/Inf. It is a
// post-hoc check only and never modifies the field.
func Diagnose(f *lattice.Field) Diagnostic {
	var d Diagnostic
	mass0 := f.At(0).Sum()
	for t := 0; t < f.Steps(); t++ {
		col := f.At(t)
		if !col.IsValid() {
			d.Invalid = true
			continue
		}
		drift := math.Abs(col.Sum() - mass0)
		if drift > d.MassDrift {
			d.MassDrift = drift
		}
		for _, v := range col {
			if v < 0 {
				d.NegativeCells++
			}
		}
	}
	return d
}
