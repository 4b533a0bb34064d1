package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/hopsim/internal/lattice"
)

const (
	graphHeight = 10
	graphWidth  = 80
)

// Snapshots renders the field at the requested time indices, one asciigraph
// per index, captioned with the physical time. Out-of-range indices are
// skipped silently.
func Snapshots(f *lattice.Field, indices []int, dt float64) string {
	var b strings.Builder
	for _, t := range indices {
		if t < 0 || t >= f.Steps() {
			continue
		}
		col := f.At(t)
		graph := asciigraph.Plot(col,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(fmt.Sprintf("p(site) at t=%.3f (step %d)", float64(t)*dt, t)),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}
