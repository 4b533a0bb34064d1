package viz

import (
	"strings"

	"github.com/san-kum/hopsim/internal/lattice"
)

// Eighth-height block characters, lowest to tallest.
var blocks = []rune(" ▁▂▃▄▅▆▇█")

// Bars renders a distribution as a single row of unicode block characters,
// scaled so the tallest site uses the full block. Wider lattices than the
// given width are downsampled by taking the max over each bucket.
func Bars(p lattice.Distribution, width int) string {
	if len(p) == 0 || width <= 0 {
		return ""
	}

	cells := make([]float64, width)
	if len(p) <= width {
		cells = cells[:len(p)]
		copy(cells, p)
	} else {
		per := float64(len(p)) / float64(width)
		for i := 0; i < width; i++ {
			lo := int(float64(i) * per)
			hi := int(float64(i+1) * per)
			if hi > len(p) {
				hi = len(p)
			}
			for j := lo; j < hi; j++ {
				if p[j] > cells[i] {
					cells[i] = p[j]
				}
			}
		}
	}

	max := 0.0
	for _, v := range cells {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return strings.Repeat(" ", len(cells))
	}

	var b strings.Builder
	for _, v := range cells {
		if v < 0 {
			v = 0
		}
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
