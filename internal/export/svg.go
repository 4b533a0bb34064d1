// Package export renders probability distributions to SVG for inclusion in
// notes and reports.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/hopsim/internal/lattice"
)

// ProfileToSVG draws a single distribution as a bar chart. One bar per
// site, heights scaled to the tallest site. Negative entries (unstable
// runs) are drawn below the baseline in a different fill.
func ProfileToSVG(p lattice.Distribution, width, height int, fill string) string {
	if len(p) == 0 {
		return ""
	}
	if fill == "" {
		fill = "#00c080"
	}

	max := 0.0
	for _, v := range p {
		if v > max {
			max = v
		}
		if -v > max {
			max = -v
		}
	}
	if max == 0 {
		max = 1
	}

	barW := float64(width) / float64(len(p))
	base := float64(height) * 0.9
	span := float64(height) * 0.8

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, v := range p {
		h := v / max * span
		x := float64(i) * barW
		if h >= 0 {
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, base-h, barW*0.9, h, fill))
		} else {
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#e05050"/>
`, x, base, barW*0.9, -h))
		}
	}

	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#404040"/>
`, base, width, base))
	sb.WriteString("</svg>")
	return sb.String()
}

// SnapshotsToSVG stacks the requested time indices of a field vertically,
// one profile panel per index.
func SnapshotsToSVG(f *lattice.Field, indices []int, dt float64, width, panelHeight int) string {
	panels := make([]string, 0, len(indices))
	for _, t := range indices {
		if t < 0 || t >= f.Steps() {
			continue
		}
		panels = append(panels, ProfileToSVG(f.At(t), width, panelHeight, ""))
	}
	if len(panels) == 0 {
		return ""
	}

	total := panelHeight * len(panels)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
`, width, total))
	for i, panel := range panels {
		// Strip the inner XML declaration and re-anchor the panel.
		body := panel[strings.Index(panel, "<svg"):]
		sb.WriteString(fmt.Sprintf(`<g transform="translate(0,%d)">
`, i*panelHeight))
		sb.WriteString(body)
		sb.WriteString("\n</g>\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}
