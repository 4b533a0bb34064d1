package export

import (
	"strings"
	"testing"

	"github.com/san-kum/hopsim/internal/lattice"
)

func TestProfileToSVG(t *testing.T) {
	p, _ := lattice.Delta(5, 2)
	svg := ProfileToSVG(p, 400, 100, "")
	if !strings.HasPrefix(svg, `<?xml`) || !strings.HasSuffix(svg, "</svg>") {
		t.Error("output should be a complete SVG document")
	}
	if strings.Count(svg, "<rect") != 6 { // background + 5 bars
		t.Errorf("expected 6 rects, got %d", strings.Count(svg, "<rect"))
	}
}

func TestProfileToSVG_NegativeEntries(t *testing.T) {
	svg := ProfileToSVG(lattice.Distribution{0.6, -0.2, 0.6}, 300, 100, "")
	if !strings.Contains(svg, "#e05050") {
		t.Error("negative entries should be drawn in the warning fill")
	}
}

func TestProfileToSVG_Empty(t *testing.T) {
	if ProfileToSVG(nil, 100, 100, "") != "" {
		t.Error("empty distribution renders nothing")
	}
}

func TestSnapshotsToSVG(t *testing.T) {
	init, _ := lattice.Delta(10, 5)
	f, _ := lattice.NewField(init, 4)

	svg := SnapshotsToSVG(f, []int{0, 3, 99}, 0.02, 400, 100)
	if svg == "" {
		t.Fatal("expected output")
	}
	if strings.Count(svg, "translate") != 2 {
		t.Errorf("expected 2 panels (index 99 skipped), got %d", strings.Count(svg, "translate"))
	}

	if SnapshotsToSVG(f, []int{-1}, 0.02, 400, 100) != "" {
		t.Error("no valid indices renders nothing")
	}
}
