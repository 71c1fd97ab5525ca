package viz

import (
	"strings"
	"testing"

	"github.com/jsperk/chaoslab/internal/logistic"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if !strings.ContainsRune(c.String(), 0x2801) {
		t.Error("top-left dot not set")
	}

	// Out of range must be ignored.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(1000, 1000)

	c.Clear()
	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			t.Fatalf("canvas not empty after Clear: %q", r)
		}
	}
}

func TestPlotXYStaysInBounds(t *testing.T) {
	c := NewCanvas(10, 5)
	xs := []float64{-20, 0, 20, 20, -20}
	ys := []float64{-10, 0, 10, -10, 10}
	c.PlotXY(xs, ys)

	if out := c.String(); !strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("no dots plotted")
	}
}

func TestBifurcationASCII(t *testing.T) {
	points := []logistic.Point{
		{R: 2.0, P: 500},
		{R: 3.2, P: 513},
		{R: 3.2, P: 799.5},
		{R: 4.0, P: 10},
	}

	out := BifurcationASCII(points, 40, 10)
	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if got := strings.Count(out, "•"); got != 4 {
		t.Errorf("plotted %d dots, want 4", got)
	}

	if BifurcationASCII(nil, 40, 10) != "" {
		t.Error("empty input should produce empty plot")
	}
	if BifurcationASCII(points, 0, 10) != "" {
		t.Error("zero width should produce empty plot")
	}
}

func TestBifurcationASCIISinglePoint(t *testing.T) {
	out := BifurcationASCII([]logistic.Point{{R: 3.5, P: 0}}, 10, 4)
	if strings.Count(out, "•") != 1 {
		t.Errorf("single point should plot one dot:\n%s", out)
	}
}
