package plot

import (
	"math"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func linePoints(f func(float64) float64, a, b float64, n int) []Point {
	pts := make([]Point, n)
	step := (b - a) / float64(n-1)
	for i := range pts {
		x := a + float64(i)*step
		y := f(x)
		pts[i] = Point{X: x, Y: y, Gap: math.IsNaN(y) || math.IsInf(y, 0)}
	}
	return pts
}

func TestRenderDimensions(t *testing.T) {
	pts := linePoints(math.Sin, -3, 3, 100)
	yMin, yMax := Bounds(pts)
	c := NewCanvas(40, 10, -3, 3, yMin, yMax)
	c.DrawSeries(0, pts, 1)

	lines := strings.Split(c.Render(lipgloss.NewStyle()), "\n")
	if len(lines) != 10 {
		t.Fatalf("rendered %d lines, want 10", len(lines))
	}
}

func TestRenderContainsBraille(t *testing.T) {
	pts := linePoints(func(x float64) float64 { return x }, -1, 1, 50)
	c := NewCanvas(20, 8, -1, 1, -1, 1)
	c.DrawSeries(0, pts, 1)

	out := c.Render(lipgloss.NewStyle())
	found := false
	for _, r := range out {
		if r >= 0x2800 && r <= 0x28FF {
			found = true
			break
		}
	}
	if !found {
		t.Error("render contains no braille cells")
	}
}

func TestGapBreaksLine(t *testing.T) {
	// Two flat segments separated by a gap must leave the middle column
	// empty instead of connecting across it.
	pts := []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 2, Gap: true},
		{X: 3, Y: 0}, {X: 4, Y: 0},
	}
	c := NewCanvas(21, 3, 0, 4, -1, 1)
	c.DrawSeries(0, pts, 1)

	out := c.Render(lipgloss.NewStyle())
	mid := strings.Split(out, "\n")[1]
	center := []rune(mid)[10]
	if center != ' ' {
		t.Errorf("gap column rendered %q, want blank", center)
	}
}

func TestBounds(t *testing.T) {
	pts := []Point{{Y: -2}, {Y: 3}, {Y: math.NaN(), Gap: true}}
	yMin, yMax := Bounds(pts)
	if yMin >= -2 || yMax <= 3 {
		t.Errorf("Bounds = (%v, %v), want padded beyond [-2, 3]", yMin, yMax)
	}
}

func TestBoundsAllGaps(t *testing.T) {
	pts := []Point{{Gap: true}, {Gap: true}}
	yMin, yMax := Bounds(pts)
	if yMin != -1 || yMax != 1 {
		t.Errorf("Bounds with no finite points = (%v, %v), want (-1, 1)", yMin, yMax)
	}
}

func TestFlatLineDoesNotCollapse(t *testing.T) {
	pts := linePoints(func(float64) float64 { return 2 }, 0, 1, 10)
	c := NewCanvas(10, 4, 0, 1, 2, 2)
	c.DrawSeries(0, pts, 1)
	out := c.Render(lipgloss.NewStyle())
	if strings.TrimSpace(out) == "" {
		t.Error("flat line rendered nothing")
	}
}
