// Package plot renders sampled curves onto a braille-dot canvas for the
// terminal. Each text cell carries a 2x4 grid of dots, so a w×h cell canvas
// has 2w×4h addressable points.
package plot

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
)

// Point is one sample of a curve. Gap marks a non-finite value; the line
// breaks there instead of connecting across it.
type Point struct {
	X, Y float64
	Gap  bool
}

// brailleBits maps (dx, dy) within a cell to the corresponding bit of the
// braille pattern block (U+2800).
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas accumulates dots for up to two series and renders them with
// per-series styles.
type Canvas struct {
	width, height int // in cells
	xMin, xMax    float64
	yMin, yMax    float64
	dots          [][]rune // braille bit accumulator, [row][col]
	series        [][]int  // which series last touched each cell, -1 if none
}

// NewCanvas creates a canvas of width×height cells covering the given data
// ranges. A degenerate y-range is widened so a flat line still renders.
func NewCanvas(width, height int, xMin, xMax, yMin, yMax float64) *Canvas {
	if yMax-yMin < 1e-12 {
		yMin -= 1
		yMax += 1
	}
	c := &Canvas{
		width:  width,
		height: height,
		xMin:   xMin,
		xMax:   xMax,
		yMin:   yMin,
		yMax:   yMax,
		dots:   make([][]rune, height),
		series: make([][]int, height),
	}
	for row := range c.dots {
		c.dots[row] = make([]rune, width)
		c.series[row] = make([]int, width)
		for col := range c.series[row] {
			c.series[row][col] = -1
		}
	}
	return c
}

// DrawSeries plots the points as a connected line, breaking at gaps.
// thickness widens the stroke vertically by that many extra dots each side.
func (c *Canvas) DrawSeries(id int, pts []Point, thickness int) {
	var prev *Point
	for i := range pts {
		p := pts[i]
		if p.Gap {
			prev = nil
			continue
		}
		if prev != nil {
			c.drawSegment(id, *prev, p, thickness)
		} else {
			c.drawDot(id, p.X, p.Y, thickness)
		}
		prev = &pts[i]
	}
}

// drawSegment interpolates between two samples at dot resolution.
func (c *Canvas) drawSegment(id int, a, b Point, thickness int) {
	ax, ay := c.toDot(a.X, a.Y)
	bx, by := c.toDot(b.X, b.Y)

	steps := int(math.Max(math.Abs(float64(bx-ax)), math.Abs(float64(by-ay))))
	if steps == 0 {
		c.setDot(id, ax, ay, thickness)
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := ax + int(math.Round(t*float64(bx-ax)))
		y := ay + int(math.Round(t*float64(by-ay)))
		c.setDot(id, x, y, thickness)
	}
}

func (c *Canvas) drawDot(id int, x, y float64, thickness int) {
	dx, dy := c.toDot(x, y)
	c.setDot(id, dx, dy, thickness)
}

// toDot maps data coordinates to dot coordinates (origin top-left).
func (c *Canvas) toDot(x, y float64) (int, int) {
	w := float64(c.width*2 - 1)
	h := float64(c.height*4 - 1)
	dx := int(math.Round((x - c.xMin) / (c.xMax - c.xMin) * w))
	dy := int(math.Round((c.yMax - y) / (c.yMax - c.yMin) * h))
	return dx, dy
}

func (c *Canvas) setDot(id, dx, dy, thickness int) {
	for t := -(thickness - 1); t <= thickness-1; t++ {
		c.setOne(id, dx, dy+t)
	}
}

func (c *Canvas) setOne(id, dx, dy int) {
	if dx < 0 || dy < 0 || dx >= c.width*2 || dy >= c.height*4 {
		return
	}
	col, row := dx/2, dy/4
	c.dots[row][col] |= brailleBits[dx%2][dy%4]
	c.series[row][col] = id
}

// Render returns the canvas as styled text, one lipgloss style per series.
func (c *Canvas) Render(styles ...lipgloss.Style) string {
	var b strings.Builder
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			bits := c.dots[row][col]
			if bits == 0 {
				b.WriteByte(' ')
				continue
			}
			ch := string(rune(0x2800) + bits)
			if id := c.series[row][col]; id >= 0 && id < len(styles) {
				ch = styles[id].Render(ch)
			}
			b.WriteString(ch)
		}
		if row < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Bounds returns a y-range covering all finite points of both series, padded
// slightly so curves don't touch the canvas edge.
func Bounds(series ...[]Point) (yMin, yMax float64) {
	yMin, yMax = math.Inf(1), math.Inf(-1)
	for _, pts := range series {
		for _, p := range pts {
			if p.Gap {
				continue
			}
			yMin = math.Min(yMin, p.Y)
			yMax = math.Max(yMax, p.Y)
		}
	}
	if math.IsInf(yMin, 0) || math.IsInf(yMax, 0) {
		return -1, 1
	}
	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = 1
	}
	return yMin - pad, yMax + pad
}
