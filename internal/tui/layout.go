package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size grid of styled lines that blocks are painted onto
// back to front.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &canvas{width: width, lines: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// draw paints rows with their top-left cell at (x, y). Anything outside the
// canvas is clipped.
func (c *canvas) draw(x, y int, rows []string) {
	for i, row := range rows {
		ly := y + i
		if ly < 0 || ly >= len(c.lines) {
			continue
		}
		c.lines[ly] = overlay(c.lines[ly], row, x, c.width)
	}
}

func (c *canvas) String() string { return strings.Join(c.lines, "\n") }

// overlay writes s over base starting at column x (ANSI-aware) and returns a
// line exactly width columns wide.
func overlay(base, s string, x, width int) string {
	sw := xansi.StringWidth(s)
	if x < 0 {
		s = xansi.Cut(s, -x, sw)
		sw += x
		x = 0
	}
	if sw <= 0 || x >= width {
		return normalizeLine(base, width)
	}
	if x+sw > width {
		s = xansi.Cut(s, 0, width-x)
		sw = width - x
	}
	left := xansi.Cut(base, 0, x)
	if lw := xansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := xansi.Cut(base, x+sw, width)
	return normalizeLine(left+s+right, width)
}

// normalizeLine forces ln to be exactly width columns wide.
func normalizeLine(ln string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(ln)
	if w > width {
		ln = xansi.Cut(ln, 0, width)
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}
