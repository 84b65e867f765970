package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	grid "github.com/grindlemire/go-grid"
)

// borderSet holds the six runes a box is drawn with.
type borderSet struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var (
	unicodeBorder = borderSet{'┌', '┐', '└', '┘', '─', '│'}
	asciiBorder   = borderSet{'+', '+', '+', '+', '-', '|'}
)

// canvas is a rune buffer the solved rectangles are drawn into. Each cell
// remembers which box painted it so render can color contiguous runs.
type canvas struct {
	w, h   int
	runes  [][]rune
	owner  [][]int
	border borderSet
}

func newCanvas(w, h int, ascii bool) *canvas {
	c := &canvas{w: w, h: h, border: unicodeBorder}
	if ascii {
		c.border = asciiBorder
	}
	c.runes = make([][]rune, h)
	c.owner = make([][]int, h)
	for y := range c.runes {
		c.runes[y] = make([]rune, w)
		c.owner[y] = make([]int, w)
		for x := range c.runes[y] {
			c.runes[y][x] = ' '
			c.owner[y][x] = -1
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, owner int) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.owner[y][x] = owner
}

// drawBox paints a rectangle's border and label. Fractional geometry rounds
// to the nearest terminal cell; boxes thinner than the border itself are
// drawn as a single run.
func (c *canvas) drawBox(r grid.Rect, label string, owner int) {
	x := int(r.Left + 0.5)
	y := int(r.Top + 0.5)
	w := int(r.Width + 0.5)
	h := int(r.Height + 0.5)
	if w < 1 || h < 1 {
		return
	}

	if w < 2 || h < 2 {
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				c.set(x+dx, y+dy, c.border.horizontal, owner)
			}
		}
		return
	}

	right := x + w - 1
	bottom := y + h - 1

	c.set(x, y, c.border.topLeft, owner)
	c.set(right, y, c.border.topRight, owner)
	c.set(x, bottom, c.border.bottomLeft, owner)
	c.set(right, bottom, c.border.bottomRight, owner)
	for dx := x + 1; dx < right; dx++ {
		c.set(dx, y, c.border.horizontal, owner)
		c.set(dx, bottom, c.border.horizontal, owner)
	}
	for dy := y + 1; dy < bottom; dy++ {
		c.set(x, dy, c.border.vertical, owner)
		c.set(right, dy, c.border.vertical, owner)
	}

	if label != "" && h > 2 {
		c.drawLabel(x+1, y+1, w-2, label, owner)
	}
}

// drawLabel writes a truncated label, accounting for wide runes. Double-width
// runes occupy two canvas cells; the second is blanked so columns stay
// aligned.
func (c *canvas) drawLabel(x, y, maxWidth int, label string, owner int) {
	if maxWidth < 1 {
		return
	}
	label = runewidth.Truncate(label, maxWidth, "…")
	for _, r := range label {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		c.set(x, y, r, owner)
		if rw == 2 {
			c.set(x+1, y, ' ', owner)
		}
		x += rw
	}
}

// render colors each row by grouping runs with the same owning box.
func (c *canvas) render(palette []lipgloss.Style) string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			owner := c.owner[y][x]
			run := x
			for run < c.w && c.owner[y][run] == owner {
				run++
			}
			segment := string(c.runes[y][x:run])
			if owner >= 0 && len(palette) > 0 {
				segment = palette[owner%len(palette)].Render(segment)
			}
			sb.WriteString(segment)
			x = run
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
