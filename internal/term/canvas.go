// Package term runs the star field in a terminal with Bubble Tea.
package term

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okachamie/portfolio/internal/starfield"
)

// Each terminal cell stands for a CellWidth×CellHeight block of surface
// pixels, so star density matches the browser page.
const (
	CellWidth  = 8
	CellHeight = 16
)

// shades are the brightness buckets a cell can be drawn with.
var shades = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
}

type cell struct {
	glyph     rune
	intensity float64
}

// Canvas is a starfield.Surface made of terminal cells.
type Canvas struct {
	cols, rows int
	cells      []cell
	fill       color.NRGBA
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{fill: starfield.DefaultFill}
}

// Resize takes a size in surface pixels.
func (c *Canvas) Resize(w, h int) {
	c.cols, c.rows = max(w/CellWidth, 0), max(h/CellHeight, 0)
	c.cells = make([]cell, c.cols*c.rows)
}

func (c *Canvas) Context() starfield.Canvas { return c }

func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) SetFill(col color.NRGBA) { c.fill = col }

// FillCircle marks the cell under (x, y). When two stars share a cell the
// brighter one wins.
func (c *Canvas) FillCircle(x, y, radius, alpha float64) {
	if x < 0 || y < 0 {
		return
	}
	col, row := int(x)/CellWidth, int(y)/CellHeight
	if col >= c.cols || row >= c.rows {
		return
	}
	in := alpha * float64(c.fill.A) / 255
	p := &c.cells[row*c.cols+col]
	if in <= p.intensity {
		return
	}
	p.intensity = in
	p.glyph = glyph(radius)
}

func glyph(radius float64) rune {
	switch {
	case radius < 0.9:
		return '·'
	case radius < 1.3:
		return '•'
	default:
		return '✦'
	}
}

func shade(intensity float64) lipgloss.Style {
	i := int(intensity * float64(len(shades)))
	if i >= len(shades) {
		i = len(shades) - 1
	}
	return shades[i]
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Lit returns the number of cells holding a star.
func (c *Canvas) Lit() int {
	n := 0
	for _, p := range c.cells {
		if p.glyph != 0 {
			n++
		}
	}
	return n
}

// Render draws the canvas as rows of styled glyphs.
func (c *Canvas) Render() string {
	var b strings.Builder
	for r := 0; r < c.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, p := range c.cells[r*c.cols : (r+1)*c.cols] {
			if p.glyph == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(shade(p.intensity).Render(string(p.glyph)))
		}
	}
	return b.String()
}
