package term

import (
	"strings"
	"testing"
)

func TestCanvas_Resize(t *testing.T) {
	c := NewCanvas()
	c.Resize(80*CellWidth, 24*CellHeight)
	if cols, rows := c.Size(); cols != 80 || rows != 24 {
		t.Errorf("Size = %dx%d, want 80x24", cols, rows)
	}
	c.Resize(-1, 5)
	if cols, rows := c.Size(); cols != 0 || rows != 0 {
		t.Errorf("Size = %dx%d, want 0x0", cols, rows)
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas()
	c.Resize(4*CellWidth, 2*CellHeight)

	c.FillCircle(1, 1, 0.6, 0.3)
	c.FillCircle(2, 2, 1.6, 0.9) // same cell, brighter
	c.FillCircle(3, 3, 1.0, 0.2) // same cell, dimmer
	c.FillCircle(3*CellWidth+1, CellHeight+1, 1.0, 0.5)
	c.FillCircle(-1, 0, 1, 1)
	c.FillCircle(100*CellWidth, 0, 1, 1)

	if c.Lit() != 2 {
		t.Fatalf("Lit = %d, want 2", c.Lit())
	}
	if got := c.cells[0].glyph; got != '✦' {
		t.Errorf("cell 0 glyph = %q, want the brighter star", got)
	}

	c.Clear()
	if c.Lit() != 0 {
		t.Errorf("Lit after Clear = %d", c.Lit())
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas()
	c.Resize(3*CellWidth, 2*CellHeight)
	c.FillCircle(CellWidth+1, CellHeight+1, 1.0, 1.0)

	out := c.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "   " {
		t.Errorf("line 0 = %q, want blanks", lines[0])
	}
	if !strings.Contains(lines[1], "•") {
		t.Errorf("line 1 = %q, want a star glyph", lines[1])
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		radius float64
		want   rune
	}{
		{0.5, '·'},
		{1.0, '•'},
		{1.69, '✦'},
	}
	for _, tt := range tests {
		if got := glyph(tt.radius); got != tt.want {
			t.Errorf("glyph(%v) = %q, want %q", tt.radius, got, tt.want)
		}
	}
}
