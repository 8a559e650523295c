package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/okachamie/portfolio/internal/starfield"
)

func TestCanvas_FillCircle(t *testing.T) {
	c := New()
	c.Resize(20, 20)
	c.SetFill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	c.FillCircle(10, 10, 4, 1)

	if a := c.Image().RGBAAt(10, 10).A; a < 250 {
		t.Errorf("centre alpha = %d, want opaque", a)
	}
	if a := c.Image().RGBAAt(1, 1).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := c.Image().RGBAAt(10, 15).A; a != 0 {
		t.Errorf("pixel outside radius alpha = %d, want 0", a)
	}
}

func TestCanvas_AlphaScalesFill(t *testing.T) {
	c := New()
	c.Resize(10, 10)
	c.SetFill(color.NRGBA{R: 255, G: 255, B: 255, A: 200})
	c.FillCircle(5, 5, 3, 0.5)

	got := c.Image().RGBAAt(5, 5).A
	if got < 98 || got > 102 {
		t.Errorf("centre alpha = %d, want about 100", got)
	}
}

func TestCanvas_ClipsAtEdges(t *testing.T) {
	c := New()
	c.Resize(8, 8)
	c.FillCircle(-0.5, 4, 1.5, 1)
	c.FillCircle(4, 9, 1.7, 1)
	c.FillCircle(100, 100, 1, 1)
	c.FillCircle(0.4, 0.4, 1.2, 1)

	if c.Image().RGBAAt(0, 0).A == 0 {
		t.Error("disc overlapping the corner left no coverage")
	}
	if c.Circles() != 4 {
		t.Errorf("Circles = %d, want 4", c.Circles())
	}
}

func TestCanvas_EdgeDiscMatchesUnclipped(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
	}{
		{"left", 1, 10},
		{"top", 9.3, 0.6},
		{"corner", -1.2, -0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const pad = 10
			clipped := New()
			clipped.Resize(20, 20)
			clipped.SetFill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			clipped.FillCircle(tt.cx, tt.cy, 4, 1)

			whole := New()
			whole.Resize(20+pad, 20+pad)
			whole.SetFill(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			whole.FillCircle(tt.cx+pad, tt.cy+pad, 4, 1)

			for y := 0; y < 20; y++ {
				for x := 0; x < 20; x++ {
					a := int(clipped.Image().RGBAAt(x, y).A)
					b := int(whole.Image().RGBAAt(x+pad, y+pad).A)
					if d := a - b; d > 2 || d < -2 {
						t.Fatalf("pixel (%d,%d): alpha %d, want %d", x, y, a, b)
					}
				}
			}
		})
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := New()
	c.Resize(10, 10)
	c.FillCircle(5, 5, 3, 1)
	c.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.Image().RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
	if c.Clears() != 1 {
		t.Errorf("Clears = %d", c.Clears())
	}
}

func TestCanvas_CompositeEmpty(t *testing.T) {
	if _, err := New().Composite(color.Black); !errors.Is(err, ErrEmptySurface) {
		t.Errorf("err = %v, want ErrEmptySurface", err)
	}
}

func TestCanvas_DrivenByAnimator(t *testing.T) {
	c := New()
	var q starfield.FrameQueue
	a := starfield.New(c, starfield.NewSignal(1000, 600), &q)
	a.Mount()
	q.Run()

	if c.Clears() != 2 {
		t.Errorf("Clears = %d, want 2", c.Clears())
	}
	if c.Circles() != 600 {
		t.Errorf("Circles = %d, want 600", c.Circles())
	}
	if b := c.Image().Bounds(); b.Dx() != 1000 || b.Dy() != 600 {
		t.Errorf("bounds = %v", b)
	}
}

func TestSnapshot(t *testing.T) {
	a, err := Snapshot(SnapshotOptions{Width: 200, Height: 100, Seed: 9, Frames: 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Snapshot(SnapshotOptions{Width: 200, Height: 100, Seed: 9, Frames: 3})
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Pix) != string(b.Pix) {
		t.Error("same seed produced different images")
	}

	lit := 0
	for i := 0; i < len(a.Pix); i += 4 {
		if a.Pix[i+3] != 255 {
			t.Fatal("backdrop is not opaque")
		}
		if a.Pix[i] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("no star pixels in snapshot")
	}
}

func TestSnapshot_Bounds(t *testing.T) {
	if _, err := Snapshot(SnapshotOptions{Width: 0, Height: 10}); !errors.Is(err, ErrEmptySurface) {
		t.Errorf("zero width: err = %v", err)
	}
	tooLarge := []SnapshotOptions{
		{Width: MaxSide + 1, Height: 10},
		{Width: 4096, Height: 4096, Frames: 4},
		{Width: 1000, Height: 600, Frames: 600},
	}
	for _, opts := range tooLarge {
		if _, err := Snapshot(opts); !errors.Is(err, ErrTooLarge) {
			t.Errorf("%dx%d frames=%d: err = %v, want ErrTooLarge", opts.Width, opts.Height, opts.Frames, err)
		}
	}
	if _, err := Snapshot(SnapshotOptions{Width: 1000, Height: 600, Frames: 100}); err != nil {
		t.Errorf("within budget: %v", err)
	}
}
