// Package raster draws the star field into an in-memory image. The server
// uses it for preview images and the static export.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/okachamie/portfolio/internal/starfield"
)

// ErrEmptySurface is returned when an image is requested from a zero-sized
// canvas.
var ErrEmptySurface = errors.New("raster: empty surface")

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Canvas is a starfield.Surface backed by an *image.RGBA.
type Canvas struct {
	img  *image.RGBA
	fill color.NRGBA
	z    vector.Rasterizer

	clears  int
	circles int
}

// New returns a canvas with no pixels. The animator sizes it on mount.
func New() *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rectangle{}), fill: starfield.DefaultFill}
}

// Resize implements starfield.Surface.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Context implements starfield.Surface.
func (c *Canvas) Context() starfield.Canvas { return c }

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c.clears++
}

// SetFill sets the paint used by FillCircle.
func (c *Canvas) SetFill(col color.NRGBA) { c.fill = col }

// FillCircle composites an anti-aliased disc over the current pixels.
func (c *Canvas) FillCircle(x, y, radius, alpha float64) {
	c.circles++
	if radius <= 0 || alpha <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(x-radius)), int(math.Floor(y-radius)),
		int(math.Ceil(x+radius)), int(math.Ceil(y+radius)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	// Path coordinates are relative to box; the rasterizer clips whatever
	// falls outside it.
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	pt := func(px, py float64) (float32, float32) {
		return float32(px - ox), float32(py - oy)
	}

	c.z.Reset(box.Dx(), box.Dy())
	k := radius * kappa
	c.z.MoveTo(pt(x+radius, y))
	cubeTo(&c.z, pt, x+radius, y+k, x+k, y+radius, x, y+radius)
	cubeTo(&c.z, pt, x-k, y+radius, x-radius, y+k, x-radius, y)
	cubeTo(&c.z, pt, x-radius, y-k, x-k, y-radius, x, y-radius)
	cubeTo(&c.z, pt, x+k, y-radius, x+radius, y-k, x+radius, y)
	c.z.ClosePath()

	paint := c.fill
	paint.A = uint8(math.Round(float64(c.fill.A) * math.Min(alpha, 1)))
	c.z.DrawOp = draw.Over
	c.z.Draw(c.img, box, image.NewUniform(paint), image.Point{})
}

func cubeTo(z *vector.Rasterizer, pt func(x, y float64) (float32, float32), x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := pt(x1, y1)
	bx, by := pt(x2, y2)
	cx, cy := pt(x3, y3)
	z.CubeTo(ax, ay, bx, by, cx, cy)
}

// Image returns the live pixel buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clears returns how many times the canvas was cleared.
func (c *Canvas) Clears() int { return c.clears }

// Circles returns how many FillCircle calls were made.
func (c *Canvas) Circles() int { return c.circles }

// Composite returns the current pixels drawn over an opaque backdrop.
func (c *Canvas) Composite(backdrop color.Color) (*image.RGBA, error) {
	b := c.img.Bounds()
	if b.Empty() {
		return nil, ErrEmptySurface
	}
	out := image.NewRGBA(b)
	draw.Draw(out, b, image.NewUniform(backdrop), image.Point{}, draw.Src)
	draw.Draw(out, b, c.img, b.Min, draw.Over)
	return out, nil
}
