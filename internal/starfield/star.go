// Package starfield animates the drifting field of translucent points drawn
// behind the portfolio card.
//
// An Animator owns one Field of stars and drives it through a host-provided
// Surface, Viewport and Scheduler. Hosts exist for the browser canvas, an
// ebiten window, a terminal and an offscreen raster.
package starfield

import (
	"image/color"
	"math"
	"math/rand"
)

// DensityArea is the surface area in px² that holds one star.
const DensityArea = 2000

// Attribute ranges. Each range is half-open: [min, min+span).
const (
	MinRadius    = 0.5
	RadiusSpan   = 1.2
	MinAlpha     = 0.2
	AlphaSpan    = 0.8
	MinVelocity  = 0.1
	VelocitySpan = 0.2
)

// DefaultFill is rgba(255, 255, 255, 0.9). Each star scales it by its own alpha.
var DefaultFill = color.NRGBA{R: 255, G: 255, B: 255, A: 230}

// Star is one particle. Radius, Alpha and Velocity never change after creation.
type Star struct {
	X, Y     float64
	Radius   float64
	Alpha    float64
	Velocity float64 // upward, px per frame
}

// Count returns the number of stars for a w×h surface.
func Count(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h / DensityArea
}

// uniform draws from [lo, lo+span). Float rounding can land exactly on the
// upper bound, so the result is nudged back inside.
func uniform(rng *rand.Rand, lo, span float64) float64 {
	v := lo + rng.Float64()*span
	if hi := lo + span; v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return v
}

func newStar(rng *rand.Rand, w, h int) Star {
	return Star{
		X:        uniform(rng, 0, float64(w)),
		Y:        uniform(rng, 0, float64(h)),
		Radius:   uniform(rng, MinRadius, RadiusSpan),
		Alpha:    uniform(rng, MinAlpha, AlphaSpan),
		Velocity: uniform(rng, MinVelocity, VelocitySpan),
	}
}
