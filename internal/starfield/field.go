package starfield

import (
	"math/rand"
	"time"
)

// Field is the particle set for one surface size.
type Field struct {
	width, height int
	stars         []Star
	rng           *rand.Rand
}

// NewField returns an empty field drawing randomness from src. A nil src
// seeds from the clock.
func NewField(src rand.Source) *Field {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Field{rng: rand.New(src)}
}

// Reset discards every star and generates Count(w, h) new ones.
func (f *Field) Reset(w, h int) {
	f.width, f.height = w, h
	n := Count(w, h)
	f.stars = make([]Star, n)
	for i := range f.stars {
		f.stars[i] = newStar(f.rng, w, h)
	}
}

// Clear drops all stars and forgets the surface size.
func (f *Field) Clear() {
	f.width, f.height = 0, 0
	f.stars = nil
}

// Step moves every star up by its velocity. A star that has left the top
// edge re-enters just below the bottom edge at a fresh x. Step reports how
// many stars wrapped.
func (f *Field) Step() int {
	wrapped := 0
	for i := range f.stars {
		s := &f.stars[i]
		s.Y -= s.Velocity
		if s.Y < -s.Radius {
			s.Y = float64(f.height) + s.Radius
			s.X = uniform(f.rng, 0, float64(f.width))
			wrapped++
		}
	}
	return wrapped
}

// Len returns the number of stars.
func (f *Field) Len() int { return len(f.stars) }

// Size returns the surface size the stars were generated for.
func (f *Field) Size() (w, h int) { return f.width, f.height }

// Stars returns a copy of the current stars.
func (f *Field) Stars() []Star {
	out := make([]Star, len(f.stars))
	copy(out, f.stars)
	return out
}

func (f *Field) each(fn func(Star)) {
	for _, s := range f.stars {
		fn(s)
	}
}
