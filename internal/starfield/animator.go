package starfield

import (
	"image/color"
	"math/rand"
)

// Canvas is a 2D drawing context.
type Canvas interface {
	Clear()
	SetFill(c color.NRGBA)
	// FillCircle paints a filled circle using the current fill scaled by alpha.
	FillCircle(x, y, radius, alpha float64)
}

// Surface is the drawing surface the animator owns while mounted.
type Surface interface {
	// Resize sets the surface to w×h pixels. Prior contents are discarded.
	Resize(w, h int)
	// Context returns the drawing context, or nil when none is available.
	Context() Canvas
}

// Viewport reports the host's visible size and its changes.
type Viewport interface {
	Size() (w, h int)
	// OnResize registers fn for size changes and returns a func that
	// removes it.
	OnResize(fn func()) (remove func())
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler runs a callback on the host's next frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Option configures an Animator.
type Option func(*Animator)

// WithSource sets the random source used to place stars.
func WithSource(src rand.Source) Option {
	return func(a *Animator) { a.field = NewField(src) }
}

// WithFill replaces DefaultFill.
func WithFill(c color.NRGBA) Option {
	return func(a *Animator) { a.fill = c }
}

// Animator renders a Field onto a Surface once per scheduled frame.
//
// It is not safe for concurrent use; every method and every frame callback
// must run on the host's UI goroutine.
type Animator struct {
	surface  Surface
	viewport Viewport
	sched    Scheduler

	field *Field
	fill  color.NRGBA
	ctx   Canvas

	mounted      bool
	pending      FrameID
	hasPending   bool
	removeResize func()
	frames       uint64
}

// New returns an unmounted animator.
func New(surface Surface, viewport Viewport, sched Scheduler, opts ...Option) *Animator {
	a := &Animator{
		surface:  surface,
		viewport: viewport,
		sched:    sched,
		fill:     DefaultFill,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.field == nil {
		a.field = NewField(nil)
	}
	return a
}

// Mount sizes the surface to the viewport, generates the stars, draws the
// first frame and starts the frame loop. Without a drawing context Mount
// does nothing and the animator stays unmounted.
func (a *Animator) Mount() {
	if a.mounted {
		return
	}
	ctx := a.surface.Context()
	if ctx == nil {
		return
	}
	a.ctx = ctx
	a.mounted = true
	a.reset()
	a.frame()
	a.removeResize = a.viewport.OnResize(a.resize)
}

// Unmount stops the frame loop, detaches the resize listener and drops the
// stars.
func (a *Animator) Unmount() {
	if !a.mounted {
		return
	}
	if a.removeResize != nil {
		a.removeResize()
		a.removeResize = nil
	}
	a.cancel()
	a.mounted = false
	a.ctx = nil
	a.field.Clear()
}

// Mounted reports whether the frame loop is running.
func (a *Animator) Mounted() bool { return a.mounted }

// Frames returns the number of frame steps run since New.
func (a *Animator) Frames() uint64 { return a.frames }

// Stars returns a copy of the current star set.
func (a *Animator) Stars() []Star { return a.field.Stars() }

// Size returns the surface size the current stars belong to.
func (a *Animator) Size() (w, h int) { return a.field.Size() }

func (a *Animator) reset() {
	w, h := a.viewport.Size()
	a.surface.Resize(w, h)
	a.field.Reset(w, h)
}

func (a *Animator) resize() {
	if !a.mounted {
		return
	}
	a.cancel()
	a.reset()
	a.frame()
}

func (a *Animator) cancel() {
	if a.hasPending {
		a.sched.CancelFrame(a.pending)
		a.hasPending = false
	}
}

// frame is one step: advance, redraw, then ask for the next frame.
func (a *Animator) frame() {
	a.hasPending = false
	if !a.mounted {
		return
	}
	a.field.Step()

	a.ctx.Clear()
	a.ctx.SetFill(a.fill)
	a.field.each(func(s Star) {
		a.ctx.FillCircle(s.X, s.Y, s.Radius, s.Alpha)
	})
	a.frames++

	a.pending = a.sched.RequestFrame(a.frame)
	a.hasPending = true
}
