//go:build js && wasm

package webcanvas

import (
	"fmt"
	"image/color"
	"math"
	"syscall/js"

	"github.com/okachamie/portfolio/internal/starfield"
)

// Host adapts one canvas element and its window.
type Host struct {
	window js.Value
	canvas js.Value
	ctx    js.Value

	w, h int

	next func()
	tick js.Func
}

// Find returns a host for the element with the given id, or false when the
// page has no such element.
func Find(id string) (*Host, bool) {
	window := js.Global()
	el := window.Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	h := &Host{window: window, canvas: el}
	h.tick = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn := h.next
		h.next = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return h, true
}

// Release frees the frame callback. The host must not be used afterwards.
func (h *Host) Release() { h.tick.Release() }

// Resize implements starfield.Surface.
func (h *Host) Resize(w, ht int) {
	h.w, h.h = w, ht
	h.canvas.Set("width", w)
	h.canvas.Set("height", ht)
}

// Context implements starfield.Surface. It returns nil when the browser
// refuses a 2D context.
func (h *Host) Context() starfield.Canvas {
	if h.ctx.IsUndefined() {
		ctx := h.canvas.Call("getContext", "2d")
		if ctx.IsNull() || ctx.IsUndefined() {
			return nil
		}
		h.ctx = ctx
	}
	return h
}

func (h *Host) Clear() {
	h.ctx.Call("clearRect", 0, 0, h.w, h.h)
}

func (h *Host) SetFill(c color.NRGBA) {
	h.ctx.Set("fillStyle", fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, float64(c.A)/255))
}

func (h *Host) FillCircle(x, y, radius, alpha float64) {
	h.ctx.Call("save")
	h.ctx.Set("globalAlpha", alpha)
	h.ctx.Call("beginPath")
	h.ctx.Call("arc", x, y, radius, 0, 2*math.Pi)
	h.ctx.Call("fill")
	h.ctx.Call("restore")
}

// Size implements starfield.Viewport.
func (h *Host) Size() (w, ht int) {
	return h.window.Get("innerWidth").Int(), h.window.Get("innerHeight").Int()
}

// OnResize implements starfield.Viewport.
func (h *Host) OnResize(fn func()) (remove func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	h.window.Call("addEventListener", "resize", cb)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		h.window.Call("removeEventListener", "resize", cb)
		cb.Release()
	}
}

// RequestFrame implements starfield.Scheduler.
func (h *Host) RequestFrame(fn func()) starfield.FrameID {
	h.next = fn
	return starfield.FrameID(h.window.Call("requestAnimationFrame", h.tick).Int())
}

// CancelFrame implements starfield.Scheduler.
func (h *Host) CancelFrame(id starfield.FrameID) {
	h.window.Call("cancelAnimationFrame", int(id))
	h.next = nil
}
