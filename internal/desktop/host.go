// Package desktop runs the star field in a native window with ebiten.
package desktop

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/okachamie/portfolio/internal/starfield"
)

var backdrop = color.Black

// Options configures a Host.
type Options struct {
	Seed      int64
	ShowStats bool
}

// Host is an ebiten.Game that owns one animator. The animator draws into an
// offscreen image during Update; Draw copies it to the screen.
type Host struct {
	viewport *starfield.Signal
	frames   starfield.FrameQueue
	anim     *starfield.Animator

	offscreen *ebiten.Image
	fill      color.NRGBA
	showStats bool

	// Layout can run off the update goroutine; it only records the size.
	mu         sync.Mutex
	outW, outH int
}

// New returns a host; the animator mounts on the first Update with a
// known window size.
func New(opts Options) *Host {
	h := &Host{
		viewport:  starfield.NewSignal(0, 0),
		showStats: opts.ShowStats,
	}
	h.anim = starfield.New(h, h.viewport, &h.frames,
		starfield.WithSource(rand.NewSource(opts.Seed)))
	return h
}

// Resize implements starfield.Surface.
func (h *Host) Resize(w, ht int) {
	if h.offscreen != nil {
		h.offscreen.Deallocate()
		h.offscreen = nil
	}
	if w > 0 && ht > 0 {
		h.offscreen = ebiten.NewImage(w, ht)
	}
}

// Context implements starfield.Surface.
func (h *Host) Context() starfield.Canvas { return h }

func (h *Host) Clear() {
	if h.offscreen != nil {
		h.offscreen.Clear()
	}
}

func (h *Host) SetFill(c color.NRGBA) { h.fill = c }

func (h *Host) FillCircle(x, y, radius, alpha float64) {
	if h.offscreen == nil {
		return
	}
	c := h.fill
	c.A = uint8(math.Round(float64(h.fill.A) * alpha))
	vector.DrawFilledCircle(h.offscreen, float32(x), float32(y), float32(radius), c, true)
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.anim.Unmount()
		return ebiten.Termination
	}

	h.mu.Lock()
	w, ht := h.outW, h.outH
	h.mu.Unlock()
	if w == 0 || ht == 0 {
		return nil
	}

	if !h.anim.Mounted() {
		h.viewport.Set(w, ht)
		h.anim.Mount()
		return nil
	}
	h.viewport.Set(w, ht)
	h.frames.Run()
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if h.offscreen != nil {
		screen.DrawImage(h.offscreen, nil)
	}
	if h.showStats {
		w, ht := h.anim.Size()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d stars  %dx%d  %.0f fps",
			len(h.anim.Stars()), w, ht, ebiten.ActualFPS()), 8, 8)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.mu.Lock()
	h.outW, h.outH = outsideWidth, outsideHeight
	h.mu.Unlock()
	return outsideWidth, outsideHeight
}

// Animator exposes the hosted animator.
func (h *Host) Animator() *starfield.Animator { return h.anim }
