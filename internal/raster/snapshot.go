package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/okachamie/portfolio/internal/starfield"
)

// MaxSide bounds each dimension of a snapshot.
const MaxSide = 4096

// MaxWork bounds width × height × (frames+1), the pixel area touched over a
// whole snapshot. It fits one full 4096×4096 frame or about 110 frames at
// 1000×600.
const MaxWork = 1 << 26

// ErrTooLarge is returned for snapshots over MaxSide or MaxWork.
var ErrTooLarge = errors.New("raster: snapshot too large")

// SnapshotOptions describes a headless render of the star field.
type SnapshotOptions struct {
	Width, Height int
	Seed          int64
	// Frames is the number of frame steps run after the mount frame.
	Frames   int
	Backdrop color.Color
}

// Snapshot mounts an animator on an offscreen canvas, runs the requested
// frames and returns the final image.
func Snapshot(opts SnapshotOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrEmptySurface
	}
	if opts.Width > MaxSide || opts.Height > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d px per side", ErrTooLarge, opts.Width, opts.Height, MaxSide)
	}
	if opts.Frames < 0 {
		return nil, fmt.Errorf("raster: negative frame count %d", opts.Frames)
	}
	if work := int64(opts.Width) * int64(opts.Height) * int64(opts.Frames+1); work > MaxWork {
		return nil, fmt.Errorf("%w: %dx%d over %d frames", ErrTooLarge, opts.Width, opts.Height, opts.Frames)
	}
	if opts.Backdrop == nil {
		opts.Backdrop = color.Black
	}

	canvas := New()
	var frames starfield.FrameQueue
	a := starfield.New(canvas, starfield.NewSignal(opts.Width, opts.Height), &frames,
		starfield.WithSource(rand.NewSource(opts.Seed)))
	a.Mount()
	defer a.Unmount()

	for i := 0; i < opts.Frames; i++ {
		frames.Run()
	}
	return canvas.Composite(opts.Backdrop)
}
