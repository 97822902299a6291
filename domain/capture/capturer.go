package capture

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/screen-watch-go/config"
	"github.com/soocke/screen-watch-go/domain/region"
)

// ErrEmptyRegion is the cause reported when a region covers no pixels.
var ErrEmptyRegion = errors.New("region is empty")

// ErrSizeMismatch is the cause reported when a backend returns an image whose
// size differs from the requested region.
var ErrSizeMismatch = errors.New("captured image size does not match region")

// CaptureError describes a failed screen capture of Rect.
type CaptureError struct {
	Rect image.Rectangle
	Err  error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %v: %v", e.Rect, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// Capturer grabs the pixels of a screen region.
type Capturer interface {
	Capture(r region.Region) (*image.RGBA, error)
}

// GrabFunc is a platform screenshot primitive for an absolute rectangle.
type GrabFunc func(rect image.Rectangle) (*image.RGBA, error)

// ScreenCapturer adapts a GrabFunc to Capturer. Calls are serialized because
// the platform backends share display connections.
type ScreenCapturer struct {
	mu     sync.Mutex
	name   string
	grab   GrabFunc
	logger *slog.Logger
}

var _ Capturer = (*ScreenCapturer)(nil)

// New returns a capturer for the named backend. Unknown names fall back to
// the primary display backend.
func New(backend string, logger *slog.Logger) *ScreenCapturer {
	switch backend {
	case config.BackendMultiDisplay:
		return NewWithGrab(backend, grabMultiDisplay, logger)
	default:
		return NewWithGrab(config.BackendScreenshot, grabPrimary, logger)
	}
}

// NewWithGrab returns a capturer backed by grab.
func NewWithGrab(name string, grab GrabFunc, logger *slog.Logger) *ScreenCapturer {
	return &ScreenCapturer{name: name, grab: grab, logger: logger}
}

// Backend returns the backend name.
func (c *ScreenCapturer) Backend() string { return c.name }

// Capture grabs r. Every failure, including a backend panic, is returned as a
// *CaptureError. The returned image has bounds starting at (0,0).
func (c *ScreenCapturer) Capture(r region.Region) (img *image.RGBA, err error) {
	rect := r.Rect()
	if r.Empty() {
		return nil, &CaptureError{Rect: rect, Err: ErrEmptyRegion}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			img = nil
			err = &CaptureError{Rect: rect, Err: fmt.Errorf("backend panic: %v", rec)}
		}
	}()
	start := time.Now()
	out, gerr := c.grab(rect)
	if gerr != nil {
		return nil, &CaptureError{Rect: rect, Err: gerr}
	}
	if out == nil {
		return nil, &CaptureError{Rect: rect, Err: errors.New("backend returned no image")}
	}
	b := out.Bounds()
	if b.Dx() != r.Width || b.Dy() != r.Height {
		return nil, &CaptureError{Rect: rect, Err: fmt.Errorf("%w: got %dx%d", ErrSizeMismatch, b.Dx(), b.Dy())}
	}
	if b.Min != (image.Point{}) {
		out = rebase(out)
	}
	if c.logger != nil {
		c.logger.Debug("capture", "backend", c.name, "rect", rect.String(), "took", time.Since(start))
	}
	return out, nil
}

// rebase returns img with bounds moved to the origin, sharing pixels.
func rebase(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	return &image.RGBA{
		Pix:    img.Pix[img.PixOffset(b.Min.X, b.Min.Y):],
		Stride: img.Stride,
		Rect:   image.Rect(0, 0, b.Dx(), b.Dy()),
	}
}
