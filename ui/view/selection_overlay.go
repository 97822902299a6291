package view

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/screen-watch-go/domain/selection"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

const (
	overlayAlpha       = 0.3
	overlayInstruction = "Click and drag to select region. Press ESC to cancel."
	// Time for the window manager to hide the main window before the overlay
	// appears and before the next capture.
	hideDelay = 300 * time.Millisecond
)

// SelectionOverlay is a translucent always-on-top window covering bounds on
// which the user drags a rectangle.
type SelectionOverlay struct {
	bounds image.Rectangle
	logger *slog.Logger
}

// NewSelectionOverlay creates an overlay covering bounds (absolute screen
// coordinates). An empty bounds makes the overlay fullscreen.
func NewSelectionOverlay(bounds image.Rectangle, logger *slog.Logger) *SelectionOverlay {
	return &SelectionOverlay{bounds: bounds, logger: logger}
}

// Run shows the overlay and blocks, processing Tk events, until the user
// releases a drag or presses Escape. The overlay is destroyed before Run
// returns.
func (o *SelectionOverlay) Run() selection.Outcome {
	tr := selection.NewTracker()
	win := App.Toplevel(Background("grey15"))
	if o.bounds.Empty() {
		WmAttributes(win.Window, "-fullscreen", 1)
	} else {
		b := o.bounds
		WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", b.Dx(), b.Dy(), b.Min.X, b.Min.Y))
	}
	WmAttributes(win.Window, "-alpha", overlayAlpha)
	WmAttributes(win.Window, "-topmost", 1)

	canvas := win.Canvas(Cursor("crosshair"), Highlightthickness(0), Background("grey15"))
	Pack(canvas, Fill("both"), Expand(1))
	textX := 960
	if !o.bounds.Empty() {
		textX = o.bounds.Dx() / 2
	}
	canvas.CreateText(textX, 50, Txt(overlayInstruction), Fill("white"), Font("Arial", 24, "bold"))

	var outline string
	var originX, originY int
	finish := func() {
		GrabRelease(win)
		Destroy(win)
	}
	Bind(canvas, "<ButtonPress-1>", Command(func(e *Event) {
		originX, originY = e.XRoot-e.X, e.YRoot-e.Y
		tr.Press(e.XRoot, e.YRoot)
	}))
	Bind(canvas, "<B1-Motion>", Command(func(e *Event) {
		r, ok := tr.Move(e.XRoot, e.YRoot)
		if !ok {
			return
		}
		if outline != "" {
			canvas.Delete(outline)
		}
		x, y := r.X-originX, r.Y-originY
		outline = canvas.CreateRectangle(x, y, x+r.Width, y+r.Height, Outline("red"), Width(2))
	}))
	Bind(canvas, "<ButtonRelease-1>", Command(func(e *Event) {
		if tr.Release(e.XRoot, e.YRoot) {
			finish()
		}
	}))
	Bind(win, "<Escape>", Command(func() {
		tr.Cancel()
		finish()
	}))

	Focus(win)
	GrabSet(win)
	win.Wait()
	Update()

	out := tr.Outcome()
	if o.logger != nil {
		if out.OK {
			o.logger.Info("region selected", "region", out.Region.String())
		} else {
			o.logger.Info("region selection dismissed", "state", tr.State().String())
		}
	}
	return out
}

// RegionSelector hides the main window while the overlay runs.
type RegionSelector struct {
	Bounds func() image.Rectangle
	Logger *slog.Logger
}

// Select withdraws the main window, runs a fresh overlay and restores the
// main window.
func (s *RegionSelector) Select() selection.Outcome {
	WmWithdraw(App)
	Update()
	time.Sleep(hideDelay)
	var bounds image.Rectangle
	if s.Bounds != nil {
		bounds = s.Bounds()
	}
	out := NewSelectionOverlay(bounds, s.Logger).Run()
	time.Sleep(hideDelay)
	WmDeiconify(App)
	return out
}
