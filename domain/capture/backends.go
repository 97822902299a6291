package capture

import (
	"image"

	multi "github.com/kbinani/screenshot"
	primary "github.com/vova616/screenshot"
)

func grabPrimary(rect image.Rectangle) (*image.RGBA, error) {
	return primary.CaptureRect(rect)
}

func grabMultiDisplay(rect image.Rectangle) (*image.RGBA, error) {
	return multi.CaptureRect(rect)
}

// VirtualBounds returns the union of all active display bounds. When no
// displays can be enumerated it falls back to the primary screen rectangle.
func VirtualBounds() image.Rectangle {
	var bounds image.Rectangle
	for i := 0; i < multi.NumActiveDisplays(); i++ {
		bounds = bounds.Union(multi.GetDisplayBounds(i))
	}
	if !bounds.Empty() {
		return bounds
	}
	if r, err := primary.ScreenRect(); err == nil {
		return r
	}
	return image.Rectangle{}
}
