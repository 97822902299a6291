package detect

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// synthFrame returns a w x h frame filled with c.
func synthFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// applyRegion paints a rectangular block of c onto img.
func applyRegion(img *image.RGBA, x0, y0, w, h int, c color.RGBA) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestChanged_SameImage(t *testing.T) {
	d := New(DefaultThreshold)
	img := synthFrame(20, 20, color.RGBA{R: 10, G: 200, B: 30, A: 255})
	if d.Changed(img, img) {
		t.Fatalf("identical image must not be reported as changed")
	}
}

func TestChanged_NilImages(t *testing.T) {
	d := New(DefaultThreshold)
	img := synthFrame(4, 4, black)
	if d.Changed(nil, img) || d.Changed(img, nil) || d.Changed(nil, nil) {
		t.Fatalf("nil images must never be reported as changed")
	}
}

func TestChanged_WhiteBlockOnBlack(t *testing.T) {
	d := New(DefaultThreshold)
	a := synthFrame(100, 100, black)
	b := synthFrame(100, 100, black)
	applyRegion(b, 40, 40, 10, 10, white)
	res, err := d.Compare(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Changed || res.ChangedPixels != 100 || res.Total != 10000 {
		t.Fatalf("expected 100 changed pixels, got %+v", res)
	}
	if res.Ratio() != 0.01 {
		t.Fatalf("unexpected ratio %v", res.Ratio())
	}
}

func TestChanged_SinglePixelAboveThreshold(t *testing.T) {
	d := New(DefaultThreshold)
	a := synthFrame(50, 50, black)
	b := synthFrame(50, 50, black)
	b.SetRGBA(17, 33, color.RGBA{R: 40, G: 40, B: 40, A: 255})
	if !d.Changed(a, b) {
		t.Fatalf("single pixel differing by 40 should be a change")
	}
}

func TestChanged_AllPixelsBelowThreshold(t *testing.T) {
	d := New(DefaultThreshold)
	a := synthFrame(50, 50, black)
	b := synthFrame(50, 50, color.RGBA{R: 29, G: 29, B: 29, A: 255})
	if d.Changed(a, b) {
		t.Fatalf("uniform difference of 29 must stay below threshold 30")
	}
	// Exactly at the threshold is not a change either.
	c := synthFrame(50, 50, color.RGBA{R: 30, G: 30, B: 30, A: 255})
	if d.Changed(a, c) {
		t.Fatalf("difference equal to threshold must not count")
	}
}

func TestChanged_ChannelWeighting(t *testing.T) {
	d := New(DefaultThreshold)
	a := synthFrame(2, 2, black)
	// Pure blue 255 has luminance ~29, under the threshold.
	b := synthFrame(2, 2, color.RGBA{B: 255, A: 255})
	if d.Changed(a, b) {
		t.Fatalf("blue-only change should be weighted below threshold")
	}
	// Pure green 60 has luminance ~35.
	g := synthFrame(2, 2, color.RGBA{G: 60, A: 255})
	if !d.Changed(a, g) {
		t.Fatalf("green change above threshold should be detected")
	}
}

func TestCompare_DimensionMismatch(t *testing.T) {
	d := New(DefaultThreshold)
	_, err := d.Compare(synthFrame(10, 10, black), synthFrame(10, 11, black))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if d.Changed(synthFrame(10, 10, black), synthFrame(11, 10, white)) {
		t.Fatalf("mismatched dimensions must not be reported as changed")
	}
}

func TestCompare_OffsetBounds(t *testing.T) {
	d := New(DefaultThreshold)
	a := synthFrame(10, 10, black)
	b := image.NewRGBA(image.Rect(5, 5, 15, 15))
	for i := 3; i < len(b.Pix); i += 4 {
		b.Pix[i] = 255
	}
	if d.Changed(a, b) {
		t.Fatalf("same content with offset bounds should not be a change")
	}
	b.SetRGBA(14, 14, white)
	if !d.Changed(a, b) {
		t.Fatalf("expected change in offset image")
	}
}

func TestNew_ClampsThreshold(t *testing.T) {
	if New(-5).Threshold != 0 || New(999).Threshold != 255 {
		t.Fatalf("threshold not clamped")
	}
}

func TestPerceptualDistance(t *testing.T) {
	a := synthFrame(64, 64, black)
	dist, err := PerceptualDistance(a, a)
	if err != nil || dist != 0 {
		t.Fatalf("identical images: dist=%d err=%v", dist, err)
	}
	if _, err := PerceptualDistance(nil, a); err == nil {
		t.Fatalf("expected error for nil image")
	}
}
