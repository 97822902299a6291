package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestResize_FixedPreviewSize(t *testing.T) {
	src := Placeholder(800, 600, color.Black)
	out := Resize(src, 400, 300)
	if b := out.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("expected 400x300, got %v", b)
	}
	// Aspect ratio is ignored for the fixed preview.
	tall := Placeholder(10, 500, color.White)
	if b := Resize(tall, 400, 300).Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("expected stretched 400x300, got %v", b)
	}
}

func TestResize_SameSizeReturnsSource(t *testing.T) {
	src := Placeholder(400, 300, color.Black)
	if Resize(src, 400, 300) != image.Image(src) {
		t.Fatalf("same-size resize should return the source")
	}
	if Resize(nil, 1, 1) != nil {
		t.Fatalf("nil source should stay nil")
	}
}

func TestScaleToFit_PreservesAspect(t *testing.T) {
	src := Placeholder(1000, 500, color.Black)
	b := ScaleToFit(src, 400, 300).Bounds()
	if b.Dx() > 400 || b.Dy() > 300 || b.Dx() < 398 {
		t.Fatalf("unexpected fit bounds %v", b)
	}
	small := Placeholder(10, 10, color.Black)
	if ScaleToFit(small, 400, 300) != image.Image(small) {
		t.Fatalf("image that already fits should be returned unchanged")
	}
}

func TestEncodePNG_RoundTripSize(t *testing.T) {
	data := EncodePNG(Placeholder(7, 5, color.White))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Fatalf("unexpected decoded size %v", b)
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
}
