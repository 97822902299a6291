package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/nfnt/resize"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Resize stretches src to exactly w x h using bilinear interpolation. The
// aspect ratio is not preserved.
func Resize(src image.Image, w, h int) image.Image {
	if src == nil {
		return nil
	}
	if w < 1 || h < 1 {
		return src
	}
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	return resize.Resize(uint(w), uint(h), src, resize.Bilinear)
}

// ScaleToFit shrinks src so it fits within maxW x maxH preserving aspect
// ratio. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	return resize.Thumbnail(uint(max(maxW, 1)), uint(max(maxH, 1)), src, resize.Bilinear)
}

// Placeholder returns a w x h image filled with c.
func Placeholder(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	r, g, bl, a := c.RGBA()
	px := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = px.R, px.G, px.B, px.A
	}
	return img
}
