// Package detect decides whether two captures of the same region differ.
package detect

import (
	"errors"
	"fmt"
	"image"

	"github.com/corona10/goimagehash"
)

// DefaultThreshold is the intensity (0-255) a pixel difference must exceed.
const DefaultThreshold = 30

// ErrDimensionMismatch is returned when two images do not share a size.
var ErrDimensionMismatch = errors.New("image dimensions differ")

// Result summarises a comparison.
type Result struct {
	Changed       bool
	ChangedPixels int
	Total         int
}

// Ratio is the fraction of pixels above the threshold.
func (r Result) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.ChangedPixels) / float64(r.Total)
}

// Detector compares successive frames against a single global threshold.
// It holds no state and is safe for concurrent use.
type Detector struct {
	Threshold int
}

// New returns a Detector, clamping threshold into [0,255].
func New(threshold int) Detector {
	return Detector{Threshold: min(max(threshold, 0), 255)}
}

// Changed reports whether curr differs from prev. A missing image, or images
// that cannot be compared, never count as a change.
func (d Detector) Changed(prev, curr *image.RGBA) bool {
	res, err := d.Compare(prev, curr)
	return err == nil && res.Changed
}

// Compare computes the per-pixel absolute difference of prev and curr,
// reduces it to one luminance channel and counts pixels brighter than the
// threshold. A nil image yields an empty Result.
func (d Detector) Compare(prev, curr *image.RGBA) (Result, error) {
	if prev == nil || curr == nil {
		return Result{}, nil
	}
	pb, cb := prev.Bounds(), curr.Bounds()
	if pb.Dx() != cb.Dx() || pb.Dy() != cb.Dy() {
		return Result{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, pb.Dx(), pb.Dy(), cb.Dx(), cb.Dy())
	}
	w, h := cb.Dx(), cb.Dy()
	res := Result{Total: w * h}
	for y := 0; y < h; y++ {
		po := prev.PixOffset(pb.Min.X, pb.Min.Y+y)
		co := curr.PixOffset(cb.Min.X, cb.Min.Y+y)
		prow := prev.Pix[po : po+w*4]
		crow := curr.Pix[co : co+w*4]
		for i := 0; i < len(crow); i += 4 {
			g := gray(absDiff(prow[i], crow[i]), absDiff(prow[i+1], crow[i+1]), absDiff(prow[i+2], crow[i+2]))
			if g > d.Threshold {
				res.ChangedPixels++
			}
		}
	}
	res.Changed = res.ChangedPixels > 0
	return res, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// gray converts RGB to luminance with Rec.601 weights in 14-bit fixed point.
func gray(r, g, b int) int {
	return (r*4899 + g*9617 + b*1868 + 1<<13) >> 14
}

// PerceptualDistance returns the Hamming distance between the difference
// hashes of a and b. Zero means perceptually identical.
func PerceptualDistance(a, b image.Image) (int, error) {
	if a == nil || b == nil {
		return 0, errors.New("nil image")
	}
	ha, err := goimagehash.DifferenceHash(a)
	if err != nil {
		return 0, fmt.Errorf("hash: %w", err)
	}
	hb, err := goimagehash.DifferenceHash(b)
	if err != nil {
		return 0, fmt.Errorf("hash: %w", err)
	}
	return ha.Distance(hb)
}
