package detection

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
)

// DefaultKernelRadius is the structuring-element radius used for
// morphological cleanup. Radius 2 corresponds to roughly a 5x5 kernel:
// speckle smaller than the kernel is erased and gaps smaller than the
// kernel are filled. It is a tunable, not image-derived.
const DefaultKernelRadius = 2.0

// CleanMask suppresses noise in a binary mask.
//
// Two passes run in sequence:
//
//   - open (erode then dilate): removes isolated specks smaller than the
//     structuring element without shrinking larger regions' extents
//   - close (dilate then erode): fills small interior gaps so one hold
//     does not fragment into multiple regions
//
// A radius <= 0 selects DefaultKernelRadius. The returned mask is a new
// allocation with the same dimensions as the input; the input is not
// modified.
func CleanMask(mask *image.Gray, radius float64) *image.Gray {
	if radius <= 0 {
		radius = DefaultKernelRadius
	}

	opened := effect.Dilate(effect.Erode(mask, radius), radius)
	closed := effect.Erode(effect.Dilate(opened, radius), radius)

	return binarize(closed)
}

// binarize converts a morphology result back to a strict two-value mask.
// Channels are equal for mask input, so the red channel is authoritative.
func binarize(img *image.RGBA) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y).R >= 128 {
				out.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: maskOn})
			}
		}
	}
	return out
}
