package background

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultMargin is the width in pixels of the border band sampled to
	// model the background color. The wall itself is assumed to sit inside
	// this margin.
	DefaultMargin = 10

	// DefaultThreshold is the minimum Lab-space distance from the
	// background model for a pixel to count as foreground. Lab distances
	// run roughly 0-1 for natural images.
	DefaultThreshold = 0.18

	// cleanupRadius is the structuring-element radius for the close/open
	// smoothing passes on the cutout mask.
	cleanupRadius = 3.0
)

// Remove cuts the background out of a wall photo.
//
// The average color of the border band (width margin) is taken as the
// background model. Every pixel whose Lab distance from the model exceeds
// threshold is foreground. The binary cutout is smoothed with a
// morphological close followed by an open, then applied as the alpha
// channel of an otherwise unmodified copy of the source: alpha 255 on the
// wall, 0 on background.
//
// margin <= 0 and threshold <= 0 select the defaults. Fails if the image
// is too small to leave any interior inside the margin.
func Remove(img image.Image, margin int, threshold float64) (*image.NRGBA, error) {
	if margin <= 0 {
		margin = DefaultMargin
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 2*margin || height <= 2*margin {
		return nil, fmt.Errorf("image %dx%d too small for %dpx background margin", width, height, margin)
	}

	model := borderAverage(img, margin)

	mask := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if pixelColor(img, bounds.Min.X+x, bounds.Min.Y+y).DistanceLab(model) > threshold {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	// Close first to heal holes inside the wall, then open to drop
	// isolated flecks in the background.
	closed := effect.Erode(effect.Dilate(mask, cleanupRadius), cleanupRadius)
	opened := effect.Dilate(effect.Erode(closed, cleanupRadius), cleanupRadius)

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			alpha := uint8(0)
			if opened.RGBAAt(x, y).R >= 128 {
				alpha = 255
			}
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: alpha,
			})
		}
	}

	return out, nil
}

// borderAverage averages the colors of all pixels within margin of any
// image edge.
func borderAverage(img image.Image, margin int) colorful.Color {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var sumR, sumG, sumB float64
	var n int

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x >= margin && x < width-margin && y >= margin && y < height-margin {
				continue
			}
			c := pixelColor(img, bounds.Min.X+x, bounds.Min.Y+y)
			sumR += c.R
			sumG += c.G
			sumB += c.B
			n++
		}
	}

	return colorful.Color{R: sumR / float64(n), G: sumG / float64(n), B: sumB / float64(n)}
}

func pixelColor(img image.Image, x, y int) colorful.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return colorful.Color{
		R: float64(r>>8) / 255.0,
		G: float64(g>>8) / 255.0,
		B: float64(b>>8) / 255.0,
	}
}
