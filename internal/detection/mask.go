package detection

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mask pixel values. A mask is an *image.Gray holding only these two
// values, with the same dimensions as its source image.
const (
	maskOff = 0
	maskOn  = 255
)

// BuildMask classifies every pixel of img against the profile of c and
// returns a binary mask: maskOn where the pixel's HSV value falls inside
// any of the color's threshold ranges, maskOff elsewhere.
//
// The image is converted to HSV once, pixel by pixel. For colors with
// multiple ranges (red, whose hue band wraps the origin) the per-range
// masks are unioned: a pixel matching any band is set.
//
// The mask's bounds start at (0,0) regardless of the source image's
// bounds offset; mask coordinates correspond to source pixels offset by
// the source's Bounds().Min.
//
// Fails with *UnsupportedColorError if c is not a supported color.
func BuildMask(img image.Image, c Color) (*image.Gray, error) {
	ranges, ok := c.Ranges()
	if !ok {
		return nil, &UnsupportedColorError{Name: string(c)}
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	mask := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			h, s, v := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}.Hsv()

			for _, rg := range ranges {
				if rg.Contains(h, s, v) {
					mask.SetGray(x, y, color.Gray{Y: maskOn})
					break
				}
			}
		}
	}

	return mask, nil
}
