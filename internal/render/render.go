package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cruxvision/holdscan/internal/detection"
)

const (
	// fillAlpha is the overlay fill opacity (30%); the wall photo stays
	// visible through the fill.
	fillAlpha = 77

	// outlineWidth is the rectangle outline thickness in pixels.
	outlineWidth = 2
)

// displayHex is the representative display color for each supported hold
// color.
var displayHex = map[string]string{
	string(detection.Red):    "#FF0000",
	string(detection.Blue):   "#0000FF",
	string(detection.Green):  "#00FF00",
	string(detection.Yellow): "#FFFF00",
	string(detection.Purple): "#FF00FF",
	string(detection.Orange): "#FFA500",
	string(detection.Pink):   "#FFC0CB",
	string(detection.White):  "#FFFFFF",
	string(detection.Black):  "#000000",
}

var displayPalette = buildPalette()

func buildPalette() map[string]color.NRGBA {
	palette := make(map[string]color.NRGBA, len(displayHex))
	for name, hex := range displayHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("render: bad palette entry %s=%s: %v", name, hex, err))
		}
		r, g, b := c.RGB255()
		palette[name] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// Holds renders hold rectangles on top of the source image and returns the
// encoded PNG.
//
// With overlay=false the source contributes only its dimensions: holds are
// drawn on a black canvas, filled opaquely in their display color with a
// white outline. With overlay=true the canvas is a copy of the source and
// fills are alpha-blended so underlying detail is preserved; outlines are
// opaque in the display color.
//
// Colors are drawn in the fixed detection.All order and holds within a
// color in input order; overlapping rectangles occlude in that order. Keys
// of holdsByColor outside the supported set are an error. Single-color
// callers pass a one-entry map.
func Holds(src image.Image, holdsByColor map[string][]detection.Hold, overlay bool) ([]byte, error) {
	for name := range holdsByColor {
		if _, ok := displayPalette[name]; !ok {
			return nil, &detection.UnsupportedColorError{Name: name}
		}
	}

	var canvas *image.NRGBA
	if overlay {
		canvas = imaging.Clone(src)
	} else {
		canvas = blackCanvas(src.Bounds().Dx(), src.Bounds().Dy())
	}

	for _, c := range detection.All {
		holds, ok := holdsByColor[string(c)]
		if !ok {
			continue
		}
		display := displayPalette[string(c)]

		fill := display
		outline := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		if overlay {
			fill.A = fillAlpha
			outline = display
		}

		for _, h := range holds {
			drawHold(canvas, h, fill, outline)
		}
	}

	return encodePNG(canvas)
}

// HoldsOnCanvas is the dimensions-only form of the mask-only mode, for
// callers that no longer have the decoded source image.
func HoldsOnCanvas(width, height int, holdsByColor map[string][]detection.Hold) ([]byte, error) {
	return Holds(blackCanvas(width, height), holdsByColor, false)
}

// drawHold is the single drawing primitive both modes share: a filled
// rectangle composited with draw.Over, then a border of outlineWidth.
// The rectangle is clipped to the canvas.
func drawHold(dst *image.NRGBA, h detection.Hold, fill, outline color.NRGBA) {
	r := image.Rect(
		h.Position.X,
		h.Position.Y,
		h.Position.X+h.Size.Width,
		h.Position.Y+h.Size.Height,
	).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	draw.Draw(dst, r, image.NewUniform(fill), image.Point{}, draw.Over)
	drawBorder(dst, r, outline, outlineWidth)
}

// drawBorder draws a rectangle border of the given width just inside r.
func drawBorder(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, width int) {
	u := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), u, image.Point{}, draw.Src)
	}
}

func blackCanvas(width, height int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(),
		image.NewUniform(color.NRGBA{A: 255}), image.Point{}, draw.Src)
	return canvas
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode visualization: %w", err)
	}
	return buf.Bytes(), nil
}
