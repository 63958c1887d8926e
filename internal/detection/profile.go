package detection

import (
	"fmt"
	"strings"
)

// Color is the name of a supported hold color.
//
// The set of valid values is closed; use ParseColor to validate external
// input before passing a Color into the pipeline.
type Color string

// Supported hold colors.
const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Purple Color = "purple"
	Orange Color = "orange"
	Pink   Color = "pink"
	White  Color = "white"
	Black  Color = "black"
)

// All lists every supported color in a fixed order. IdentifyAll iterates in
// this order, so results for identical input are deterministic.
var All = []Color{Red, Blue, Green, Yellow, Purple, Orange, Pink, White, Black}

// HSVRange is one contiguous span of HSV space belonging to a color
// profile. Hue is in degrees (0-360); saturation and value are fractions
// (0-1). All bounds are inclusive.
type HSVRange struct {
	HMin, HMax float64 // hue, degrees
	SMin, SMax float64 // saturation
	VMin, VMax float64 // value
}

// Contains reports whether the HSV triple falls inside the range.
func (r HSVRange) Contains(h, s, v float64) bool {
	return h >= r.HMin && h <= r.HMax &&
		s >= r.SMin && s <= r.SMax &&
		v >= r.VMin && v <= r.VMax
}

// Threshold bounds shared across profiles. Chromatic colors require a
// minimum saturation and value so washed-out or shadowed pixels don't
// match a hue band.
const (
	chromaSatMin = 100.0 / 255.0
	chromaValMin = 100.0 / 255.0

	// White is a value-axis extreme: near-zero saturation, high value.
	whiteSatMax = 30.0 / 255.0
	whiteValMin = 200.0 / 255.0

	// Black is anything dark enough, regardless of hue or saturation.
	// Consequence: an all-black frame reports one full-frame black region.
	blackValMax = 30.0 / 255.0
)

// profiles is the process-wide color profile table. It is built once and
// never mutated, so concurrent reads need no locking.
//
// Red spans the hue origin, so it carries two bands; a pixel matching
// either band is red. Adjacent bands (purple/pink) intentionally overlap:
// a pixel may satisfy more than one color and will be reported for each.
var profiles = map[Color][]HSVRange{
	Red: {
		{HMin: 0, HMax: 20, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1},
		{HMin: 340, HMax: 360, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1},
	},
	Blue:   {{HMin: 200, HMax: 260, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1}},
	Green:  {{HMin: 80, HMax: 160, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1}},
	Yellow: {{HMin: 40, HMax: 60, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1}},
	Purple: {{HMin: 260, HMax: 320, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1}},
	Orange: {{HMin: 20, HMax: 40, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1}},
	Pink:   {{HMin: 300, HMax: 340, SMin: chromaSatMin, SMax: 1, VMin: chromaValMin, VMax: 1}},
	White:  {{HMin: 0, HMax: 360, SMin: 0, SMax: whiteSatMax, VMin: whiteValMin, VMax: 1}},
	Black:  {{HMin: 0, HMax: 360, SMin: 0, SMax: 1, VMin: 0, VMax: blackValMax}},
}

// Ranges returns the threshold ranges for a color. The returned slice is
// shared, read-only data; callers must not modify it.
func (c Color) Ranges() ([]HSVRange, bool) {
	r, ok := profiles[c]
	return r, ok
}

// ParseColor validates an externally supplied color name. Matching is
// case-insensitive. Unknown names fail with *UnsupportedColorError.
func ParseColor(name string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := profiles[c]; !ok {
		return "", &UnsupportedColorError{Name: name}
	}
	return c, nil
}

// UnsupportedColorError indicates a requested color name is not in the
// supported set. The message lists the valid names.
type UnsupportedColorError struct {
	Name string
}

func (e *UnsupportedColorError) Error() string {
	names := make([]string, len(All))
	for i, c := range All {
		names[i] = string(c)
	}
	return fmt.Sprintf("unsupported color %q (supported: %s)", e.Name, strings.Join(names, ", "))
}
