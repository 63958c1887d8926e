package detection

import (
	"fmt"
	"image"
)

// Result is the outcome of a single-color detection.
type Result struct {
	// Color is the requested color name.
	Color string `json:"color"`

	// Holds lists detected holds in discovery order. Empty (never nil)
	// when no holds of this color were found.
	Holds []Hold `json:"holds"`
}

// MultiResult maps every supported color name to its detected holds.
// All nine keys are always present; colors without holds map to an empty
// slice, not a missing entry.
type MultiResult map[string][]Hold

// Identify runs the full pipeline for one color: mask, clean, extract.
//
// It fails with *UnsupportedColorError for an unknown color and never
// returns partial results. A minArea <= 0 selects DefaultMinArea.
func Identify(img image.Image, c Color, minArea int) (*Result, error) {
	mask, err := BuildMask(img, c)
	if err != nil {
		return nil, err
	}

	cleaned := CleanMask(mask, DefaultKernelRadius)
	if !cleaned.Bounds().Eq(mask.Bounds()) {
		// Programming error in the cleanup stage; fatal to this request only.
		return nil, fmt.Errorf("mask dimensions changed during cleanup: %v -> %v",
			mask.Bounds(), cleaned.Bounds())
	}

	return &Result{
		Color: string(c),
		Holds: ExtractHolds(cleaned, minArea),
	}, nil
}

// IdentifyAll runs Identify for every supported color and assembles the
// per-color hold lists.
//
// Colors are processed sequentially, one mask pair alive at a time, so
// peak memory stays proportional to a single mask regardless of how many
// colors are supported. Color pipelines are independent: a pixel matching
// two colors' ranges is reported under both.
func IdentifyAll(img image.Image, minArea int) (MultiResult, error) {
	out := make(MultiResult, len(All))
	for _, c := range All {
		res, err := Identify(img, c, minArea)
		if err != nil {
			return nil, fmt.Errorf("detect %s holds: %w", c, err)
		}
		out[string(c)] = res.Holds
	}
	return out, nil
}
