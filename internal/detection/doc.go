// Package detection locates colored climbing holds in wall photographs.
//
// The pipeline has three stages, each exposed as a standalone function and
// combined by Identify / IdentifyAll:
//
//  1. BuildMask thresholds the image in HSV space against a color profile,
//     producing a binary mask of pixels that belong to the target color.
//  2. CleanMask applies morphological open and close passes to remove
//     speckle noise and fill small gaps.
//  3. ExtractHolds finds 8-connected regions in the cleaned mask and reduces
//     each one to its axis-aligned bounding box, discarding regions whose
//     bounding-box area falls below a minimum.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner of
// the source image. A hold's Position is the top-left corner of its
// bounding box.
//
// # Supported Colors
//
// The color set is fixed at process start: red, blue, green, yellow,
// purple, orange, pink, white, black. Color names outside this set fail
// with *UnsupportedColorError. The profile table is immutable and safe for
// concurrent reads; no other state is shared between invocations.
//
// # Determinism
//
// Given byte-identical input images, every stage produces byte-identical
// output. Hold order is the discovery order of the row-major component
// scan: stable within a call, not spatially sorted.
package detection
