// Package render draws detected holds as rectangles and encodes the
// result as PNG.
//
// Two modes share one drawing primitive:
//
//   - mask-only: solid black canvas, opaque fills in each color's display
//     color, white outlines
//   - overlay: copy of the source photo, translucent fills, opaque
//     outlines in the display color, so wall detail stays visible under
//     the fill
//
// Rectangles are drawn in input order; where holds overlap in screen
// space, later rectangles occlude earlier ones. Output dimensions always
// equal the source dimensions.
package render
