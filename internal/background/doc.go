// Package background separates the climbing wall from its surroundings
// and produces a transparent-background version of the photo.
//
// The background color is modelled from a band of pixels along the image
// border; pixels far from that model in Lab space are kept as foreground.
// Morphological close and open passes smooth the resulting cutout before
// it is written to the alpha channel. The RGB channels of the source are
// preserved untouched.
package background
