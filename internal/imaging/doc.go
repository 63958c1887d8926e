// Package imaging decodes uploaded image buffers and encodes pipeline
// output.
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP input; the format is
// sniffed from the bytes, never from a declared content type or filename.
// Undecodable input fails with *DecodeError and produces no partial image.
//
// Decoded images are request-scoped values: nothing in this package caches
// or shares them between calls.
package imaging
