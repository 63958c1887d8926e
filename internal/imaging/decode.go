package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder (decode only)
)

// DecodeError indicates a byte buffer is not a decodable raster image.
// Retrying with the same bytes cannot succeed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode converts an uploaded byte buffer into an image.
//
// The concrete image type depends on the source format (e.g. *image.NRGBA,
// *image.YCbCr). Fails with *DecodeError if the bytes are not a recognized
// raster format or are corrupt.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// Info is lightweight metadata about an encoded image buffer.
type Info struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// Sniff reads dimensions and format from an encoded buffer without
// decoding the full pixel data. Fails with *DecodeError on unrecognized
// input.
func Sniff(data []byte) (*Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// EncodePNG serializes an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
