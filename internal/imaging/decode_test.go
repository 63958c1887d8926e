package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	return img
}

func TestDecode_RoundTrip(t *testing.T) {
	data, err := EncodePNG(testImage(64, 48))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("decoded dimensions: got %dx%d, want 64x48", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestDecode_MalformedBuffer(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("this is not an image")},
		{"truncated png magic", []byte{0x89, 0x50, 0x4E}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data)
			if err == nil {
				t.Fatal("Decode should fail for malformed input")
			}
			if img != nil {
				t.Error("no partial image may be returned on failure")
			}

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error type: got %T, want *DecodeError", err)
			}
			if decodeErr.Unwrap() == nil {
				t.Error("DecodeError should wrap the underlying cause")
			}
		})
	}
}

func TestSniff(t *testing.T) {
	data, err := EncodePNG(testImage(30, 20))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	info, err := Sniff(data)
	if err != nil {
		t.Fatalf("Sniff failed: %v", err)
	}
	if info.Width != 30 || info.Height != 20 {
		t.Errorf("sniffed dimensions: got %dx%d, want 30x20", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("sniffed format: got %s, want png", info.Format)
	}
}

func TestSniff_Malformed(t *testing.T) {
	var decodeErr *DecodeError
	if _, err := Sniff([]byte("garbage")); !errors.As(err, &decodeErr) {
		t.Fatalf("Sniff error: got %T, want *DecodeError", err)
	}
}
