package detection

import (
	"image"
	"image/color"
	"testing"
)

func TestExtractHolds_EmptyMask(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 40, 40))
	holds := ExtractHolds(mask, 1)

	if holds == nil {
		t.Fatal("holds should be an empty slice, not nil")
	}
	if len(holds) != 0 {
		t.Errorf("holds in empty mask: got %d, want 0", len(holds))
	}
}

func TestExtractHolds_TwoComponents(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 100, 100))
	for _, r := range []image.Rectangle{
		image.Rect(5, 5, 25, 20),
		image.Rect(60, 70, 90, 95),
	} {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				mask.SetGray(x, y, color.Gray{Y: maskOn})
			}
		}
	}

	holds := ExtractHolds(mask, 1)
	if len(holds) != 2 {
		t.Fatalf("holds: got %d, want 2", len(holds))
	}

	// Discovery order: the row-major scan reaches the upper region first.
	if holds[0].Position != (Point{X: 5, Y: 5}) {
		t.Errorf("first hold position: got %+v, want {5 5}", holds[0].Position)
	}
	if holds[0].Size != (Size{Width: 20, Height: 15}) {
		t.Errorf("first hold size: got %+v, want {20 15}", holds[0].Size)
	}
	if holds[1].Position != (Point{X: 60, Y: 70}) {
		t.Errorf("second hold position: got %+v, want {60 70}", holds[1].Position)
	}
	if holds[1].Size != (Size{Width: 30, Height: 25}) {
		t.Errorf("second hold size: got %+v, want {30 25}", holds[1].Size)
	}
}

func TestExtractHolds_MinAreaFilter(t *testing.T) {
	// 5x5 blob: bounding-box area 25.
	mask := maskWithRect(50, 50, image.Rect(20, 20, 25, 25))

	if holds := ExtractHolds(mask, 100); len(holds) != 0 {
		t.Errorf("blob below min area survived: %d holds", len(holds))
	}
	if holds := ExtractHolds(mask, 25); len(holds) != 1 {
		t.Errorf("blob at exactly min area dropped: %d holds", len(holds))
	}
}

func TestExtractHolds_BoundingBoxAreaNotPixelCount(t *testing.T) {
	// A hollow ring has few pixels but a large bounding box; the filter
	// must judge it by the box.
	mask := image.NewGray(image.Rect(0, 0, 50, 50))
	r := image.Rect(10, 10, 30, 30)
	for x := r.Min.X; x < r.Max.X; x++ {
		mask.SetGray(x, r.Min.Y, color.Gray{Y: maskOn})
		mask.SetGray(x, r.Max.Y-1, color.Gray{Y: maskOn})
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mask.SetGray(r.Min.X, y, color.Gray{Y: maskOn})
		mask.SetGray(r.Max.X-1, y, color.Gray{Y: maskOn})
	}

	holds := ExtractHolds(mask, 300) // ring has only 76 pixels, box is 400
	if len(holds) != 1 {
		t.Fatalf("hollow ring filtered out: got %d holds, want 1", len(holds))
	}
	if holds[0].Size != (Size{Width: 20, Height: 20}) {
		t.Errorf("ring bounding box: got %+v, want {20 20}", holds[0].Size)
	}
}

func TestExtractHolds_DiagonalConnectivity(t *testing.T) {
	// Diagonally touching pixels are 8-connected: one component.
	mask := image.NewGray(image.Rect(0, 0, 20, 20))
	mask.SetGray(5, 5, color.Gray{Y: maskOn})
	mask.SetGray(6, 6, color.Gray{Y: maskOn})
	mask.SetGray(7, 7, color.Gray{Y: maskOn})

	holds := ExtractHolds(mask, 1)
	if len(holds) != 1 {
		t.Fatalf("diagonal chain: got %d components, want 1", len(holds))
	}
	if holds[0].Size != (Size{Width: 3, Height: 3}) {
		t.Errorf("diagonal chain box: got %+v, want {3 3}", holds[0].Size)
	}
}

func TestExtractHolds_PositiveDimensions(t *testing.T) {
	mask := maskWithRect(30, 30, image.Rect(12, 12, 13, 13))
	holds := ExtractHolds(mask, 1)
	if len(holds) != 1 {
		t.Fatalf("holds: got %d, want 1", len(holds))
	}
	if holds[0].Size.Width <= 0 || holds[0].Size.Height <= 0 {
		t.Errorf("hold has non-positive dimensions: %+v", holds[0].Size)
	}
}
