package detection

import "image"

// Point is a pixel coordinate in source-image space, origin top-left.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is the pixel extent of a hold's bounding box. Both dimensions are
// strictly positive for any Hold produced by this package.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Hold is a detected climbing hold, represented solely by its axis-aligned
// bounding box. Position is the top-left corner.
type Hold struct {
	Position Point `json:"position"`
	Size     Size  `json:"size"`
}

// DefaultMinArea is the bounding-box area below which a detected region is
// discarded as noise.
const DefaultMinArea = 100

// ExtractHolds finds maximal 8-connected components of set pixels in a
// mask and returns one Hold per surviving component.
//
// The filter compares the component's bounding-box area (width x height)
// against minArea, not its pixel count, so elongated or hollow regions are
// not penalized for low pixel density. A minArea <= 0 selects
// DefaultMinArea.
//
// Holds are returned in the order the row-major scan first touches each
// component. The order is stable for a given mask but carries no spatial
// guarantee; callers needing a canonical order must sort. An empty or
// all-clear mask yields an empty (non-nil) slice.
func ExtractHolds(mask *image.Gray, minArea int) []Hold {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}

	bounds := mask.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	visited := make([]bool, width*height)

	holds := make([]Hold, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || mask.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y == maskOff {
				continue
			}

			minX, minY, maxX, maxY := traceComponent(mask, visited, x, y, width, height)

			w := maxX - minX + 1
			h := maxY - minY + 1
			if w*h < minArea {
				continue
			}

			holds = append(holds, Hold{
				Position: Point{X: minX, Y: minY},
				Size:     Size{Width: w, Height: h},
			})
		}
	}

	return holds
}

// traceComponent flood-fills the component containing (startX, startY) and
// returns its bounding box.
//
// Uses an explicit stack rather than recursion so large regions cannot
// overflow the call stack. Neighbors are 8-connected, so diagonally
// touching pixels belong to the same hold.
func traceComponent(mask *image.Gray, visited []bool, startX, startY, width, height int) (minX, minY, maxX, maxY int) {
	bounds := mask.Bounds()
	minX, minY = startX, startY
	maxX, maxY = startX, startY

	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y*width+p.X] || mask.GrayAt(bounds.Min.X+p.X, bounds.Min.Y+p.Y).Y == maskOff {
			continue
		}
		visited[p.Y*width+p.X] = true

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return minX, minY, maxX, maxY
}
