package contour

import (
	"github.com/plotmetric/plotarea/internal/imaging"
)

// RowExtent records the nearest-extent pair found in one image row: the
// leftmost and rightmost pixel of a class, in image (top-left origin)
// coordinates.
type RowExtent struct {
	Row  int // image row index, 0-based
	MinX int // leftmost class pixel in the row
	MaxX int // rightmost class pixel in the row
}

// Width returns the horizontal span of the extent in pixels.
func (e RowExtent) Width() int {
	return e.MaxX - e.MinX
}

// Extract scans the boundary and interior masks row by row and returns the
// per-row extents for each, in top-to-bottom row order.
//
// Parameters:
//   - boundary: mask of contour-line pixels (red class).
//   - interior: mask of region-of-interest pixels (grey class). Must have
//     the same dimensions as boundary.
//   - jump: row stride; only every jump-th row is processed, trading
//     accuracy for speed. Values below 1 are treated as 1.
//
// Row rules, applied independently per processed row:
//
//  1. Fewer than 2 boundary pixels in the row: the row is skipped entirely.
//     No partial single-point extent is ever emitted.
//  2. Otherwise the boundary extent is (leftmost, rightmost) boundary pixel.
//  3. Interior pixels only qualify when strictly between the row's boundary
//     extents. Fewer than 2 qualifying pixels: the row contributes no
//     interior extent, but its boundary extent still stands. Boundary and
//     interior shortfalls are decoupled.
//
// The output is a pure function of the two masks and jump; rows are visited
// in a fixed order and no randomness is involved. Skipped rows are absorbed
// silently, matching the local-recovery policy for hand-drawn input where
// individual rows are routinely degenerate.
func Extract(boundary, interior *imaging.Mask, jump int) (bnd, inr []RowExtent) {
	if jump < 1 {
		jump = 1
	}

	for y := 0; y < boundary.Height; y += jump {
		minRed, maxRed, redCount := rowExtent(boundary, y, 0, boundary.Width)
		if redCount < 2 {
			continue
		}
		bnd = append(bnd, RowExtent{Row: y, MinX: minRed, MaxX: maxRed})

		// Interior pixels must lie strictly inside the boundary pair.
		minGrey, maxGrey, greyCount := rowExtent(interior, y, minRed+1, maxRed)
		if greyCount < 2 {
			continue
		}
		inr = append(inr, RowExtent{Row: y, MinX: minGrey, MaxX: maxGrey})
	}

	return bnd, inr
}

// rowExtent finds the leftmost and rightmost member pixel of mask in row y,
// restricted to x in [lo, hi), and counts the members seen.
func rowExtent(m *imaging.Mask, y, lo, hi int) (minX, maxX, count int) {
	minX, maxX = -1, -1
	for x := lo; x < hi; x++ {
		if !m.At(x, y) {
			continue
		}
		if minX < 0 {
			minX = x
		}
		maxX = x
		count++
	}
	return minX, maxX, count
}
