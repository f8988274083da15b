package contour

import (
	"sort"

	"github.com/plotmetric/plotarea/internal/geometry"
)

// Assemble builds a closed polygon from per-row extents.
//
// The extents are first sorted by row index, so the result does not depend
// on the order the caller accumulated them in. The polygon then descends
// the left edge (MinX of each row, top to bottom) and ascends the right
// edge (MaxX of each row, bottom to top); closure back to the first vertex
// is implicit.
//
// Rows are converted from image storage coordinates (origin top-left, Y
// down) to plot coordinates (origin bottom-left, Y up) via y = height − row,
// where height is the image height in pixels. Area is invariant under this
// flip; only the winding order reverses.
//
// Fewer than 3 extents cannot enclose area; Assemble still returns the
// (degenerate) vertex sequence and leaves the ≥3 policy to the caller.
func Assemble(extents []RowExtent, height int) geometry.Polygon {
	sorted := make([]RowExtent, len(extents))
	copy(sorted, extents)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Row < sorted[j].Row })

	poly := make(geometry.Polygon, 0, 2*len(sorted))
	for _, e := range sorted {
		poly = append(poly, geometry.Point{X: float64(e.MinX), Y: float64(height - e.Row)})
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		poly = append(poly, geometry.Point{X: float64(e.MaxX), Y: float64(height - e.Row)})
	}
	return poly
}
