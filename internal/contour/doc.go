// Package contour reconstructs plottable polygons from classified pixel
// masks using a per-scanline nearest-extent heuristic.
//
// The extraction walks image rows top to bottom. In each row it takes the
// leftmost and rightmost boundary-class pixel as the two contour crossings,
// and the leftmost and rightmost interior-class pixel strictly between them
// as the interior crossings. Rows that cannot produce a pair are skipped
// rather than treated as errors: one broken row must not abort the image.
//
// Assembly turns the surviving row extents into a single closed polygon by
// descending the left edge and ascending the right edge. The construction
// yields a simple (non-self-intersecting) polygon as long as the left and
// right extents vary reasonably monotonically; no validation is performed.
//
// # Limitations
//
// The heuristic assumes each row crosses the boundary at most twice, i.e. a
// convex-ish cross-section per scanline. Re-entrant shapes, multiple
// disjoint regions in one row, and boundary gaps on a single side produce a
// systematically biased extent rather than a detected error.
package contour
