// Package pipeline orchestrates one image's journey from decoded pixels to
// the pair of area estimates: classify, crop to the marked region, extract
// scanline extents, assemble polygons, measure.
//
// A run is single-threaded and self-contained; nothing is shared across
// invocations, so callers may process many images concurrently, one Run per
// goroutine.
//
// # Failure policy
//
// Row-level extraction shortfalls are absorbed inside the contour package
// and never surface here. Image-level failures do: ErrEmptyRegion when no
// region marker exists, ErrInsufficientRows when too few rows produced a
// boundary extent to enclose area. A degenerate interior polygon is not a
// failure; its area is simply 0.
package pipeline
