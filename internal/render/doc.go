// Package render produces diagnostic overlays: the crop rectangle and the
// two reconstructed polygons drawn over a copy of the source map, so an
// analyst can eyeball what the pipeline actually measured. Rendering has no
// effect on the computed areas.
package render
