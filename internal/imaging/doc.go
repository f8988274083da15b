// Package imaging provides the pixel-domain building blocks of the area
// pipeline: image loading and caching, the normalized working pixel grid,
// boolean class masks, and the region crop that isolates the marked plot.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with origin at the
// top-left corner: X increases rightward, Y (the row index) increases
// downward. The vertical flip into plot coordinates happens later, in the
// contour package, never here.
//
// # Working Copy Semantics
//
// Grid is a mutable, normalized copy of a decoded image. A pipeline run owns
// exactly one Grid; ClearOutside mutates it in place, so masks derived from
// the grid reflect whatever cropping has already been applied. Callers must
// classify the region marker before clearing and the remaining classes after.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Grid and Mask are not; each
// pipeline invocation builds its own and never shares them across images.
package imaging
