package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyRegion is returned when the region-marker mask contains no pixels,
// so no crop rectangle can be computed.
var ErrEmptyRegion = errors.New("region marker mask is empty")

// MarkerRegion computes the crop rectangle for a marked plot: the tight
// bounding box of the marker pixels, padded by slack on every side and
// clamped to the mask dimensions.
//
// Multiple disjoint marker clusters are not distinguished; the rectangle
// covers all marker pixels. A negative slack is treated as 0.
func MarkerRegion(marker *Mask, slack int) (image.Rectangle, error) {
	extent, ok := marker.Extent()
	if !ok {
		return image.Rectangle{}, fmt.Errorf("computing crop bounds: %w", ErrEmptyRegion)
	}

	if slack < 0 {
		slack = 0
	}
	padded := image.Rect(
		extent.Min.X-slack,
		extent.Min.Y-slack,
		extent.Max.X+slack,
		extent.Max.Y+slack,
	)
	return padded.Intersect(image.Rect(0, 0, marker.Width, marker.Height)), nil
}

// ClearOutside overwrites every grid pixel outside keep with white
// background, so classification of the cleared grid can never see boundary
// or interior pixels beyond the target region.
//
// This is a destructive pre-filter on the working copy. Callers that still
// need the original pixel values (the marker mask classification does) must
// read them before calling ClearOutside.
func ClearOutside(g *Grid, keep image.Rectangle) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x >= keep.Min.X && x < keep.Max.X && y >= keep.Min.Y && y < keep.Max.Y {
				continue
			}
			g.pix[y*g.Width+x] = White
		}
	}
}
