package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/plotmetric/plotarea/internal/classify"
	"github.com/plotmetric/plotarea/internal/contour"
	"github.com/plotmetric/plotarea/internal/geometry"
	"github.com/plotmetric/plotarea/internal/imaging"
)

// ErrEmptyRegion indicates the image contains no region-marker pixels, so
// there is nothing to crop to and nothing to measure.
var ErrEmptyRegion = imaging.ErrEmptyRegion

// ErrInsufficientRows indicates fewer than 3 rows produced a valid boundary
// extent, too few to form a polygon. Retrying with a smaller Jump may help.
var ErrInsufficientRows = errors.New("too few rows with a valid boundary extent")

// minPolygonRows is the smallest number of row extents that can enclose area.
const minPolygonRows = 3

// Options configures a pipeline run.
type Options struct {
	// Slack is the padding in pixels added around the marker bounding box
	// before cropping. Must be >= 0.
	Slack int

	// Jump is the row stride of the scanline extraction: only every Jump-th
	// row is processed. 1 processes every row.
	Jump int

	// Thresholds are the channel-band rules for the three color classes.
	Thresholds classify.Thresholds
}

// DefaultOptions returns the stock configuration: slack 5, every row,
// default color thresholds.
func DefaultOptions() Options {
	return Options{
		Slack:      5,
		Jump:       1,
		Thresholds: classify.DefaultThresholds(),
	}
}

// Result holds the two area estimates and the reconstructed polygons for
// optional diagnostic rendering. Areas are in pixel² units.
type Result struct {
	BoundaryArea float64
	InteriorArea float64

	BoundaryPolygon geometry.Polygon
	InteriorPolygon geometry.Polygon

	// Region is the crop rectangle derived from the marker mask.
	Region image.Rectangle

	// BoundaryRows and InteriorRows count the rows that contributed an
	// extent to each polygon.
	BoundaryRows int
	InteriorRows int
}

// Run measures one decoded map image.
//
// Stages, in the order the crop contract requires (the marker class is read
// from the pristine pixels, the other classes from the cropped ones):
//
//  1. Build the normalized working grid from the image.
//  2. Classify the region-marker mask; compute the padded crop rectangle.
//     ErrEmptyRegion propagates when no marker pixels exist.
//  3. Clear everything outside the rectangle to background.
//  4. Classify boundary and interior masks over the cleared grid.
//  5. Extract per-row extents; fewer than 3 boundary rows yields
//     ErrInsufficientRows.
//  6. Assemble both polygons and compute their areas.
//
// A valid boundary with a degenerate interior (fewer than 3 interior rows)
// is a legitimate outcome: InteriorArea is 0 and no error is returned.
func Run(img image.Image, opts Options) (*Result, error) {
	grid := imaging.FromImage(img)

	marker := classify.MaskOf(grid, opts.Thresholds.Marker)
	region, err := imaging.MarkerRegion(marker, opts.Slack)
	if err != nil {
		return nil, err
	}

	imaging.ClearOutside(grid, region)

	boundary := classify.MaskOf(grid, opts.Thresholds.Boundary)
	interior := classify.MaskOf(grid, opts.Thresholds.Interior)

	bndExtents, inrExtents := contour.Extract(boundary, interior, opts.Jump)
	if len(bndExtents) < minPolygonRows {
		return nil, fmt.Errorf("%w: %d of %d required", ErrInsufficientRows, len(bndExtents), minPolygonRows)
	}

	boundaryPoly := contour.Assemble(bndExtents, grid.Height)

	// An interior with too few rows cannot enclose area; leave it as an
	// empty polygon rather than a flat strip with spurious area.
	var interiorPoly geometry.Polygon
	if len(inrExtents) >= minPolygonRows {
		interiorPoly = contour.Assemble(inrExtents, grid.Height)
	}

	return &Result{
		BoundaryArea:    boundaryPoly.Area(),
		InteriorArea:    interiorPoly.Area(),
		BoundaryPolygon: boundaryPoly,
		InteriorPolygon: interiorPoly,
		Region:          region,
		BoundaryRows:    len(bndExtents),
		InteriorRows:    len(inrExtents),
	}, nil
}
