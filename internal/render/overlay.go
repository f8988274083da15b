package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	"golang.org/x/image/colornames"

	"github.com/plotmetric/plotarea/internal/geometry"
)

// Overlay colors: orange for the crop rectangle, blue for the boundary
// polygon, magenta for the interior polygon. All chosen to stay legible
// against the red/green/grey ink of the source maps.
var (
	regionColor   = colornames.Orange
	boundaryColor = colornames.Blue
	interiorColor = colornames.Magenta
)

// Overlay draws the crop rectangle and both polygons over a copy of the
// source image. The input image is never modified.
//
// Polygon vertices are in plot coordinates (Y up); they are flipped back to
// image rows here, the inverse of the mapping the contour assembler applied.
func Overlay(img image.Image, region image.Rectangle, boundary, interior geometry.Polygon) *image.RGBA {
	out := clone.AsRGBA(img)
	height := out.Bounds().Dy()

	drawRect(out, region, regionColor)
	drawPolygon(out, boundary, height, boundaryColor)
	drawPolygon(out, interior, height, interiorColor)

	return out
}

// Save writes an overlay image to path; the format follows the file
// extension (PNG recommended).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save overlay %s: %w", path, err)
	}
	return nil
}

// drawRect outlines a rectangle given in image coordinates (Max exclusive).
func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	drawLine(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, c)
	drawLine(img, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, c)
	drawLine(img, r.Max.X-1, r.Max.Y-1, r.Min.X, r.Max.Y-1, c)
	drawLine(img, r.Min.X, r.Max.Y-1, r.Min.X, r.Min.Y, c)
}

// drawPolygon draws the closed outline of a polygon whose vertices use the
// y-up plot convention; height is the image height used for the flip.
func drawPolygon(img *image.RGBA, poly geometry.Polygon, height int, c color.RGBA) {
	if len(poly) < 2 {
		return
	}
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		drawLine(img, int(a.X), height-int(a.Y), int(b.X), height-int(b.Y), c)
	}
}

// drawLine rasterizes a straight segment with Bresenham's algorithm,
// clipping writes to the image bounds.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	bounds := img.Bounds()
	for {
		if x0 >= bounds.Min.X && x0 < bounds.Max.X && y0 >= bounds.Min.Y && y0 < bounds.Max.Y {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
