package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"
)

// Pixel holds one pixel's channel intensities normalized to [0, 1].
type Pixel struct {
	R, G, B float64
}

// White is the background value cropping writes over suppressed pixels.
var White = Pixel{R: 1, G: 1, B: 1}

// Grid is a mutable working copy of a decoded image: a width×height array
// of normalized pixels in row-major order. It is the value the pipeline
// crops and classifies, leaving the original image.Image untouched.
type Grid struct {
	Width  int
	Height int
	pix    []Pixel
}

// NewGrid returns a white-filled grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		pix:    make([]Pixel, width*height),
	}
	for i := range g.pix {
		g.pix[i] = White
	}
	return g
}

// FromImage converts a decoded image into a normalized pixel grid.
//
// Channel values are normalized to [0, 1] regardless of the source color
// model (8-bit, 16-bit, paletted). Fully transparent pixels, which carry no
// color information, become white background. Rows are converted in
// parallel bands; the result is identical to a sequential conversion.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := &Grid{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		pix:    make([]Pixel, bounds.Dx()*bounds.Dy()),
	}

	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < g.Width; x++ {
				c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
				if !ok {
					g.pix[y*g.Width+x] = White
					continue
				}
				g.pix[y*g.Width+x] = Pixel{R: c.R, G: c.G, B: c.B}
			}
		}
	})

	return g
}

// At returns the pixel at (x, y). Out-of-bounds coordinates read as white
// background.
func (g *Grid) At(x, y int) Pixel {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return White
	}
	return g.pix[y*g.Width+x]
}

// Set overwrites the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (g *Grid) Set(x, y int, p Pixel) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.pix[y*g.Width+x] = p
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Width:  g.Width,
		Height: g.Height,
		pix:    make([]Pixel, len(g.pix)),
	}
	copy(out.pix, g.pix)
	return out
}
