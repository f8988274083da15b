package classify

import (
	"github.com/anthonynsimon/bild/parallel"

	"github.com/plotmetric/plotarea/internal/imaging"
)

// Band is an open interval over a normalized channel value: a value v
// matches when Lo < v < Hi. Use bounds outside [0, 1] to leave a side
// unconstrained.
type Band struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

func (b Band) contains(v float64) bool {
	return v > b.Lo && v < b.Hi
}

// Rule classifies a pixel by requiring all three channels to fall inside
// their bands.
type Rule struct {
	R Band `yaml:"r"`
	G Band `yaml:"g"`
	B Band `yaml:"b"`
}

// Match reports whether the pixel satisfies the rule.
func (r Rule) Match(p imaging.Pixel) bool {
	return r.R.contains(p.R) && r.G.contains(p.G) && r.B.contains(p.B)
}

// Thresholds holds the channel bands for the three map classes. The zero
// value matches nothing; start from DefaultThresholds and override
// individual bounds via configuration.
type Thresholds struct {
	Marker   Rule `yaml:"marker"`
	Boundary Rule `yaml:"boundary"`
	Interior Rule `yaml:"interior"`
}

// DefaultThresholds returns the stock classification rules:
//
//	marker (green):  g > 0.9  ∧ r < 0.1  ∧ b < 0.1
//	boundary (red):  r > 0.95 ∧ g < 0.05 ∧ b < 0.05
//	interior (grey): 0.80 < r,g,b < 0.95
func DefaultThresholds() Thresholds {
	return Thresholds{
		Marker: Rule{
			R: Band{Lo: -1, Hi: 0.1},
			G: Band{Lo: 0.9, Hi: 2},
			B: Band{Lo: -1, Hi: 0.1},
		},
		Boundary: Rule{
			R: Band{Lo: 0.95, Hi: 2},
			G: Band{Lo: -1, Hi: 0.05},
			B: Band{Lo: -1, Hi: 0.05},
		},
		Interior: Rule{
			R: Band{Lo: 0.80, Hi: 0.95},
			G: Band{Lo: 0.80, Hi: 0.95},
			B: Band{Lo: 0.80, Hi: 0.95},
		},
	}
}

// Class identifies which color class a pixel belongs to.
type Class int

const (
	// Background is everything no rule matches.
	Background Class = iota
	// Marker is the region-locating color (green by default).
	Marker
	// Boundary is the drawn contour color (red by default).
	Boundary
	// Interior is the shaded region of interest (grey by default).
	Interior
)

// Classify returns the class of a single pixel. Rules are checked in
// marker, boundary, interior order; under the default thresholds the bands
// are disjoint so the order is immaterial.
func Classify(p imaging.Pixel, th Thresholds) Class {
	switch {
	case th.Marker.Match(p):
		return Marker
	case th.Boundary.Match(p):
		return Boundary
	case th.Interior.Match(p):
		return Interior
	default:
		return Background
	}
}

// MaskOf builds the membership mask of one rule over the whole grid.
// Rows are evaluated in parallel bands; the result is deterministic.
func MaskOf(g *imaging.Grid, rule Rule) *imaging.Mask {
	m := imaging.NewMask(g.Width, g.Height)
	parallel.Line(g.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < g.Width; x++ {
				if rule.Match(g.At(x, y)) {
					m.Set(x, y)
				}
			}
		}
	})
	return m
}
