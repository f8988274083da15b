package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a 2D vertex in plot coordinates (Y increases upward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered vertex sequence, implicitly closed: the last vertex
// connects back to the first. Vertices must not self-intersect for Area to
// be meaningful; no validation is performed.
type Polygon []Point

// SignedArea computes the shoelace sum of the polygon. The sign encodes
// winding order: positive for counter-clockwise, negative for clockwise.
// Polygons with fewer than 3 vertices have area 0.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	area := 0.0
	j := len(p) - 1
	for i := range p {
		area += p[j].X*p[i].Y - p[i].X*p[j].Y
		j = i
	}
	return area / 2
}

// Area returns the absolute area enclosed by the polygon in the square of
// the coordinate unit (pixel² for pipeline output). A degenerate polygon
// (fewer than 3 vertices) has area 0; this is a legitimate terminal state,
// not an error.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Bounds returns the axis-aligned bounding box of the vertices.
// ok is false for an empty polygon, in which case min and max are zero.
func (p Polygon) Bounds() (min, max Point, ok bool) {
	if len(p) == 0 {
		return Point{}, Point{}, false
	}
	xs := make([]float64, len(p))
	ys := make([]float64, len(p))
	for i, v := range p {
		xs[i] = v.X
		ys[i] = v.Y
	}
	min = Point{X: floats.Min(xs), Y: floats.Min(ys)}
	max = Point{X: floats.Max(xs), Y: floats.Max(ys)}
	return min, max, true
}

// Translate returns a copy of the polygon shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// Reverse returns a copy of the polygon with vertex order reversed.
// Reversal flips the winding order and the sign of SignedArea.
func (p Polygon) Reverse() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
