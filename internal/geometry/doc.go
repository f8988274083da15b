// Package geometry provides the polygon primitives used to turn extracted
// map contours into area measurements. Coordinates follow mathematical
// convention: X increases rightward, Y increases up the page.
package geometry
