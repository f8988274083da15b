package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// newTestImage creates an in-memory RGBA image filled with the given color.
func newTestImage(width, height int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}
	return img
}

func TestFromImage_Normalization(t *testing.T) {
	img := newTestImage(4, 4, color.RGBA{255, 255, 255, 255})
	img.Set(1, 2, color.RGBA{255, 0, 0, 255})
	img.Set(3, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 3, color.RGBA{228, 228, 228, 255}) // grey ~0.894

	g := FromImage(img)

	if g.Width != 4 || g.Height != 4 {
		t.Fatalf("grid dimensions = %dx%d, want 4x4", g.Width, g.Height)
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b float64
	}{
		{"white background", 2, 2, 1, 1, 1},
		{"pure red", 1, 2, 1, 0, 0},
		{"pure green", 3, 0, 0, 1, 0},
		{"grey", 0, 3, 228.0 / 255, 228.0 / 255, 228.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := g.At(tt.x, tt.y)
			if math.Abs(p.R-tt.r) > 0.01 || math.Abs(p.G-tt.g) > 0.01 || math.Abs(p.B-tt.b) > 0.01 {
				t.Errorf("At(%d,%d) = %+v, want (%.3f, %.3f, %.3f)", tt.x, tt.y, p, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestGrid_OutOfBoundsReadsWhite(t *testing.T) {
	g := FromImage(newTestImage(3, 3, color.RGBA{0, 0, 0, 255}))

	for _, pt := range []struct{ x, y int }{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		if p := g.At(pt.x, pt.y); p != White {
			t.Errorf("At(%d,%d) = %+v, want white", pt.x, pt.y, p)
		}
	}
}

func TestGrid_Clone(t *testing.T) {
	g := FromImage(newTestImage(3, 3, color.RGBA{255, 0, 0, 255}))
	c := g.Clone()

	c.Set(1, 1, White)

	if g.At(1, 1) == White {
		t.Error("mutating clone changed the original grid")
	}
	if c.At(1, 1) != White {
		t.Error("clone did not record the write")
	}
}

func TestMask_Extent(t *testing.T) {
	m := NewMask(10, 8)

	if _, ok := m.Extent(); ok {
		t.Fatal("Extent() ok = true for empty mask")
	}
	if !m.Empty() {
		t.Fatal("Empty() = false for fresh mask")
	}

	m.Set(3, 4)
	m.Set(7, 2)
	m.Set(5, 6)

	rect, ok := m.Extent()
	if !ok {
		t.Fatal("Extent() ok = false for non-empty mask")
	}
	want := image.Rect(3, 2, 8, 7)
	if rect != want {
		t.Errorf("Extent() = %v, want %v", rect, want)
	}
	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}
}

func TestMask_OutOfBounds(t *testing.T) {
	m := NewMask(4, 4)
	m.Set(-1, 0)
	m.Set(0, 4)
	if !m.Empty() {
		t.Error("out-of-bounds Set modified the mask")
	}
	if m.At(-1, 0) || m.At(4, 4) {
		t.Error("out-of-bounds At reported membership")
	}
}
