package contour

import (
	"testing"

	"github.com/plotmetric/plotarea/internal/imaging"
)

// setRing marks the perimeter of the rectangle [x0,x1]×[y0,y1] (inclusive).
func setRing(m *imaging.Mask, x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		m.Set(x, y0)
		m.Set(x, y1)
	}
	for y := y0; y <= y1; y++ {
		m.Set(x0, y)
		m.Set(x1, y)
	}
}

// setRect marks the filled rectangle [x0,x1]×[y0,y1] (inclusive).
func setRect(m *imaging.Mask, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.Set(x, y)
		}
	}
}

func TestExtract_RingAndFill(t *testing.T) {
	boundary := imaging.NewMask(20, 20)
	interior := imaging.NewMask(20, 20)
	setRing(boundary, 5, 5, 15, 15)
	setRect(interior, 8, 8, 12, 12)

	bnd, inr := Extract(boundary, interior, 1)

	if len(bnd) != 11 {
		t.Fatalf("boundary extents = %d rows, want 11 (rows 5..15)", len(bnd))
	}
	for _, e := range bnd {
		if e.Row < 5 || e.Row > 15 {
			t.Errorf("boundary extent on unexpected row %d", e.Row)
		}
		if e.MinX != 5 || e.MaxX != 15 {
			t.Errorf("row %d boundary extent = (%d,%d), want (5,15)", e.Row, e.MinX, e.MaxX)
		}
	}

	if len(inr) != 5 {
		t.Fatalf("interior extents = %d rows, want 5 (rows 8..12)", len(inr))
	}
	for _, e := range inr {
		if e.MinX != 8 || e.MaxX != 12 {
			t.Errorf("row %d interior extent = (%d,%d), want (8,12)", e.Row, e.MinX, e.MaxX)
		}
	}
}

func TestExtract_SkipsSparseRows(t *testing.T) {
	boundary := imaging.NewMask(10, 10)
	interior := imaging.NewMask(10, 10)

	boundary.Set(4, 2) // single pixel: row 2 must be skipped
	boundary.Set(1, 5) // valid pair on row 5
	boundary.Set(8, 5)

	bnd, inr := Extract(boundary, interior, 1)

	if len(bnd) != 1 {
		t.Fatalf("boundary extents = %d, want 1", len(bnd))
	}
	if bnd[0].Row != 5 || bnd[0].MinX != 1 || bnd[0].MaxX != 8 {
		t.Errorf("extent = %+v, want row 5 span (1,8)", bnd[0])
	}
	if len(inr) != 0 {
		t.Errorf("interior extents = %d, want 0", len(inr))
	}
}

func TestExtract_InteriorStrictlyInsideBoundary(t *testing.T) {
	boundary := imaging.NewMask(20, 3)
	interior := imaging.NewMask(20, 3)

	boundary.Set(5, 1)
	boundary.Set(15, 1)

	// Interior pixels at and beyond the boundary columns must not qualify.
	interior.Set(3, 1)  // left of boundary
	interior.Set(5, 1)  // exactly on left boundary column
	interior.Set(8, 1)  // inside
	interior.Set(11, 1) // inside
	interior.Set(15, 1) // exactly on right boundary column
	interior.Set(18, 1) // right of boundary

	bnd, inr := Extract(boundary, interior, 1)

	if len(bnd) != 1 || len(inr) != 1 {
		t.Fatalf("extents = (%d boundary, %d interior), want (1, 1)", len(bnd), len(inr))
	}
	e := inr[0]
	if e.MinX != 8 || e.MaxX != 11 {
		t.Errorf("interior extent = (%d,%d), want (8,11)", e.MinX, e.MaxX)
	}

	// Invariant: minBoundary < minInterior <= maxInterior < maxBoundary.
	b := bnd[0]
	if !(b.MinX < e.MinX && e.MinX <= e.MaxX && e.MaxX < b.MaxX) {
		t.Errorf("interior extent (%d,%d) not strictly inside boundary extent (%d,%d)",
			e.MinX, e.MaxX, b.MinX, b.MaxX)
	}
}

func TestExtract_InteriorShortfallKeepsBoundary(t *testing.T) {
	boundary := imaging.NewMask(20, 4)
	interior := imaging.NewMask(20, 4)

	boundary.Set(2, 1)
	boundary.Set(17, 1)
	interior.Set(9, 1) // only one interior pixel in span

	bnd, inr := Extract(boundary, interior, 1)

	if len(bnd) != 1 {
		t.Errorf("boundary extents = %d, want 1 (boundary is independent of interior)", len(bnd))
	}
	if len(inr) != 0 {
		t.Errorf("interior extents = %d, want 0", len(inr))
	}
}

func TestExtract_JumpMonotonicity(t *testing.T) {
	boundary := imaging.NewMask(20, 20)
	interior := imaging.NewMask(20, 20)
	setRing(boundary, 5, 5, 15, 15)

	prev := -1
	for _, jump := range []int{1, 2, 3, 5, 10} {
		bnd, _ := Extract(boundary, interior, jump)
		if prev >= 0 && len(bnd) > prev {
			t.Errorf("jump %d produced %d rows, more than the previous stride's %d", jump, len(bnd), prev)
		}
		prev = len(bnd)
	}
}

func TestExtract_JumpBelowOne(t *testing.T) {
	boundary := imaging.NewMask(10, 10)
	interior := imaging.NewMask(10, 10)
	setRing(boundary, 2, 2, 7, 7)

	ref, _ := Extract(boundary, interior, 1)
	for _, jump := range []int{0, -3} {
		got, _ := Extract(boundary, interior, jump)
		if len(got) != len(ref) {
			t.Errorf("jump %d extents = %d, want %d (treated as stride 1)", jump, len(got), len(ref))
		}
	}
}
