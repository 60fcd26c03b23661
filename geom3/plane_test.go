package geom3

import "testing"

func TestPlaneCutSquareAcrossMiddle(t *testing.T) {
	// Unit square in z=0, cut by the plane x=0.5 (normal +x).
	square := []Coord3D{
		XYZ(0, 0, 0), XYZ(1, 0, 0), XYZ(1, 1, 0), XYZ(0, 1, 0),
	}
	plane := NewPlaneFromPoint(XYZ(1, 0, 0), XYZ(0.5, 0, 0))
	above, below := plane.Cut(square, 1e-9)

	if len(above) < 3 || len(below) < 3 {
		t.Fatalf("expected both halves non-trivial, got above=%d below=%d", len(above), len(below))
	}
	for _, c := range above {
		if c.X < 0.5-1e-6 {
			t.Fatalf("above vertex %v should have x >= 0.5", c)
		}
	}
	for _, c := range below {
		if c.X > 0.5+1e-6 {
			t.Fatalf("below vertex %v should have x <= 0.5", c)
		}
	}
}

func TestPlaneCutEntirelyAbove(t *testing.T) {
	square := []Coord3D{
		XYZ(1, 0, 0), XYZ(2, 0, 0), XYZ(2, 1, 0), XYZ(1, 1, 0),
	}
	plane := NewPlaneFromPoint(XYZ(1, 0, 0), XYZ(0.5, 0, 0))
	above, below := plane.Cut(square, 1e-9)
	if len(above) != 4 {
		t.Fatalf("expected the whole square above, got %d points", len(above))
	}
	if len(below) != 0 {
		t.Fatalf("expected nothing below, got %d points", len(below))
	}
}
