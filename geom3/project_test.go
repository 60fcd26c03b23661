package geom3

import "testing"

func TestConvertDownUp(t *testing.T) {
	poly := []Coord3D{XYZ(1, 2, 5), XYZ(3, 4, 5), XYZ(5, 6, 5)}
	down := ConvertDown(poly, AxisZ)
	if down[0] != [2]float64{1, 2} {
		t.Fatalf("unexpected drop: %v", down[0])
	}
	up := ConvertUp(down, AxisZ, 5)
	for i, c := range up {
		if c.Dist(poly[i]) > 1e-9 {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, c, poly[i])
		}
	}
}

func TestFuseCollapsesNearDuplicates(t *testing.T) {
	poly := []Coord3D{
		XYZ(0, 0, 0),
		XYZ(1e-9, 0, 0),
		XYZ(1, 0, 0),
		XYZ(0, 1, 0),
	}
	fused, collapsed := Fuse(poly, 1e-6*1e-6)
	if collapsed {
		t.Fatal("did not expect collapse")
	}
	if len(fused) != 3 {
		t.Fatalf("expected 3 distinct vertices, got %d: %v", len(fused), fused)
	}
}

func TestProjectOntoAxisAlignedPlane(t *testing.T) {
	// Plane z = 2 (normal +z); projecting along z should set every
	// point's z to 2 and leave x, y untouched.
	plane := NewPlaneFromPoint(XYZ(0, 0, 1), XYZ(0, 0, 2))
	poly := []Coord3D{XYZ(1, 1, 0), XYZ(2, 2, 0)}
	out := Project(poly, plane, AxisZ)
	for i, c := range out {
		if c.Z != 2 || c.X != poly[i].X || c.Y != poly[i].Y {
			t.Fatalf("unexpected projection %v", c)
		}
	}
}
