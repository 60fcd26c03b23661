package geom3

import "testing"

func TestCoord3DSnapToGrid(t *testing.T) {
	c := XYZ(1.0004, -2.0006, 0.00049)
	snapped := c.SnapToGrid(1e-3)
	want := XYZ(1.0, -2.001, 0.0)
	if snapped.Dist(want) > 1e-9 {
		t.Fatalf("got %v, want %v", snapped, want)
	}
}

func TestCoord3DDropInsertAxis(t *testing.T) {
	c := XYZ(1, 2, 3)
	rest, dropped := c.DropAxis(AxisY)
	if dropped != 2 || rest != [2]float64{1, 3} {
		t.Fatalf("unexpected drop result: rest=%v dropped=%v", rest, dropped)
	}
	back := InsertAxis(rest, AxisY, dropped)
	if back != c {
		t.Fatalf("round-trip failed: got %v, want %v", back, c)
	}
}

func TestCoord3DNormalizeZero(t *testing.T) {
	z := Coord3D{}
	if z.Normalize() != z {
		t.Fatal("normalizing the zero vector should return the zero vector")
	}
}
