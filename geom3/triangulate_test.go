package geom3

import "testing"

func TestTriangulateFanSquare(t *testing.T) {
	square := []Coord3D{
		XYZ(0, 0, 0),
		XYZ(1, 0, 0),
		XYZ(1, 1, 0),
		XYZ(0, 1, 0),
	}
	tris, err := Triangulate(square)
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles from a fan-triangulated square, got %d", len(tris))
	}

	var total float64
	for _, tri := range tris {
		total += tri.Area()
	}
	if total < 0.99 || total > 1.01 {
		t.Fatalf("expected total area close to 1, got %f", total)
	}
}

func TestTriangulateTooFewVertices(t *testing.T) {
	_, err := Triangulate([]Coord3D{XYZ(0, 0, 0), XYZ(1, 0, 0)})
	if err != ErrTooFewVertices {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
}
