package geom2

import (
	"math"
	"testing"
)

func TestCoordArithmetic(t *testing.T) {
	a, b := XY(1, 2), XY(3, -1)
	if got := a.Add(b); got != (Coord{4, 1}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Coord{-2, 3}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Fatalf("Dot: got %v", got)
	}
}

func TestCoordCross(t *testing.T) {
	a, b := XY(1, 0), XY(0, 1)
	if got := a.Cross(b); got != 1 {
		t.Fatalf("expected cross(x,y) == 1, got %f", got)
	}
	if got := b.Cross(a); got != -1 {
		t.Fatalf("expected cross(y,x) == -1, got %f", got)
	}
}

func TestCoordDistAndSquaredDist(t *testing.T) {
	a, b := XY(0, 0), XY(3, 4)
	if got := a.Dist(b); math.Abs(got-5) > 1e-9 {
		t.Fatalf("expected distance 5, got %f", got)
	}
	if got := a.SquaredDist(b); math.Abs(got-25) > 1e-9 {
		t.Fatalf("expected squared distance 25, got %f", got)
	}
}

func TestCoordSnapToGrid(t *testing.T) {
	c := XY(1.04, -1.06)
	snapped := c.SnapToGrid(0.1)
	if math.Abs(snapped.X-1.0) > 1e-9 || math.Abs(snapped.Y+1.1) > 1e-9 {
		t.Fatalf("unexpected snap result: %v", snapped)
	}
	if got := c.SnapToGrid(0); got != c {
		t.Fatalf("zero precision should be a no-op, got %v", got)
	}
}

func TestFromArrayAndArrayRoundTrip(t *testing.T) {
	arr := [2]float64{5, -2}
	c := FromArray(arr)
	if c.Array() != arr {
		t.Fatalf("round trip mismatch: got %v, want %v", c.Array(), arr)
	}
}
