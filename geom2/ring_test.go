package geom2

import (
	"math"
	"testing"
)

func TestRingSignedArea(t *testing.T) {
	square := Ring{XY(0, 0), XY(1, 0), XY(1, 1), XY(0, 1)}
	if math.Abs(square.SignedArea()-1) > 1e-9 {
		t.Fatalf("expected area 1, got %f", square.SignedArea())
	}
	reversed := Ring{XY(0, 0), XY(0, 1), XY(1, 1), XY(1, 0)}
	if math.Abs(reversed.SignedArea()+1) > 1e-9 {
		t.Fatalf("expected area -1, got %f", reversed.SignedArea())
	}
}

func TestRingFuseCollapsesTinyPolygon(t *testing.T) {
	tiny := Ring{XY(0, 0), XY(1e-9, 0), XY(0, 1e-9)}
	_, collapsed := tiny.Fuse(1e-6 * 1e-6)
	if !collapsed {
		t.Fatal("expected a near-zero-size ring to collapse")
	}
}

func TestRingFlipOrientations(t *testing.T) {
	r := Ring{XY(1, 2)}
	front := r.Flip(func(c Coord) Coord { return XY(c.X, -c.Y) })
	if front[0] != XY(1, -2) {
		t.Fatalf("front flip: got %v", front[0])
	}
	top := r.Flip(func(c Coord) Coord { return XY(c.Y, c.X) })
	if top[0] != XY(2, 1) {
		t.Fatalf("top flip: got %v", top[0])
	}
	side := r.Flip(func(c Coord) Coord { return XY(c.Y, -c.X) })
	if side[0] != XY(2, -1) {
		t.Fatalf("side flip: got %v", side[0])
	}
}
