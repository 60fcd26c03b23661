package geom3

import (
	"math"
	"testing"
)

func TestTriangleNormal(t *testing.T) {
	tri := Triangle{XYZ(0, 0, 0), XYZ(1, 0, 0), XYZ(0, 1, 0)}
	n, err := tri.Normal()
	if err != nil {
		t.Fatal(err)
	}
	if n.Dist(XYZ(0, 0, 1)) > 1e-9 {
		t.Fatalf("unexpected normal %v", n)
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	tri := Triangle{XYZ(0, 0, 0), XYZ(1, 0, 0), XYZ(2, 0, 0)}
	if _, err := tri.Normal(); err != ErrDegenerateTriangle {
		t.Fatalf("expected ErrDegenerateTriangle, got %v", err)
	}
}

func TestTriangleBestAxis(t *testing.T) {
	tri := Triangle{XYZ(0, 0, 0), XYZ(1, 0, 0), XYZ(0, 1, 0)}
	axis, err := tri.BestAxis()
	if err != nil {
		t.Fatal(err)
	}
	if axis != AxisZ {
		t.Fatalf("expected AxisZ, got %v", axis)
	}
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle{XYZ(0, 0, 0), XYZ(2, 0, 0), XYZ(0, 2, 0)}
	if math.Abs(tri.Area()-2) > 1e-9 {
		t.Fatalf("expected area 2, got %f", tri.Area())
	}
}

func TestTriangleFuseCollapsed(t *testing.T) {
	tri := Triangle{XYZ(0, 0, 0), XYZ(1e-9, 0, 0), XYZ(1, 1, 0)}
	verts, collapsed := tri.Fuse(1e-6 * 1e-6)
	if !collapsed {
		t.Fatalf("expected collapse, got %d distinct vertices: %v", len(verts), verts)
	}
}
