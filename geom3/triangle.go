package geom3

import "github.com/pkg/errors"

// ErrDegenerateTriangle is returned by Normal when a triangle has
// zero area and thus no well-defined normal.
var ErrDegenerateTriangle = errors.New("degenerate triangle")

// Triangle is an ordered triple of vertices.
type Triangle [3]Coord3D

// Normal returns the triangle's unit normal, computed from the cross
// product of its first two edges.
//
// It fails with ErrDegenerateTriangle if the triangle has collapsed to
// a line or a point.
func (t *Triangle) Normal() (Coord3D, error) {
	n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
	norm := n.Norm()
	if norm == 0 {
		return Coord3D{}, ErrDegenerateTriangle
	}
	return n.Scale(1 / norm), nil
}

// Area returns the triangle's area, 0 for a collapsed triangle.
func (t *Triangle) Area() float64 {
	n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
	return n.Norm() / 2
}

// BestAxis returns the axis of the triangle's normal with the largest
// absolute component, maximizing the projected area when the triangle
// is later dropped to 2D along that axis.
//
// This is the "best projection axis" referenced throughout occlusion.
func (t *Triangle) BestAxis() (Axis, error) {
	n, err := t.Normal()
	if err != nil {
		return 0, err
	}
	best := AxisX
	bestAbs := absf(n.X)
	if a := absf(n.Y); a > bestAbs {
		best, bestAbs = AxisY, a
	}
	if a := absf(n.Z); a > bestAbs {
		best, bestAbs = AxisZ, a
	}
	return best, nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Fuse collapses vertices of t that are within sqrt(minDistSquared) of
// each other into a single shared vertex, returning the resulting
// distinct vertices in order and whether the triangle collapsed (has
// fewer than 3 distinct vertices after fusion).
func (t *Triangle) Fuse(minDistSquared float64) (verts []Coord3D, collapsed bool) {
	for _, c := range t {
		merged := false
		for i, existing := range verts {
			if existing.SquaredDist(c) < minDistSquared {
				// Keep the first-seen vertex; later ones snap to it.
				_ = i
				merged = true
				break
			}
		}
		if !merged {
			verts = append(verts, c)
		}
	}
	return verts, len(verts) < 3
}
