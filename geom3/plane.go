package geom3

// Plane is the set of points p satisfying Normal.Dot(p) == D.
type Plane struct {
	Normal Coord3D
	D      float64
}

// NewPlaneFromPoint builds a plane through p0 with the given normal.
func NewPlaneFromPoint(normal, p0 Coord3D) Plane {
	return Plane{Normal: normal, D: normal.Dot(p0)}
}

// PlaneFromTriangle builds the plane containing t, along with the
// triangle's own normal.
func PlaneFromTriangle(t *Triangle) (Plane, error) {
	n, err := t.Normal()
	if err != nil {
		return Plane{}, err
	}
	return NewPlaneFromPoint(n, t[0]), nil
}

// SignedDistance returns Normal.Dot(v) - D: positive on the normal's
// side, negative on the other, zero on the plane.
func (p Plane) SignedDistance(v Coord3D) float64 {
	return p.Normal.Dot(v) - p.D
}

// Cut splits the polygon poly (a closed loop of coordinates) along p
// into the sub-polygons above (SignedDistance >= -minEdge, i.e. on or
// in front of the plane) and below. Vertices within minEdge of the
// plane belong to both halves.
//
// Cut generalizes the triangle-vs-plane cut to arbitrary convex
// polygons, not just triangles, since occlusion also cuts the
// polygons resulting from earlier cuts.
func (p Plane) Cut(poly []Coord3D, minEdge float64) (above, below []Coord3D) {
	if len(poly) == 0 {
		return nil, nil
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		next := poly[(i+1)%n]
		dCur := p.SignedDistance(cur)
		dNext := p.SignedDistance(next)

		if dCur >= -minEdge {
			above = append(above, cur)
		}
		if dCur <= minEdge {
			below = append(below, cur)
		}

		sameSide := (dCur >= -minEdge) == (dNext >= -minEdge)
		onPlane := absf(dCur) <= minEdge || absf(dNext) <= minEdge
		if !sameSide && !onPlane {
			t := dCur / (dCur - dNext)
			cross := cur.Add(next.Sub(cur).Scale(t))
			above = append(above, cross)
			below = append(below, cross)
		}
	}
	return above, below
}
