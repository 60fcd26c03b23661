package geom3

// Project lifts each point of poly onto plane by adjusting its
// component along viewAxis so the point satisfies the plane equation,
// keeping the other two components fixed. This is used to project an
// occluder (already cut to the viewer's side of the subject's plane)
// onto the subject triangle's own plane before it is compared in 2D.
func Project(poly []Coord3D, plane Plane, viewAxis Axis) []Coord3D {
	out := make([]Coord3D, len(poly))
	for i, c := range poly {
		out[i] = projectPoint(c, plane, viewAxis)
	}
	return out
}

func projectPoint(c Coord3D, plane Plane, viewAxis Axis) Coord3D {
	n := plane.Normal.Component(viewAxis)
	if n == 0 {
		// The plane is parallel to the view direction: there is no
		// unique lift, so the point is left unchanged. Callers only
		// reach this when the subject triangle itself would have
		// already been dropped by the perpendicularity check.
		return c
	}
	rest := c
	// Solve Normal . c' = D for the viewAxis component, holding the
	// other two fixed.
	d := plane.D
	sum := plane.Normal.Dot(rest) - plane.Normal.Component(viewAxis)*rest.Component(viewAxis)
	value := (d - sum) / n
	return c.WithComponent(viewAxis, value)
}

// ConvertDown drops axis from every point of poly, producing a 2D
// polygon in the remaining two coordinates (in the fixed order x,y,z
// with axis skipped).
func ConvertDown(poly []Coord3D, axis Axis) [][2]float64 {
	out := make([][2]float64, len(poly))
	for i, c := range poly {
		rest, _ := c.DropAxis(axis)
		out[i] = rest
	}
	return out
}

// ConvertUp re-inserts axis into a 2D polygon, setting the dropped
// coordinate to value for every point (typically the plane's implied
// value, recovered by re-projecting afterward).
func ConvertUp(poly [][2]float64, axis Axis, value float64) []Coord3D {
	out := make([]Coord3D, len(poly))
	for i, p := range poly {
		out[i] = InsertAxis(p, axis, value)
	}
	return out
}

// Fuse collapses consecutive vertices of a closed polygon loop that
// fall within sqrt(minDistSquared) of each other, returning the fused
// loop and whether it collapsed to fewer than 3 distinct vertices.
func Fuse(poly []Coord3D, minDistSquared float64) (fused []Coord3D, collapsed bool) {
	for _, c := range poly {
		if len(fused) > 0 && fused[len(fused)-1].SquaredDist(c) < minDistSquared {
			continue
		}
		fused = append(fused, c)
	}
	// The closing edge (last -> first) can also collapse.
	for len(fused) > 1 && fused[len(fused)-1].SquaredDist(fused[0]) < minDistSquared {
		fused = fused[:len(fused)-1]
	}
	return fused, len(fused) < 3
}
