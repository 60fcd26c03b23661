package geom2

import "math"

// A Ring is an ordered, closed sequence of 2D vertices. The closing
// edge from the last vertex back to the first is implicit.
type Ring []Coord

func (r Ring) Min() Coord {
	min := r[0]
	for _, c := range r[1:] {
		min = min.Min(c)
	}
	return min
}

func (r Ring) Max() Coord {
	max := r[0]
	for _, c := range r[1:] {
		max = max.Max(c)
	}
	return max
}

// SignedArea computes the ring's area via the shoelace formula.
// Positive for counter-clockwise rings, negative for clockwise.
func (r Ring) SignedArea() float64 {
	var area float64
	n := len(r)
	for i := 0; i < n; i++ {
		cur := r[i]
		next := r[(i+1)%n]
		area += cur.X*next.Y - next.X*cur.Y
	}
	return area / 2
}

// AbsArea is the magnitude of SignedArea, used for the MIN_AREA
// artifact filter.
func (r Ring) AbsArea() float64 {
	return math.Abs(r.SignedArea())
}

// Fuse collapses consecutive (and wrap-around) vertices within
// sqrt(minDistSquared) of each other, returning the fused ring and
// whether it collapsed below 3 distinct vertices.
func (r Ring) Fuse(minDistSquared float64) (fused Ring, collapsed bool) {
	for _, c := range r {
		if len(fused) > 0 && fused[len(fused)-1].SquaredDist(c) < minDistSquared {
			continue
		}
		fused = append(fused, c)
	}
	for len(fused) > 1 && fused[len(fused)-1].SquaredDist(fused[0]) < minDistSquared {
		fused = fused[:len(fused)-1]
	}
	return fused, len(fused) < 3
}

// SnapToGrid rounds every vertex of r to the nearest multiple of
// precision.
func (r Ring) SnapToGrid(precision float64) Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[i] = c.SnapToGrid(precision)
	}
	return out
}

// Flip applies a 2D coordinate transform to every vertex, used for the
// per-view orientation flips applied after projection.
func (r Ring) Flip(f func(Coord) Coord) Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[i] = f(c)
	}
	return out
}

// Clone returns a copy of r.
func (r Ring) Clone() Ring {
	out := make(Ring, len(r))
	copy(out, r)
	return out
}
