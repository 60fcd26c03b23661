// Package geom2 provides the 2D vector and polygon types produced by
// dropping a view axis from geom3 geometry, plus the bounding-box and
// ring utilities the view builder and recovery routine share.
package geom2

import "math"

// Coord is a point or vector in the plane.
type Coord struct {
	X, Y float64
}

func XY(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) Add(c1 Coord) Coord { return Coord{c.X + c1.X, c.Y + c1.Y} }
func (c Coord) Sub(c1 Coord) Coord { return Coord{c.X - c1.X, c.Y - c1.Y} }
func (c Coord) Scale(s float64) Coord { return Coord{c.X * s, c.Y * s} }
func (c Coord) Dot(c1 Coord) float64  { return c.X*c1.X + c.Y*c1.Y }

// Cross returns the z-component of the 3D cross product of c and c1,
// treated as vectors in the plane z=0. Positive when c1 is
// counter-clockwise from c.
func (c Coord) Cross(c1 Coord) float64 { return c.X*c1.Y - c.Y*c1.X }

func (c Coord) Norm() float64 { return math.Sqrt(c.Dot(c)) }

func (c Coord) Dist(c1 Coord) float64 { return c.Sub(c1).Norm() }

func (c Coord) SquaredDist(c1 Coord) float64 {
	d := c.Sub(c1)
	return d.Dot(d)
}

func (c Coord) Min(c1 Coord) Coord { return Coord{math.Min(c.X, c1.X), math.Min(c.Y, c1.Y)} }
func (c Coord) Max(c1 Coord) Coord { return Coord{math.Max(c.X, c1.X), math.Max(c.Y, c1.Y)} }

// FromArray builds a Coord from a [2]float64, the shape geom3 drops
// down to.
func FromArray(a [2]float64) Coord { return Coord{a[0], a[1]} }

func (c Coord) Array() [2]float64 { return [2]float64{c.X, c.Y} }

// SnapToGrid rounds c to the nearest multiple of precision.
func (c Coord) SnapToGrid(precision float64) Coord {
	if precision == 0 {
		return c
	}
	return Coord{
		math.Round(c.X/precision) * precision,
		math.Round(c.Y/precision) * precision,
	}
}
