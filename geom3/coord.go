// Package geom3 provides the geometry kernel: vector arithmetic,
// triangle normals, plane cuts, and the axis-drop projections used to
// turn armor meshes into flat silhouettes.
package geom3

import "math"

// Coord3D is a point or vector in 3-space.
type Coord3D struct {
	X, Y, Z float64
}

// XYZ creates a Coord3D from its three components.
func XYZ(x, y, z float64) Coord3D {
	return Coord3D{X: x, Y: y, Z: z}
}

func (c Coord3D) Add(c1 Coord3D) Coord3D {
	return Coord3D{c.X + c1.X, c.Y + c1.Y, c.Z + c1.Z}
}

func (c Coord3D) Sub(c1 Coord3D) Coord3D {
	return Coord3D{c.X - c1.X, c.Y - c1.Y, c.Z - c1.Z}
}

func (c Coord3D) Scale(s float64) Coord3D {
	return Coord3D{c.X * s, c.Y * s, c.Z * s}
}

func (c Coord3D) Dot(c1 Coord3D) float64 {
	return c.X*c1.X + c.Y*c1.Y + c.Z*c1.Z
}

func (c Coord3D) Cross(c1 Coord3D) Coord3D {
	return Coord3D{
		c.Y*c1.Z - c.Z*c1.Y,
		c.Z*c1.X - c.X*c1.Z,
		c.X*c1.Y - c.Y*c1.X,
	}
}

func (c Coord3D) Norm() float64 {
	return math.Sqrt(c.Dot(c))
}

// Normalize returns c scaled to unit length.
//
// The zero vector normalizes to itself.
func (c Coord3D) Normalize() Coord3D {
	n := c.Norm()
	if n == 0 {
		return c
	}
	return c.Scale(1 / n)
}

func (c Coord3D) Dist(c1 Coord3D) float64 {
	return c.Sub(c1).Norm()
}

// SquaredDist avoids a sqrt, used throughout fusion where only a
// threshold comparison is needed.
func (c Coord3D) SquaredDist(c1 Coord3D) float64 {
	d := c.Sub(c1)
	return d.Dot(d)
}

func (c Coord3D) Min(c1 Coord3D) Coord3D {
	return Coord3D{math.Min(c.X, c1.X), math.Min(c.Y, c1.Y), math.Min(c.Z, c1.Z)}
}

func (c Coord3D) Max(c1 Coord3D) Coord3D {
	return Coord3D{math.Max(c.X, c1.X), math.Max(c.Y, c1.Y), math.Max(c.Z, c1.Z)}
}

// Array returns the coordinate's three components, indexable by axis.
func (c Coord3D) Array() [3]float64 {
	return [3]float64{c.X, c.Y, c.Z}
}

// FromArray is the inverse of Array.
func FromArray(a [3]float64) Coord3D {
	return Coord3D{a[0], a[1], a[2]}
}

// Axis indexes a coordinate's component: 0=x, 1=y, 2=z.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// Component returns the value of c along axis.
func (c Coord3D) Component(axis Axis) float64 {
	return c.Array()[axis]
}

// WithComponent returns a copy of c with the given axis set to v.
func (c Coord3D) WithComponent(axis Axis, v float64) Coord3D {
	a := c.Array()
	a[axis] = v
	return FromArray(a)
}

// SnapToGrid rounds every component of c to the nearest multiple of
// precision. This is the "grid snap" step of the view builder.
func (c Coord3D) SnapToGrid(precision float64) Coord3D {
	return Coord3D{
		snap(c.X, precision),
		snap(c.Y, precision),
		snap(c.Z, precision),
	}
}

func snap(v, precision float64) float64 {
	if precision == 0 {
		return v
	}
	return math.Round(v/precision) * precision
}

// DropAxis removes axis, returning the 2D coordinate and the value
// dropped.
func (c Coord3D) DropAxis(axis Axis) (rest [2]float64, dropped float64) {
	a := c.Array()
	dropped = a[axis]
	idx := 0
	for i := 0; i < 3; i++ {
		if Axis(i) == axis {
			continue
		}
		rest[idx] = a[i]
		idx++
	}
	return rest, dropped
}

// InsertAxis is the inverse of DropAxis: it reinserts value at axis.
func InsertAxis(rest [2]float64, axis Axis, value float64) Coord3D {
	full := [3]float64{}
	idx := 0
	for i := 0; i < 3; i++ {
		if Axis(i) == axis {
			full[i] = value
			continue
		}
		full[i] = rest[idx]
		idx++
	}
	return FromArray(full)
}
