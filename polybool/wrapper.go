// Package polybool wraps a third-party 2D polygon boolean library
// behind a small contract: union, difference, segment conversion, and
// a tunable epsilon, with degeneracy faults signaled rather than
// swallowed.
package polybool

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/quartersbrief/armorview/geom2"
	"github.com/quartersbrief/armorview/recovery"
)

// Wrapper adapts polyclip-go to the ring-based vocabulary the rest of
// this module uses, converting its panics on near-coincident vertex
// configurations into recovery.DegeneracyError instead of letting them
// escape as panics: exceptions as control flow in the underlying
// library become a typed error here.
type Wrapper struct {
	// Epsilon records the tolerance the wrapper was created with. It is
	// not passed to polyclip-go: every operation runs with the
	// library's own built-in tolerance whatever this field holds.
	Epsilon float64
}

// New creates a Wrapper recording the given epsilon (see
// Wrapper.Epsilon).
func New(epsilon float64) *Wrapper {
	return &Wrapper{Epsilon: epsilon}
}

func toContour(r geom2.Ring) polyclip.Contour {
	c := make(polyclip.Contour, len(r))
	for i, v := range r {
		c[i] = polyclip.Point{X: v.X, Y: v.Y}
	}
	return c
}

func fromContour(c polyclip.Contour) geom2.Ring {
	r := make(geom2.Ring, len(c))
	for i, v := range c {
		r[i] = geom2.Coord{X: v.X, Y: v.Y}
	}
	return r
}

// fromPolygon flattens a polyclip.Polygon (possibly several contours,
// e.g. when the result of a boolean op has disjoint components) into
// one ring per contour.
func fromPolygon(p polyclip.Polygon) []geom2.Ring {
	out := make([]geom2.Ring, len(p))
	for i, c := range p {
		out[i] = fromContour(c)
	}
	return out
}

// construct runs a polyclip boolean operation, recovering from panics
// and turning library failures into recovery.DegeneracyError.
func (w *Wrapper) construct(op polyclip.Op, subject, clip geom2.Ring) (result []geom2.Ring, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovery.NewDegeneracyError(fmt.Sprintf("%v", r))
		}
	}()

	subjPoly := polyclip.Polygon{toContour(subject)}
	clipPoly := polyclip.Polygon{toContour(clip)}

	res := subjPoly.Construct(op, clipPoly)
	return fromPolygon(res), nil
}

// Union computes the union of subject and clip. The result may be
// several disjoint or nested rings.
func (w *Wrapper) Union(subject, clip geom2.Ring) ([]geom2.Ring, error) {
	return w.construct(polyclip.UNION, subject, clip)
}

// Difference computes subject minus clip.
func (w *Wrapper) Difference(subject, clip geom2.Ring) ([]geom2.Ring, error) {
	return w.construct(polyclip.DIFFERENCE, subject, clip)
}

// Segment is a directed edge between two points, the unit both
// ToSegments and Combine operate on when the recovery routine needs to
// reason about a boolean operation below ring granularity.
type Segment struct {
	A, B geom2.Coord
}

// ToSegments decomposes a ring into its boundary segments in order.
func ToSegments(r geom2.Ring) []Segment {
	segs := make([]Segment, len(r))
	for i := range r {
		segs[i] = Segment{A: r[i], B: r[(i+1)%len(r)]}
	}
	return segs
}

// FromSegments reassembles a closed ring from a chain of segments
// whose endpoints connect head-to-tail. Segments are consumed in the
// order given; callers (the recovery routine) are responsible for
// presenting them in a connected order.
func FromSegments(segs []Segment) geom2.Ring {
	if len(segs) == 0 {
		return nil
	}
	r := make(geom2.Ring, 0, len(segs))
	for _, s := range segs {
		r = append(r, s.A)
	}
	return r
}

// Combine concatenates two segment chains, used by the recovery
// routine to merge the interconnected boundary of subject and clip
// before re-splitting them into components.
func Combine(a, b []Segment) []Segment {
	out := make([]Segment, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
