// Package occlude implements the per-piece occlusion stage: every
// triangle of every armor piece is cut against every other triangle
// whose projection would obscure it, with a bounded recovery fallback
// when the polygon boolean library faults on near-coincident vertices.
package occlude

import (
	"math"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/geom2"
	"github.com/quartersbrief/armorview/geom3"
	"github.com/quartersbrief/armorview/polybool"
	"github.com/quartersbrief/armorview/recovery"
)

// Occluder runs the occlusion algorithm for one subject piece against
// a full model snapshot.
type Occluder struct {
	Tunables armor.Tunables
	Boolean  *polybool.Wrapper

	// OnDegeneracy, if non-nil, is called once per dropped fragment
	// after retries are exhausted. It never surfaces as an error.
	OnDegeneracy func(reason string)
}

// New creates an Occluder with the given tunables (already defaulted
// via Tunables.WithDefaults) and a fresh polygon boolean wrapper.
func New(t armor.Tunables) *Occluder {
	return &Occluder{Tunables: t, Boolean: polybool.New(t.MinEdge)}
}

// cosMaxAngle returns cos(MAX_ANGLE) from the tunables' degree value.
func (o *Occluder) cosMaxAngle() float64 {
	return math.Cos(o.Tunables.MaxAngleDegrees * math.Pi / 180)
}

// OccludePiece mutates subject in place, replacing its triangles with
// the subset that survives occlusion against model (which includes
// subject's own other triangles), viewed along axis.
func (o *Occluder) OccludePiece(subject *armor.Piece, model *armor.Model, axis geom3.Axis) {
	view := axisVector(axis)
	cosMax := o.cosMaxAngle()

	var result []geom3.Triangle
	for _, tri := range subject.Triangles {
		tri := tri
		n, err := tri.Normal()
		if err != nil {
			continue // collapsed input triangle contributes nothing
		}

		// Perpendicularity check: near-edge-on triangles contribute nothing.
		dot := n.Dot(view)
		if dot*dot < cosMax*cosMax {
			continue
		}

		kept := o.occludeTriangle(tri, n, dot, model, view)
		result = append(result, kept...)
	}
	subject.Triangles = result
}

// axisVector returns the unit view direction for a drop axis.
func axisVector(axis geom3.Axis) geom3.Coord3D {
	switch axis {
	case geom3.AxisX:
		return geom3.XYZ(1, 0, 0)
	case geom3.AxisY:
		return geom3.XYZ(0, 1, 0)
	default:
		return geom3.XYZ(0, 0, 1)
	}
}

// occludeTriangle cuts a single subject triangle that survived the
// perpendicularity check against every occluder that could obscure
// it, recovering from boolean faults and triangulating what remains.
func (o *Occluder) occludeTriangle(tri geom3.Triangle, normal geom3.Coord3D, viewDot float64, model *armor.Model, view geom3.Coord3D) []geom3.Triangle {
	plane := geom3.NewPlaneFromPoint(normal, tri[0])
	bestAxis, err := tri.BestAxis()
	if err != nil {
		return nil
	}

	occluders := o.collectOccluders(tri, plane, viewDot, model, view, bestAxis)

	subjectRegions := []geom2.Ring{ringFrom3D(tri[:], bestAxis)}

	remainingOccluders := occluders
	retries := o.Tunables.MaxRetries
	for pass := 0; pass < retries+1 && len(remainingOccluders) > 0 && len(subjectRegions) > 0; pass++ {
		survivors, faulted := o.subtractAll(subjectRegions, remainingOccluders)
		if len(faulted) == 0 {
			subjectRegions = survivors
			break
		}
		if pass == retries {
			// Budget exhausted: drop the remaining faulted fragments.
			if o.OnDegeneracy != nil {
				for range faulted {
					o.OnDegeneracy("retry budget exhausted, dropping fragment")
				}
			}
			subjectRegions = survivors
			break
		}
		recoveredRegions, recoveredOccluders := o.recoverAll(faulted, remainingOccluders)
		subjectRegions = append(survivors, recoveredRegions...)
		remainingOccluders = recoveredOccluders
	}

	return o.liftAndTriangulate(subjectRegions, plane, bestAxis)
}

// collectOccluders builds the set of 2D rings (already cut to the
// viewer's side, projected onto tri's plane, and dropped to 2D) that
// can possibly obscure tri.
func (o *Occluder) collectOccluders(tri geom3.Triangle, plane geom3.Plane, viewDot float64, model *armor.Model, view geom3.Coord3D, bestAxis geom3.Axis) []geom2.Ring {
	cosMax := o.cosMaxAngle()
	minEdgeSq := o.Tunables.MinEdgeSquared()

	var out []geom2.Ring
	for _, piece := range model.Pieces {
		for _, other := range piece.Triangles {
			if other == tri {
				continue
			}
			n, err := other.Normal()
			if err != nil {
				continue
			}
			dot := n.Dot(view)
			if dot*dot < cosMax*cosMax {
				continue // the occluder is itself near-perpendicular
			}

			above, below := plane.Cut(other[:], o.Tunables.MinEdge)
			var side []geom3.Coord3D
			if viewDot > 0 {
				side = above
			} else {
				side = below
			}
			if len(side) < 3 {
				continue
			}

			projected := geom3.Project(side, plane, axisOf(view))
			fused, collapsed := geom3.Fuse(projected, minEdgeSq)
			if collapsed {
				continue
			}
			out = append(out, ringFrom3D(fused, bestAxis))
		}
	}
	return out
}

func axisOf(view geom3.Coord3D) geom3.Axis {
	switch {
	case view.X != 0:
		return geom3.AxisX
	case view.Y != 0:
		return geom3.AxisY
	default:
		return geom3.AxisZ
	}
}

func ringFrom3D(poly []geom3.Coord3D, axis geom3.Axis) geom2.Ring {
	down := geom3.ConvertDown(poly, axis)
	r := make(geom2.Ring, len(down))
	for i, p := range down {
		r[i] = geom2.FromArray(p)
	}
	return r
}

// subtractAll subtracts every occluder from every current subject
// region, collecting fragments that faulted rather than aborting.
func (o *Occluder) subtractAll(regions []geom2.Ring, occluders []geom2.Ring) (survivors, faulted []geom2.Ring) {
	survivors = regions
	for _, occ := range occluders {
		var next []geom2.Ring
		for _, region := range survivors {
			results, err := o.Boolean.Difference(region, occ)
			if err != nil {
				faulted = append(faulted, region)
				continue
			}
			next = append(next, results...)
		}
		survivors = next
		if len(survivors) == 0 {
			break
		}
	}
	return survivors, faulted
}

// recoverAll runs the recovery routine for every faulted region
// against the occluder that faulted it, replacing both sides
// with their recovered components, filtering out components smaller
// than MIN_EDGE on every edge.
//
// Since subtractAll does not track which specific occluder faulted
// which region, recovery here is attempted against the full occluder
// set in sequence; this is conservative (it may re-attempt recovery
// against occluders that never actually faulted) but never produces
// incorrect output, only extra work.
func (o *Occluder) recoverAll(faultedRegions []geom2.Ring, occluders []geom2.Ring) (recoveredRegions, recoveredOccluders []geom2.Ring) {
	minEdge := o.Tunables.MinEdge
	seenIdentical := false

	for _, region := range faultedRegions {
		for _, occ := range occluders {
			subjComp, clipComp, err := recovery.Recover(region, occ, minEdge)
			if err != nil {
				if _, ok := err.(recovery.IdenticalRingsError); ok {
					seenIdentical = true
				}
				continue
			}
			recoveredRegions = append(recoveredRegions, subjComp...)
			recoveredOccluders = append(recoveredOccluders, clipComp...)
		}
	}

	if seenIdentical {
		// Identical rings: the caller treats the subject as fully
		// occluded.
		return nil, recoveredOccluders
	}

	if len(recoveredRegions) == 0 {
		recoveredRegions = faultedRegions
	}
	if len(recoveredOccluders) == 0 {
		recoveredOccluders = occluders
	}
	return recoveredRegions, recoveredOccluders
}

// liftAndTriangulate converts the surviving 2D regions back to 3D on
// tri's plane and triangulates them.
func (o *Occluder) liftAndTriangulate(regions []geom2.Ring, plane geom3.Plane, axis geom3.Axis) []geom3.Triangle {
	var out []geom3.Triangle
	for _, r := range regions {
		pts2d := make([][2]float64, len(r))
		for i, c := range r {
			pts2d[i] = c.Array()
		}
		lifted := geom3.ConvertUp(pts2d, axis, 0)
		reprojected := geom3.Project(lifted, plane, axis)
		tris, err := geom3.Triangulate(reprojected)
		if err != nil {
			continue
		}
		out = append(out, tris...)
	}
	return out
}
