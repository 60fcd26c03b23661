package view

import (
	"github.com/quartersbrief/armorview/geom2"
	"github.com/quartersbrief/armorview/geom3"
	"github.com/quartersbrief/armorview/polybool"
)

// dropAxis converts every remaining triangle of a piece to 2D by
// dropping the view axis.
func dropAxis(tris []geom3.Triangle, axis geom3.Axis) []geom2.Ring {
	out := make([]geom2.Ring, 0, len(tris))
	for _, t := range tris {
		down := geom3.ConvertDown(t[:], axis)
		r := make(geom2.Ring, len(down))
		for i, p := range down {
			r[i] = geom2.FromArray(p)
		}
		out = append(out, r)
	}
	return out
}

// resnapAndFuse re-snaps every triangle to the grid, fuses near-
// duplicate vertices, and drops collapsed triangles.
func resnapAndFuse(flat []geom2.Ring, precision, minEdgeSq float64) []geom2.Ring {
	out := make([]geom2.Ring, 0, len(flat))
	for _, r := range flat {
		snapped := r.SnapToGrid(precision)
		fused, collapsed := snapped.Fuse(minEdgeSq)
		if collapsed {
			continue
		}
		out = append(out, fused)
	}
	return out
}

// expandTriangle performs a microscopic expansion: partition the
// triangle's bounding box into a 3x3 grid and shift vertices in the
// outer cells outward by precision on the relevant axes, to close
// sub-PRECISION gaps left by occlusion seams.
//
// topY is computed from the triangle's y-range, not its x-range.
func expandTriangle(tri geom2.Ring, precision float64) geom2.Ring {
	if len(tri) == 0 {
		return tri
	}
	min, max := tri.Min(), tri.Max()
	leftX := min.X + (max.X-min.X)/3
	rightX := max.X - (max.X-min.X)/3
	bottomY := min.Y + (max.Y-min.Y)/3
	topY := max.Y - (max.Y-min.Y)/3

	out := make(geom2.Ring, len(tri))
	for i, c := range tri {
		dx := 0.0
		dy := 0.0
		if c.X <= leftX {
			dx = -precision
		} else if c.X >= rightX {
			dx = precision
		}
		if c.Y <= bottomY {
			dy = -precision
		} else if c.Y >= topY {
			dy = precision
		}
		out[i] = geom2.XY(c.X+dx, c.Y+dy)
	}
	return out
}

// unionAll pairwise-unions the expanded triangles into the fewest
// possible rings. On a degeneracy fault it re-snaps the accumulated
// result and retries
// once; on a second fault it drops the offending triangle and calls
// onDegeneracy.
func unionAll(triangles []geom2.Ring, boolWrapper *polybool.Wrapper, precision float64, onDegeneracy func(string)) []geom2.Ring {
	if len(triangles) == 0 {
		return nil
	}
	accumulated := []geom2.Ring{triangles[0]}
	for _, next := range triangles[1:] {
		accumulated = unionOne(accumulated, next, boolWrapper, precision, onDegeneracy)
	}
	return accumulated
}

func unionOne(accumulated []geom2.Ring, next geom2.Ring, boolWrapper *polybool.Wrapper, precision float64, onDegeneracy func(string)) []geom2.Ring {
	result, err := unionIntoSet(accumulated, next, boolWrapper)
	if err == nil {
		return result
	}

	// First fault: re-snap the accumulated result to the grid and
	// retry once.
	resnapped := make([]geom2.Ring, len(accumulated))
	for i, r := range accumulated {
		resnapped[i] = r.SnapToGrid(precision)
	}
	result, err = unionIntoSet(resnapped, next.SnapToGrid(precision), boolWrapper)
	if err == nil {
		return result
	}

	// Second fault: drop the offending triangle.
	if onDegeneracy != nil {
		onDegeneracy("dropping triangle after repeated union fault")
	}
	return accumulated
}

// unionIntoSet unions next against every ring of accumulated in turn,
// merging as it goes. If none of accumulated overlaps next, next is
// simply appended as a new disjoint ring.
func unionIntoSet(accumulated []geom2.Ring, next geom2.Ring, boolWrapper *polybool.Wrapper) ([]geom2.Ring, error) {
	cur := next
	out := make([]geom2.Ring, 0, len(accumulated)+1)
	for _, r := range accumulated {
		unionResult, err := boolWrapper.Union(r, cur)
		if err != nil {
			return nil, err
		}
		if len(unionResult) == 1 {
			// r overlaps the ring being merged: absorb it.
			cur = unionResult[0]
			continue
		}
		// Disjoint (or split into multiple pieces): keep the original
		// ring and carry the merged ring forward to try against the rest.
		out = append(out, r)
	}
	out = append(out, cur)
	return out, nil
}
