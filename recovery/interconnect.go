package recovery

import (
	"math"
	"sort"

	"github.com/quartersbrief/armorview/geom2"
)

// vertex is one point of an annotated ring: either an original vertex
// of the subject/clip ring, or a point inserted where the two rings
// cross or touch.
type vertex struct {
	Coord geom2.Coord

	// Intersection is true for points discovered by Interconnect,
	// whether original or newly inserted.
	Intersection bool

	// Partner indexes the corresponding vertex in the other ring's
	// annotated slice, or -1 if this vertex has no partner.
	Partner int

	Label Label
	Fused bool
}

// Label classifies an intersection vertex per the Foster et al.
// polygon-clipping scheme.
type Label int

const (
	LabelNone Label = iota
	LabelEntry
	LabelExit
	LabelBoth
)

// edgeHit is a single intersection found along one edge of one ring.
type edgeHit struct {
	edgeIndex int
	t         float64 // parametrization along the edge, in [0,1]
	coord     geom2.Coord
	partnerID int // index into the global intersection registry
}

// Interconnect finds every crossing or touching point between subject
// and clip, inserts it into both rings (snapping to an existing vertex
// within minEdge instead of creating a near-duplicate), and links
// partners across rings.
func Interconnect(subject, clip geom2.Ring, minEdge float64) (subjV, clipV []*vertex, err error) {
	type regEntry struct {
		coord geom2.Coord
	}
	var registry []regEntry

	var subjHits, clipHits []edgeHit

	n, m := len(subject), len(clip)
	for i := 0; i < n; i++ {
		a0, a1 := subject[i], subject[(i+1)%n]
		for j := 0; j < m; j++ {
			b0, b1 := clip[j], clip[(j+1)%m]
			pts, parallel := segmentIntersections(a0, a1, b0, b1, minEdge)
			for _, hit := range pts {
				id := len(registry)
				registry = append(registry, regEntry{coord: hit.coord})
				subjHits = append(subjHits, edgeHit{edgeIndex: i, t: hit.tA, coord: hit.coord, partnerID: id})
				clipHits = append(clipHits, edgeHit{edgeIndex: j, t: hit.tB, coord: hit.coord, partnerID: id})
			}
			_ = parallel
		}
	}

	subjV = buildAnnotatedRing(subject, subjHits, minEdge)
	clipV = buildAnnotatedRing(clip, clipHits, minEdge)

	linkPartners(subjV, clipV, minEdge)

	return subjV, clipV, nil
}

// buildAnnotatedRing inserts the hits found along each edge of ring,
// in order of increasing parameter t, producing the annotated vertex
// list. Hits within minEdge of an already-present vertex snap to it
// (marked as an intersection in place) rather than inserting a
// near-duplicate.
func buildAnnotatedRing(ring geom2.Ring, hits []edgeHit, minEdge float64) []*vertex {
	byEdge := map[int][]edgeHit{}
	for _, h := range hits {
		byEdge[h.edgeIndex] = append(byEdge[h.edgeIndex], h)
	}
	for edge := range byEdge {
		es := byEdge[edge]
		sort.Slice(es, func(i, j int) bool { return es[i].t < es[j].t })
		byEdge[edge] = es
	}

	out := make([]*vertex, 0, len(ring)+len(hits))
	n := len(ring)
	for i := 0; i < n; i++ {
		out = append(out, &vertex{Coord: ring[i], Partner: -1})
		for _, h := range byEdge[i] {
			if len(out) > 0 && out[len(out)-1].Coord.SquaredDist(h.coord) < minEdge*minEdge {
				out[len(out)-1].Intersection = true
				continue
			}
			out = append(out, &vertex{Coord: h.coord, Intersection: true, Partner: -1})
		}
	}
	return out
}

// linkPartners pairs up intersection vertices across the two
// annotated rings that sit at (nearly) the same coordinate.
func linkPartners(subjV, clipV []*vertex, minEdge float64) {
	for i, sv := range subjV {
		if !sv.Intersection {
			continue
		}
		sv.Partner = -1
		best := -1
		bestDist := math.Inf(1)
		for j, cv := range clipV {
			if !cv.Intersection {
				continue
			}
			d := sv.Coord.SquaredDist(cv.Coord)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		tol := minEdge
		if tol < 1e-9 {
			tol = 1e-9
		}
		if best >= 0 && bestDist < tol*tol {
			sv.Partner = best
			clipV[best].Partner = i
		}
	}
}

type rawHit struct {
	coord  geom2.Coord
	tA, tB float64
}

// segmentIntersections computes the intersection of segments a0a1 and
// b0b1 by signed-area ratios for the non-parallel case, and by overlap
// parametrization for the parallel case (shared sub-segment endpoints
// are reported as hits).
func segmentIntersections(a0, a1, b0, b1 geom2.Coord, minEdge float64) ([]rawHit, bool) {
	r := a1.Sub(a0)
	s := b1.Sub(b0)
	denom := r.Cross(s)

	if math.Abs(denom) > minEdge {
		// Non-parallel case: standard signed-area ratio intersection.
		qp := b0.Sub(a0)
		t := qp.Cross(s) / denom
		u := qp.Cross(r) / denom
		if t < -1e-9 || t > 1+1e-9 || u < -1e-9 || u > 1+1e-9 {
			return nil, false
		}
		t = clamp01(t)
		u = clamp01(u)
		pt := a0.Add(r.Scale(t))
		return []rawHit{{coord: pt, tA: t, tB: u}}, false
	}

	// Parallel (or near-parallel) case: only collinear overlaps count.
	qp := b0.Sub(a0)
	if math.Abs(qp.Cross(r)) > minEdge {
		return nil, true // parallel but not collinear
	}
	// Collinear: parametrize both endpoints of b onto a's line and
	// report the overlap endpoints as hits.
	rr := r.Dot(r)
	if rr == 0 {
		return nil, true
	}
	t0 := b0.Sub(a0).Dot(r) / rr
	t1 := b1.Sub(a0).Dot(r) / rr
	lo, hi := t0, t1
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = math.Max(lo, 0)
	hi = math.Min(hi, 1)
	if lo > hi+1e-9 {
		return nil, true
	}
	var hits []rawHit
	for _, t := range []float64{lo, hi} {
		t = clamp01(t)
		pt := a0.Add(r.Scale(t))
		u := paramOnSegment(b0, b1, pt)
		hits = append(hits, rawHit{coord: pt, tA: t, tB: u})
	}
	return hits, true
}

func paramOnSegment(b0, b1, pt geom2.Coord) float64 {
	d := b1.Sub(b0)
	len2 := d.Dot(d)
	if len2 == 0 {
		return 0
	}
	return clamp01(pt.Sub(b0).Dot(d) / len2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
