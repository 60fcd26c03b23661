package recovery

import (
	"github.com/unixpickle/essentials"

	"github.com/quartersbrief/armorview/geom2"
)

// fuseTinyPairs merges an ENTRY and the next EXIT in ring when they
// fall within minEdge of each other, marking both (and their
// partners) as Fused, so the subsequent split doesn't produce sliver
// components.
func fuseTinyPairs(ring, partner []*vertex, minEdge float64) {
	n := len(ring)
	type pair struct{ i, j int }
	var pairs []pair
	for i, v := range ring {
		if v.Label != LabelEntry {
			continue
		}
		for step := 1; step < n; step++ {
			j := (i + step) % n
			if ring[j].Label == LabelExit {
				pairs = append(pairs, pair{i, j})
				break
			}
			if ring[j].Label == LabelEntry {
				break
			}
		}
	}

	// Process pairs ordered by distance so that the smallest,
	// least-ambiguous fusions are committed first; VoodooSort keeps
	// the parallel "pairs" slice in lockstep with its sort key,
	// exactly as model3d/dc.go orders triangle groups by dihedral
	// angle before committing them.
	dists := make([]float64, len(pairs))
	for i, p := range pairs {
		dists[i] = ring[p.i].Coord.SquaredDist(ring[p.j].Coord)
	}
	essentials.VoodooSort(dists, func(i, j int) bool {
		return dists[i] < dists[j]
	}, pairs)

	for k, p := range pairs {
		if dists[k] >= minEdge*minEdge {
			continue
		}
		a, b := ring[p.i], ring[p.j]
		if a.Fused || b.Fused {
			continue
		}
		a.Fused, b.Fused = true, true
		if a.Partner >= 0 {
			partner[a.Partner].Fused = true
		}
		if b.Partner >= 0 {
			partner[b.Partner].Fused = true
		}
	}
}

// split breaks ring into components at its fused vertices: each
// maximal run of vertices between (and including the endpoints of) a
// fused pair becomes its own ring. A ring with no fused vertices
// yields itself unchanged as the sole component.
func split(ring []*vertex, minEdge float64) []geom2.Ring {
	var cuts []int
	for i, v := range ring {
		if v.Fused {
			cuts = append(cuts, i)
		}
	}
	if len(cuts) < 2 {
		return []geom2.Ring{toRing(ring)}
	}

	var components []geom2.Ring
	for k := 0; k < len(cuts); k++ {
		start := cuts[k]
		end := cuts[(k+1)%len(cuts)]
		seg := sliceRing(ring, start, end)
		if len(seg) < 3 {
			continue
		}
		r := toRing(seg)
		if !tooSmall(r, minEdge) {
			components = append(components, r)
		}
	}
	return components
}

func sliceRing(ring []*vertex, start, end int) []*vertex {
	n := len(ring)
	var out []*vertex
	for i := start; ; i = (i + 1) % n {
		out = append(out, ring[i])
		if i == end {
			break
		}
	}
	return out
}

func toRing(vs []*vertex) geom2.Ring {
	r := make(geom2.Ring, len(vs))
	for i, v := range vs {
		r[i] = v.Coord
	}
	return r
}

// tooSmall reports whether every edge of r is shorter than minEdge,
// the caller's criterion for discarding a split component.
func tooSmall(r geom2.Ring, minEdge float64) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		if r[i].Dist(r[(i+1)%n]) >= minEdge {
			return false
		}
	}
	return true
}
