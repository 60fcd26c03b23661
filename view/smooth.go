package view

import "github.com/quartersbrief/armorview/geom2"

// smooth drops short zig-zag detours left behind by the expand/union
// passes. Starting from each retained
// vertex it looks up to lookahead vertices ahead; if every edge in
// that span is shorter than sqrt(edgeThreshold), the detour is assumed
// to be expansion noise rather than real boundary detail, and the scan
// bridges straight to the far end of the span.
func smooth(ring geom2.Ring, lookahead int, edgeThreshold float64) geom2.Ring {
	n := len(ring)
	if n < 4 || lookahead < 1 {
		return ring
	}

	out := make(geom2.Ring, 0, n)
	visited := 0
	i := 0
	for visited < n {
		cur := ring[i%n]
		out = append(out, cur)

		jump := 1
		for k := lookahead; k >= 2; k-- {
			if k >= n {
				continue
			}
			if isZigZagDetour(ring, i, k, edgeThreshold) {
				jump = k
				break
			}
		}
		i += jump
		visited += jump
	}

	if len(out) < 3 {
		return ring
	}
	return out
}

// isZigZagDetour reports whether the k-edge chain starting at vertex i
// consists entirely of edges shorter than sqrt(edgeThreshold), making
// it safe to bridge directly from ring[i] to ring[i+k].
func isZigZagDetour(ring geom2.Ring, i, k int, edgeThreshold float64) bool {
	n := len(ring)
	for step := 0; step < k; step++ {
		a := ring[(i+step)%n]
		b := ring[(i+step+1)%n]
		if a.SquaredDist(b) >= edgeThreshold {
			return false
		}
	}
	return true
}
