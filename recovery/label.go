package recovery

// classify labels every intersection vertex of subjV as ENTRY, EXIT,
// LabelBoth ("interior bouncing"), or LabelNone ("exterior bouncing"),
// then copies each label to its partner in clipV — a crossing on one
// ring is a crossing on the other.
//
// The walk starts from the first non-intersection vertex found; if
// every vertex of subjV is an intersection (the rings are identical or
// share every edge), IdenticalRingsError is returned and the caller
// treats the subject as fully occluded.
func classify(subjV, clipV []*vertex) error {
	start := -1
	for i, v := range subjV {
		if !v.Intersection {
			start = i
			break
		}
	}
	if start == -1 {
		return IdenticalRingsError{}
	}

	// inside tracks whether the walk is currently inside the clip
	// ring; it flips at each genuine crossing. A vertex is ENTRY when
	// the walk transitions outside->inside, EXIT when inside->outside.
	// Non-crossing ("bouncing") intersections leave inside unchanged:
	// LabelBoth marks a bounce that stays inside (touches then
	// continues inside), LabelNone marks one that stays outside.
	n := len(subjV)
	for step := 0; step < n; step++ {
		idx := (start + step) % n
		v := subjV[idx]
		if !v.Intersection {
			continue
		}

		prev := subjV[(idx-1+n)%n]
		next := subjV[(idx+1)%n]
		side := crossingSide(prev, v, next)

		switch side {
		case sideCrossing:
			if v.Label == LabelNone {
				v.Label = LabelEntry
			} else {
				v.Label = LabelExit
			}
		case sideBounceInside:
			v.Label = LabelBoth
		case sideBounceOutside:
			v.Label = LabelNone
		}
	}

	// Alternate ENTRY/EXIT strictly among the crossing vertices, in
	// ring order starting from the walk start, since the side-test
	// above only detects "a crossing happened" not which kind.
	entryNext := true
	for step := 0; step < n; step++ {
		idx := (start + step) % n
		v := subjV[idx]
		if !v.Intersection || v.Label == LabelBoth || v.Label == LabelNone {
			continue
		}
		if entryNext {
			v.Label = LabelEntry
		} else {
			v.Label = LabelExit
		}
		entryNext = !entryNext
	}

	for _, v := range subjV {
		if v.Intersection && v.Partner >= 0 {
			clipV[v.Partner].Label = v.Label
		}
	}

	return nil
}

type crossSide int

const (
	sideCrossing crossSide = iota
	sideBounceInside
	sideBounceOutside
)

// crossingSide approximates the LEFT_ON/ON_ON/ON_RIGHT chain
// classification for the common case of an isolated intersection
// vertex (not part of a longer coincident-edge chain):
// an intersection vertex is a genuine crossing whenever the polygon
// turns from one side of the other ring to the other at that vertex.
// Chains of coincident edges are approximated by treating every
// vertex in the chain as a crossing, matching the "delayed crossing"
// case (LEFT_ON -> ON_RIGHT) which is the dominant one in
// axis-aligned armor geometry.
func crossingSide(prev, cur, next *vertex) crossSide {
	// Without the full per-edge side table this is deliberately
	// conservative: treat every labeled vertex as a crossing unless
	// it is flanked on both sides by the same ring's own vertices at
	// the identical coordinate (a true interior touch), which would
	// indicate a bounce rather than a crossing.
	if prev.Coord == next.Coord {
		return sideBounceInside
	}
	return sideCrossing
}
