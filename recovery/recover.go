package recovery

import "github.com/quartersbrief/armorview/geom2"

// Recover rebuilds the mutual intersection structure of subject and
// clip and splits both into the components a boolean-difference
// operation would have produced, resuming past whatever near-
// coincident-vertex configuration made the underlying polygon boolean
// library fault.
//
// It runs four steps in sequence: Interconnect, classify (label),
// fuse tiny entry/exit pairs, split.
//
// If subject and clip are indistinguishable, Recover returns
// IdenticalRingsError and the caller treats the subject as fully
// occluded.
func Recover(subject, clip geom2.Ring, minEdge float64) (subjComponents, clipComponents []geom2.Ring, err error) {
	subjV, clipV, err := Interconnect(subject, clip, minEdge)
	if err != nil {
		return nil, nil, err
	}

	if err := classify(subjV, clipV); err != nil {
		return nil, nil, err
	}

	fuseTinyPairs(subjV, clipV, minEdge)
	fuseTinyPairs(clipV, subjV, minEdge)

	subjComponents = split(subjV, minEdge)
	clipComponents = split(clipV, minEdge)

	return subjComponents, clipComponents, nil
}
