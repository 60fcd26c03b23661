// Package view implements the view builder: grid snap, per-piece
// occlusion dispatch, 2D projection and assembly, smoothing/filtering,
// and orientation.
package view

import (
	"sort"

	"github.com/unixpickle/essentials"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/geom2"
	"github.com/quartersbrief/armorview/geom3"
	"github.com/quartersbrief/armorview/occlude"
	"github.com/quartersbrief/armorview/polybool"
	"github.com/quartersbrief/armorview/workpool"
)

// Builder turns a raw armor.Model into an armor.View along one axis.
type Builder struct {
	Options Options

	// currentView is set for the duration of Build so assemblePiece
	// can look up the per-view orientation flip without threading it
	// through every call.
	currentView Name
}

// New creates a Builder with defaulted tunables.
func New(opts Options) *Builder {
	opts.Tunables = opts.Tunables.WithDefaults()
	return &Builder{Options: opts}
}

// Build runs the full pipeline for the requested view against model,
// which Build takes ownership of (it is mutated in place by grid-snap
// and occlusion; callers must pass a Model they are prepared to
// discard).
func (b *Builder) Build(model *armor.Model, viewName Name) (armor.View, error) {
	axis, ok := axisFor(viewName)
	if !ok {
		return nil, armor.InvalidView(string(viewName))
	}
	b.currentView = viewName

	b.gridSnap(model)
	b.applyFilter(model)
	b.occludeAll(model, axis)

	result := make(armor.View, len(model.Pieces))
	ids := sortedPieceIDs(model)
	for _, id := range ids {
		piece := model.Pieces[id]
		rings := b.assemblePiece(piece, axis)
		if len(rings) == 0 {
			continue
		}
		result[id] = rings
	}
	return result, nil
}

func sortedPieceIDs(model *armor.Model) []int {
	ids := make([]int, 0, len(model.Pieces))
	for id := range model.Pieces {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// gridSnap rounds every vertex to the grid, fuses near-coincident
// vertices, and drops collapsed triangles. Pieces are embarrassingly
// parallel here (unlike occlusion, no piece's snap depends on
// another's), so this fans out with essentials.ConcurrentMap exactly
// as model3d/dc.go parallelizes its independent per-cell work.
func (b *Builder) gridSnap(model *armor.Model) {
	precision := b.Options.Tunables.Precision
	minEdgeSq := b.Options.Tunables.MinEdgeSquared()

	ids := sortedPieceIDs(model)
	essentials.ConcurrentMap(0, len(ids), func(i int) {
		piece := model.Pieces[ids[i]]
		piece.Triangles = snapAndFuseTriangles(piece.Triangles, precision, minEdgeSq)
	})
}

func snapAndFuseTriangles(tris []geom3.Triangle, precision, minEdgeSq float64) []geom3.Triangle {
	out := make([]geom3.Triangle, 0, len(tris))
	for _, t := range tris {
		for i := range t {
			t[i] = t[i].SnapToGrid(precision)
		}
		verts, collapsed := t.Fuse(minEdgeSq)
		if collapsed {
			continue
		}
		tris2, err := geom3.Triangulate(verts)
		if err != nil {
			continue
		}
		out = append(out, tris2...)
	}
	return out
}

// applyFilter drops pieces the configured PieceFilter rejects.
func (b *Builder) applyFilter(model *armor.Model) {
	if b.Options.Filter == nil {
		return
	}
	for id := range model.Pieces {
		if !b.Options.Filter(id) {
			delete(model.Pieces, id)
		}
	}
}

// occludeAll dispatches one task per piece through the worker pool
// against a snapshot of the shared model taken at dispatch time,
// written back to the shared model as soon as that task completes.
// Dispatch and write-back are interleaved piece by piece so that
// piece i's snapshot already reflects the occlusion results of every
// piece processed before it, rather than the model's original,
// unoccluded state.
func (b *Builder) occludeAll(model *armor.Model, axis geom3.Axis) {
	workers := b.Options.Workers
	if workers <= 0 {
		workers = 1
	}
	pool := workpool.New(workers)
	defer pool.Close()

	occluder := occlude.New(b.Options.Tunables)
	occluder.OnDegeneracy = b.Options.OnDegeneracy

	ids := sortedPieceIDs(model)
	for _, id := range ids {
		pieceID := id
		snapshot := model.Clone()
		task := pool.Submit(func() error {
			occluder.OccludePiece(snapshot.Pieces[pieceID], snapshot, axis)
			return nil
		})
		task.Wait()
		model.Pieces[pieceID] = snapshot.Pieces[pieceID]
	}
}

// assemblePiece turns one piece's surviving 3D triangles into display
// rings: drop the view axis, re-snap/fuse, expand, pairwise-union,
// smooth, and filter by MIN_AREA. The orientation flip is applied here
// at the end of assembly so every returned ring is already
// display-oriented.
func (b *Builder) assemblePiece(piece *armor.Piece, axis geom3.Axis) []geom2.Ring {
	t := b.Options.Tunables
	flip := orientationFor(b.viewName())

	flat := dropAxis(piece.Triangles, axis)
	flat = resnapAndFuse(flat, t.Precision, t.MinEdgeSquared())
	if len(flat) == 0 {
		return nil
	}

	expanded := make([]geom2.Ring, len(flat))
	for i, tri := range flat {
		expanded[i] = expandTriangle(tri, t.Precision)
	}

	boolWrapper := polybool.New(t.MinEdge)
	unioned := unionAll(expanded, boolWrapper, t.Precision, b.Options.OnDegeneracy)

	var out []geom2.Ring
	for _, ring := range unioned {
		smoothed := smooth(ring, t.Lookahead, t.SmoothEdgeThreshold)
		if smoothed.AbsArea() < t.MinArea {
			continue
		}
		out = append(out, smoothed.Flip(flip))
	}
	return out
}

// viewName is stashed so assemblePiece can look up the orientation
// flip; Build sets it before calling assemblePiece.
func (b *Builder) viewName() Name { return b.currentView }
