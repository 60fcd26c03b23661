package view

import (
	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/geom2"
	"github.com/quartersbrief/armorview/geom3"
)

// Name identifies one of the three orthogonal views.
type Name string

const (
	Front Name = "front"
	Top   Name = "top"
	Side  Name = "side"
)

// AllViews is the literal set of views the generator exposes.
var AllViews = []Name{Front, Top, Side}

// axisFor maps a view name to its drop axis: front, top, side map to
// axes 2, 1, 0 respectively.
func axisFor(name Name) (geom3.Axis, bool) {
	switch name {
	case Front:
		return geom3.AxisZ, true
	case Top:
		return geom3.AxisY, true
	case Side:
		return geom3.AxisX, true
	default:
		return 0, false
	}
}

// orientationFor returns the per-view 2D coordinate flip applied to
// every ring in the assembled view.
func orientationFor(name Name) func(geom2.Coord) geom2.Coord {
	switch name {
	case Front:
		return func(c geom2.Coord) geom2.Coord { return geom2.XY(c.X, -c.Y) }
	case Top:
		return func(c geom2.Coord) geom2.Coord { return geom2.XY(c.Y, c.X) }
	default: // Side
		return func(c geom2.Coord) geom2.Coord { return geom2.XY(c.Y, -c.X) }
	}
}

// PieceFilter decides whether a piece should be considered at all,
// applied immediately after grid snap and before occlusion dispatch.
// This is the "remove torpedo protection" hook; its policy is left
// empty by default, left to the caller to configure.
type PieceFilter func(pieceID int) bool

// Options configures a Builder.
type Options struct {
	Tunables armor.Tunables

	// Workers sizes the worker pool dispatching per-piece occlusion
	// tasks. Zero means 1. occludeAll awaits each task before
	// submitting the next, so pieces are occluded one at a time
	// whatever the pool size.
	Workers int

	// Filter, if non-nil, is consulted for every piece after grid
	// snap; pieces for which it returns false are dropped before
	// occlusion.
	Filter PieceFilter

	// OnDegeneracy is forwarded to the Occluder and to the 2D
	// assembly union step; both call it instead of surfacing an error.
	OnDegeneracy func(reason string)
}
