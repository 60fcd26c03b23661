package armor

// Tunables collects the constants the pipeline recommends defaults
// for. A zero value in any field means "use the recommended default",
// the same convention model3d.Decimator uses for its FeatureAngle
// field.
type Tunables struct {
	// Precision is the grid step used to snap coordinates before and
	// after occlusion, stabilizing the polygon boolean operations.
	Precision float64

	// MinEdge is the fusion radius: vertices closer than this collapse
	// into one.
	MinEdge float64

	// MaxAngleDegrees is the perpendicularity cutoff: triangles whose
	// normal makes a larger angle than this with the view axis
	// contribute nothing and are dropped.
	MaxAngleDegrees float64

	// MinArea is the absolute signed area below which a polygon is
	// considered an artifact and discarded.
	MinArea float64

	// MaxRetries bounds how many recovery passes the occluder will
	// attempt before giving up on a fragment. The view builder's union
	// step does not use it: it retries a faulted union exactly once.
	MaxRetries int

	// Lookahead bounds the length of a zig-zag chain the smoothing
	// pass will remove.
	Lookahead int

	// SmoothEdgeThreshold is the squared-length threshold below which
	// a smoothing-pass segment is considered "small" and eligible for
	// removal. Defaults to Precision^2 when zero.
	SmoothEdgeThreshold float64
}

const (
	DefaultPrecision           = 1e-3
	DefaultMinEdge             = 1e-6
	DefaultMaxAngleDegrees     = 89.5
	DefaultMinArea             = 5e-3
	DefaultMaxRetries          = 3
	DefaultLookahead           = 3
)

// WithDefaults returns a copy of t with every zero field replaced by
// its recommended default.
func (t Tunables) WithDefaults() Tunables {
	if t.Precision == 0 {
		t.Precision = DefaultPrecision
	}
	if t.MinEdge == 0 {
		t.MinEdge = DefaultMinEdge
	}
	if t.MaxAngleDegrees == 0 {
		t.MaxAngleDegrees = DefaultMaxAngleDegrees
	}
	if t.MinArea == 0 {
		t.MinArea = DefaultMinArea
	}
	if t.MaxRetries == 0 {
		t.MaxRetries = DefaultMaxRetries
	}
	if t.Lookahead == 0 {
		t.Lookahead = DefaultLookahead
	}
	if t.SmoothEdgeThreshold == 0 {
		t.SmoothEdgeThreshold = t.Precision * t.Precision
	}
	return t
}

// MinEdgeSquared is a convenience for the many call sites that compare
// against MIN_EDGE^2 rather than MIN_EDGE directly.
func (t Tunables) MinEdgeSquared() float64 {
	return t.MinEdge * t.MinEdge
}
