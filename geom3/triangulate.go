package geom3

import "github.com/pkg/errors"

// ErrTooFewVertices is returned by Triangulate when the input polygon
// has fewer than 3 vertices.
var ErrTooFewVertices = errors.New("polygon has fewer than 3 vertices")

// Triangulate fan-triangulates a simple, (near-)planar polygon loop
// around its first vertex.
//
// The polygons produced by occlusion and cutting are small, roughly
// convex regions, so a fan is sufficient; a general ear-clip is not
// needed the way it would be for arbitrary user meshes.
func Triangulate(poly []Coord3D) ([]Triangle, error) {
	if len(poly) < 3 {
		return nil, ErrTooFewVertices
	}
	tris := make([]Triangle, 0, len(poly)-2)
	for i := 1; i < len(poly)-1; i++ {
		tris = append(tris, Triangle{poly[0], poly[i], poly[i+1]})
	}
	return tris, nil
}
