// Package armor holds the data model shared by the whole pipeline
// (Vertex, Triangle, Piece, Model, View) and their JSON wire formats,
// matching the on-disk source armor file and cache file layouts.
package armor

import (
	"encoding/json"
	"strings"

	"github.com/quartersbrief/armorview/geom2"
	"github.com/quartersbrief/armorview/geom3"
)

// Metadata carries the opaque content fingerprint used solely for
// cache validation.
type Metadata struct {
	Hash string `json:"hash"`
}

// HashEquals compares two hashes case-insensitively.
func HashEquals(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Piece is one named armor plate: a set of triangles sharing an
// opaque integer identifier carried as the Model's map key.
type Piece struct {
	Triangles []geom3.Triangle
}

// Model is the raw armor mesh for one ship: a mapping of piece_id to
// Piece, plus the metadata used for cache invalidation.
type Model struct {
	Metadata Metadata
	Pieces   map[int]*Piece
}

// Clone deep-copies the model, the read-only copy each worker-pool
// task receives at dispatch time.
func (m *Model) Clone() *Model {
	out := &Model{Metadata: m.Metadata, Pieces: make(map[int]*Piece, len(m.Pieces))}
	for id, p := range m.Pieces {
		tris := make([]geom3.Triangle, len(p.Triangles))
		copy(tris, p.Triangles)
		out.Pieces[id] = &Piece{Triangles: tris}
	}
	return out
}

// View is a mapping of piece_id to the list of 2D polygons visible
// for that piece along one axis.
type View map[int][]geom2.Ring

//
// JSON wire formats.
//

type sourceFile struct {
	Metadata Metadata          `json:"metadata"`
	Armor    map[string][][][3]float64 `json:"armor"`
}

// DecodeSource parses the `{armor_dir}/{model_name}.json` source
// armor format into a Model.
func DecodeSource(data []byte) (*Model, error) {
	var raw sourceFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errMalformed("decode source: %v", err)
	}
	if raw.Metadata.Hash == "" {
		return nil, errMalformed("source file is missing metadata.hash")
	}

	m := &Model{Metadata: raw.Metadata, Pieces: make(map[int]*Piece, len(raw.Armor))}
	for idStr, tris := range raw.Armor {
		id, err := parsePieceID(idStr)
		if err != nil {
			return nil, err
		}
		piece := &Piece{Triangles: make([]geom3.Triangle, 0, len(tris))}
		for _, t := range tris {
			if len(t) != 3 {
				return nil, errMalformed("triangle does not have exactly 3 vertices")
			}
			piece.Triangles = append(piece.Triangles, geom3.Triangle{
				geom3.FromArray(t[0]),
				geom3.FromArray(t[1]),
				geom3.FromArray(t[2]),
			})
		}
		m.Pieces[id] = piece
	}
	return m, nil
}

type cacheFile struct {
	Metadata Metadata               `json:"metadata"`
	View     map[string][][][2]float64 `json:"view"`
}

// DecodeCache parses the `{cache_dir}/{model_name}.{view}.json` cache
// file format.
func DecodeCache(data []byte) (Metadata, View, error) {
	var raw cacheFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return Metadata{}, nil, err
	}
	v := make(View, len(raw.View))
	for idStr, rings := range raw.View {
		id, err := parsePieceID(idStr)
		if err != nil {
			return Metadata{}, nil, err
		}
		for _, ring := range rings {
			r := make(geom2.Ring, len(ring))
			for i, pt := range ring {
				r[i] = geom2.FromArray(pt)
			}
			v[id] = append(v[id], r)
		}
	}
	return raw.Metadata, v, nil
}

// EncodeCache serializes a resolved view and its source hash into the
// cache file format.
func EncodeCache(meta Metadata, v View) ([]byte, error) {
	raw := cacheFile{Metadata: meta, View: make(map[string][][][2]float64, len(v))}
	for id, rings := range v {
		encoded := make([][][2]float64, len(rings))
		for i, ring := range rings {
			pts := make([][2]float64, len(ring))
			for j, c := range ring {
				pts[j] = c.Array()
			}
			encoded[i] = pts
		}
		raw.View[itoa(id)] = encoded
	}
	return json.MarshalIndent(raw, "", "  ")
}
