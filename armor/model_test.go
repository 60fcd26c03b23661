package armor

import (
	"strings"
	"testing"

	"github.com/quartersbrief/armorview/geom2"
)

func TestDecodeSourceSingleSquare(t *testing.T) {
	data := []byte(`{
		"metadata": {"hash": "ABC123"},
		"armor": {
			"1": [
				[[1,1,0],[3,1,0],[3,3,0]],
				[[1,1,0],[3,3,0],[1,3,0]]
			]
		}
	}`)
	m, err := DecodeSource(data)
	if err != nil {
		t.Fatal(err)
	}
	if m.Metadata.Hash != "ABC123" {
		t.Fatalf("unexpected hash %q", m.Metadata.Hash)
	}
	piece, ok := m.Pieces[1]
	if !ok || len(piece.Triangles) != 2 {
		t.Fatalf("expected piece 1 with 2 triangles, got %+v", piece)
	}
}

func TestDecodeSourceMissingHash(t *testing.T) {
	data := []byte(`{"metadata": {}, "armor": {}}`)
	if _, err := DecodeSource(data); err == nil {
		t.Fatal("expected error for missing hash")
	}
}

func TestHashEqualsCaseInsensitive(t *testing.T) {
	if !HashEquals("ABCdef", "abcDEF") {
		t.Fatal("expected case-insensitive match")
	}
	if HashEquals("ABC", "DEF") {
		t.Fatal("did not expect match")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	meta := Metadata{Hash: "NEW"}
	ring := geom2.Ring{{X: 1, Y: -3}, {X: 3, Y: -3}, {X: 3, Y: -1}, {X: 1, Y: -1}}
	view := View{1: []geom2.Ring{ring}}
	data, err := EncodeCache(meta, view)
	if err != nil {
		t.Fatal(err)
	}
	gotMeta, gotView, err := DecodeCache(data)
	if err != nil {
		t.Fatal(err)
	}
	if gotMeta.Hash != "NEW" {
		t.Fatalf("unexpected hash after round trip: %q", gotMeta.Hash)
	}
	if len(gotView[1]) != 1 || len(gotView[1][0]) != 4 {
		t.Fatalf("unexpected view after round trip: %+v", gotView)
	}
}

func TestDecodeCacheMalformed(t *testing.T) {
	_, _, err := DecodeCache([]byte("not json"))
	if err == nil || !strings.Contains(err.Error(), "invalid character") {
		t.Fatalf("expected a JSON decode error, got %v", err)
	}
}
