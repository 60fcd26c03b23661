package viewcache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/geom2"
	"github.com/quartersbrief/armorview/view"
)

func writeSource(t *testing.T, dir, name, hash string) {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"metadata": map[string]string{"hash": hash},
		"armor": map[string][][][3]float64{
			"1": {{{1, 1, 0}, {3, 1, 0}, {3, 3, 0}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func stubView() armor.View {
	return armor.View{1: []geom2.Ring{{geom2.XY(0, 0), geom2.XY(1, 0), geom2.XY(1, 1)}}}
}

func TestGetIsIdempotentAndBuildsOnce(t *testing.T) {
	dir := t.TempDir()
	cacheDir := t.TempDir()
	writeSource(t, dir, "M", "HASH1")

	var calls int32
	c := New(dir, cacheDir, view.Options{})
	c.Build = func(*armor.Model, view.Name, view.Options) (armor.View, error) {
		atomic.AddInt32(&calls, 1)
		return stubView(), nil
	}

	v1, err := c.Get("M", view.Front)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := c.Get("M", view.Front)
	if err != nil {
		t.Fatal(err)
	}
	if len(v1) != len(v2) {
		t.Fatalf("expected equal views, got %v and %v", v1, v2)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected exactly 1 build, got %d", calls)
	}
}

func TestGetDeduplicatesConcurrentCallers(t *testing.T) {
	dir := t.TempDir()
	cacheDir := t.TempDir()
	writeSource(t, dir, "M", "HASH1")

	var calls int32
	release := make(chan struct{})
	started := make(chan struct{})

	c := New(dir, cacheDir, view.Options{})
	c.Build = func(*armor.Model, view.Name, view.Options) (armor.View, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return stubView(), nil
	}

	var wg sync.WaitGroup
	results := make([]armor.View, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = c.Get("M", view.Front)
		}()
	}

	<-started
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected the view builder to run exactly once, got %d", calls)
	}
	if len(results[0]) != len(results[1]) {
		t.Fatalf("expected equal results from both callers")
	}
}

func TestGetRegeneratesStaleCache(t *testing.T) {
	dir := t.TempDir()
	cacheDir := t.TempDir()
	writeSource(t, dir, "M", "NEW")

	stale, err := armor.EncodeCache(armor.Metadata{Hash: "OLD"}, armor.View{1: nil})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cacheDir, "M.front.json"), stale, 0o644); err != nil {
		t.Fatal(err)
	}

	var calls int32
	c := New(dir, cacheDir, view.Options{})
	c.Build = func(*armor.Model, view.Name, view.Options) (armor.View, error) {
		atomic.AddInt32(&calls, 1)
		return stubView(), nil
	}

	v, err := c.Get("M", view.Front)
	if err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected the stale entry to trigger exactly 1 rebuild, got %d", calls)
	}
	if len(v) == 0 {
		t.Fatalf("expected a freshly built view, got empty")
	}

	data, err := os.ReadFile(filepath.Join(cacheDir, "M.front.json"))
	if err != nil {
		t.Fatal(err)
	}
	meta, _, err := armor.DecodeCache(data)
	if err != nil {
		t.Fatal(err)
	}
	if !armor.HashEquals(meta.Hash, "NEW") {
		t.Fatalf("expected the persisted cache hash to be updated to NEW, got %q", meta.Hash)
	}
}

func TestGetSurfacesSourceMissing(t *testing.T) {
	dir := t.TempDir()
	cacheDir := t.TempDir()

	c := New(dir, cacheDir, view.Options{})
	_, err := c.Get("nonexistent", view.Front)
	if err == nil {
		t.Fatal("expected an error for a missing source file")
	}
}
