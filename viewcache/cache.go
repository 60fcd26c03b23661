// Package viewcache implements the single get(model_name, view) →
// View operation: in-flight deduplication of concurrent requests for
// the same designator, backed by an on-disk cache keyed on the source
// model's content hash.
package viewcache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/internal/diag"
	"github.com/quartersbrief/armorview/view"
)

// Logger is the subset of *zap.SugaredLogger the cache needs, kept
// narrow so tests can supply a trivial stand-in without pulling in
// zap.
type Logger interface {
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
}

// Cache is the coordinator of the raw-model and view entries, acting
// as a single-threaded logical owner of both. It is safe for
// concurrent Get calls because singleflight.Group provides the "no
// suspension between check and install" atomicity that requires.
type Cache struct {
	ArmorDir string
	CacheDir string
	Options  view.Options
	Logger   Logger
	Counters *diag.Counters

	// Build defaults to running a fresh view.Builder, but can be
	// overridden by tests to instrument or stub the view builder
	// without touching the production path.
	Build func(model *armor.Model, viewName view.Name, opts view.Options) (armor.View, error)

	views singleflight.Group
	raw   singleflight.Group

	completedViews sync.Map // designator string -> armor.View
	completedRaw   sync.Map // modelName string -> *armor.Model
}

// New creates a Cache reading source files from armorDir and
// persisting view files into cacheDir.
func New(armorDir, cacheDir string, opts view.Options) *Cache {
	return &Cache{
		ArmorDir: armorDir,
		CacheDir: cacheDir,
		Options:  opts,
		Logger:   noopLogger{},
		Counters: &diag.Counters{},
		Build:    defaultBuild,
	}
}

func defaultBuild(model *armor.Model, viewName view.Name, opts view.Options) (armor.View, error) {
	return view.New(opts).Build(model, viewName)
}

type noopLogger struct{}

func (noopLogger) Infow(string, ...any) {}
func (noopLogger) Warnw(string, ...any) {}

// Get resolves a view, deduplicating concurrent callers requesting
// the same model/view pair and falling back through the in-memory,
// disk, and fresh-build tiers in order.
func (c *Cache) Get(modelName string, viewName view.Name) (armor.View, error) {
	designator := designatorFor(modelName, viewName)

	if v, ok := c.completedViews.Load(designator); ok {
		return v.(armor.View), nil
	}

	result, err, _ := c.views.Do(designator, func() (any, error) {
		if v, ok := c.completedViews.Load(designator); ok {
			return v, nil
		}

		model, err := c.rawModel(modelName)
		if err != nil {
			return nil, err
		}

		v, err := c.resolve(modelName, viewName, model)
		if err != nil {
			return nil, err
		}

		c.completedViews.Store(designator, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(armor.View), nil
}

func designatorFor(modelName string, viewName view.Name) string {
	return fmt.Sprintf("%s.%s", modelName, viewName)
}

// rawModel ensures the raw model for modelName is loaded, deduplicated
// the same way views are: concurrent Get calls for different views of
// the same model share one disk read.
func (c *Cache) rawModel(modelName string) (*armor.Model, error) {
	if m, ok := c.completedRaw.Load(modelName); ok {
		return m.(*armor.Model), nil
	}

	result, err, _ := c.raw.Do(modelName, func() (any, error) {
		if m, ok := c.completedRaw.Load(modelName); ok {
			return m, nil
		}
		model, err := c.readSource(modelName)
		if err != nil {
			return nil, err
		}
		c.completedRaw.Store(modelName, model)
		return model, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*armor.Model), nil
}

// resolve consults the disk cache, falling back to a fresh build,
// then persists the result.
func (c *Cache) resolve(modelName string, viewName view.Name, model *armor.Model) (armor.View, error) {
	path := cacheFilePath(c.CacheDir, modelName, viewName)

	if v, ok := c.readDiskCache(path, model.Metadata.Hash); ok {
		c.Counters.CacheHit()
		c.Logger.Infow("view cache hit", "model", modelName, "view", string(viewName))
		return v, nil
	}
	c.Counters.CacheMiss()

	opts := c.Options
	if opts.OnDegeneracy == nil {
		opts.OnDegeneracy = func(reason string) {
			c.Counters.DegeneracyFault()
			c.Logger.Warnw("degeneracy fault, fragment dropped", "model", modelName, "view", string(viewName), "reason", reason)
		}
	}

	built, err := c.Build(model.Clone(), viewName, opts)
	if err != nil {
		return nil, err
	}

	if err := c.writeDiskCache(path, model.Metadata, built); err != nil {
		// Cache writes that fail after a successful build do not
		// invalidate the in-memory result; just log it.
		c.Logger.Warnw("failed to persist view cache", "path", path, "err", err)
	}

	return built, nil
}
