package viewcache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/view"
)

func cacheFilePath(cacheDir, modelName string, viewName view.Name) string {
	return filepath.Join(cacheDir, fmt.Sprintf("%s.%s.json", modelName, viewName))
}

func sourceFilePath(armorDir, modelName string) string {
	return filepath.Join(armorDir, modelName+".json")
}

// readSource loads and decodes the raw armor file for modelName,
// translating os.Stat-style errors into the package's sentinel kinds.
func (c *Cache) readSource(modelName string) (*armor.Model, error) {
	path := sourceFilePath(c.ArmorDir, modelName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, armor.SourceMissing(path)
		}
		return nil, errors.Wrapf(err, "read %q", path)
	}
	model, err := armor.DecodeSource(data)
	if err != nil {
		return nil, err
	}
	return model, nil
}

// readDiskCache treats a missing, malformed, or stale cache file
// identically, as a cache miss: CacheMalformed folds into CacheMissing
// and CacheStale folds into "discard and regenerate".
func (c *Cache) readDiskCache(path, wantHash string) (armor.View, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	meta, v, err := armor.DecodeCache(data)
	if err != nil {
		c.Logger.Warnw("cache file malformed, treating as miss", "path", path, "err", err)
		return nil, false
	}
	if !armor.HashEquals(meta.Hash, wantHash) {
		c.Logger.Infow("cache file stale, discarding", "path", path)
		return nil, false
	}
	return v, true
}

// writeDiskCache persists v to path, creating the cache directory if
// needed and writing via a temp-file-then-rename so a reader never
// observes a partially-written file.
func (c *Cache) writeDiskCache(path string, meta armor.Metadata, v armor.View) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create cache dir for %q", path)
	}
	data, err := armor.EncodeCache(meta, v)
	if err != nil {
		return errors.Wrap(err, "encode cache entry")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %q", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %q to %q", tmp, path)
	}
	return nil
}
