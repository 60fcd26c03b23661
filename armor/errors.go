package armor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds callers distinguish with errors.Is against
// these values; every site that raises one wraps it with
// github.com/pkg/errors to attach a stack trace, the way
// model3d/export.go wraps I/O failures.
var (
	ErrSourceMissing   = errors.New("armor: source file missing")
	ErrSourceMalformed = errors.New("armor: source file malformed")
	ErrCacheMissing    = errors.New("armor: cache file missing")
	ErrCacheStale      = errors.New("armor: cache entry stale")
	ErrCacheMalformed  = errors.New("armor: cache file malformed")
	ErrInvalidView     = errors.New("armor: invalid view")
	ErrWorkerFailure   = errors.New("armor: worker task failed")
)

// errMalformed wraps ErrSourceMalformed with a formatted detail
// message and a stack trace.
func errMalformed(format string, args ...any) error {
	return errors.Wrap(ErrSourceMalformed, fmt.Sprintf(format, args...))
}

// SourceMissing wraps ErrSourceMissing with the path that was not
// found.
func SourceMissing(path string) error {
	return errors.Wrapf(ErrSourceMissing, "path %q", path)
}

// CacheMalformed wraps ErrCacheMalformed with decoding context.
func CacheMalformed(path string, cause error) error {
	return errors.Wrapf(ErrCacheMalformed, "path %q: %v", path, cause)
}

// InvalidView wraps ErrInvalidView naming the offending value.
func InvalidView(name string) error {
	return errors.Wrapf(ErrInvalidView, "view %q", name)
}

// WorkerFailure wraps ErrWorkerFailure with the piece that failed.
func WorkerFailure(pieceID int, cause error) error {
	return errors.Wrapf(ErrWorkerFailure, "piece %d: %v", pieceID, cause)
}
