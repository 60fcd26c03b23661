package diag

import "testing"

func TestCountersAreIndependent(t *testing.T) {
	var c Counters
	c.DegeneracyFault()
	c.DegeneracyFault()
	c.CacheHit()
	c.WorkerFailure()

	if got := c.Degeneracies(); got != 2 {
		t.Fatalf("expected 2 degeneracies, got %d", got)
	}
	if got := c.CacheHits(); got != 1 {
		t.Fatalf("expected 1 cache hit, got %d", got)
	}
	if got := c.CacheMisses(); got != 0 {
		t.Fatalf("expected 0 cache misses, got %d", got)
	}
	if got := c.WorkerFailures(); got != 1 {
		t.Fatalf("expected 1 worker failure, got %d", got)
	}
}
