// Package diag holds process-lifetime counters for events that are
// logged rather than surfaced to the caller: degeneracy faults, cache
// hits/misses, and worker failures. Callers read them through the
// accessor methods below.
package diag

import "sync/atomic"

// Counters is a set of independent atomic counters. The zero value is
// ready to use.
type Counters struct {
	degeneracies   atomic.Int64
	cacheHits      atomic.Int64
	cacheMisses    atomic.Int64
	workerFailures atomic.Int64
}

func (c *Counters) DegeneracyFault() { c.degeneracies.Add(1) }
func (c *Counters) CacheHit()        { c.cacheHits.Add(1) }
func (c *Counters) CacheMiss()       { c.cacheMisses.Add(1) }
func (c *Counters) WorkerFailure()   { c.workerFailures.Add(1) }

func (c *Counters) Degeneracies() int64   { return c.degeneracies.Load() }
func (c *Counters) CacheHits() int64      { return c.cacheHits.Load() }
func (c *Counters) CacheMisses() int64    { return c.cacheMisses.Load() }
func (c *Counters) WorkerFailures() int64 { return c.workerFailures.Load() }
