// SPDX-License-Identifier: Apache-2.0

// Package cache memoizes the last validated resident record so unchanged
// screens do not re-run the full extractor chain. It is an optimization,
// never a source of truth: a hit requires the signature recomputed from the
// current screen to match exactly, inside the TTL.
package cache

import (
	"time"

	"desklog/internal/record"
)

// Entry is the single cached extraction.
type Entry struct {
	Record     record.ResidentRecord
	Signature  string
	CapturedAt time.Time
}

// Cache holds at most one entry. The engine is the only caller, on one
// logical call path, so there is no locking.
type Cache struct {
	ttl         time.Duration
	maxFailures int
	failures    int
	entry       *Entry

	// now is swappable for tests.
	now func() time.Time
}

// New creates a cache with the given TTL and defensive failure limit.
func New(ttl time.Duration, maxFailures int) *Cache {
	return &Cache{
		ttl:         ttl,
		maxFailures: maxFailures,
		now:         time.Now,
	}
}

// SetClock replaces the cache's time source. Test hook.
func (c *Cache) SetClock(now func() time.Time) {
	c.now = now
}

// Get returns the cached record when the freshly computed signature matches
// and the entry is inside the TTL. A signature mismatch means the profile
// switched: the stale entry is discarded wholesale, never surfaced.
func (c *Cache) Get(signature string) (*record.ResidentRecord, bool) {
	if c.entry == nil {
		return nil, false
	}
	if c.entry.Signature != signature {
		c.entry = nil
		return nil, false
	}
	if c.now().Sub(c.entry.CapturedAt) >= c.ttl {
		return nil, false
	}
	rec := c.entry.Record
	return &rec, true
}

// Put stores a freshly validated record and resets the failure counter.
func (c *Cache) Put(rec record.ResidentRecord, signature string) {
	c.entry = &Entry{
		Record:     rec,
		Signature:  signature,
		CapturedAt: c.now(),
	}
	c.failures = 0
}

// RecordFailure counts a validation failure. The existing entry stays: a
// failed re-extraction must not evict a still-valid record. After
// maxFailures consecutive failures the cache resets wholesale as a guard
// against a wedged state.
func (c *Cache) RecordFailure() {
	c.failures++
	if c.maxFailures > 0 && c.failures >= c.maxFailures {
		c.Invalidate()
	}
}

// Invalidate discards the entry and failure count, for explicit use when
// the host signals that the profile identity changed.
func (c *Cache) Invalidate() {
	c.entry = nil
	c.failures = 0
}
