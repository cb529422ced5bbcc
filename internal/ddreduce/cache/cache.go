// Package cache implements the polymorphic outcome cache: five
// strategies sharing one interface, plus a thread-safe wrapper.
package cache

import (
	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/outcome"
)

// Cache memoizes per-configuration test verdicts. See spec §4.3.
type Cache interface {
	// SetTestBuilder binds the pure index->content function used by
	// content-keyed strategies during Clean.
	SetTestBuilder(tb builder.TestBuilder)
	// Add is an idempotent insert; the last write for a key wins.
	Add(c config.Configuration, o outcome.Outcome)
	// Lookup returns the known verdict, or outcome.None on a miss.
	Lookup(c config.Configuration) outcome.Maybe
	// Clear removes every entry.
	Clear()
	// Clean evicts entries "larger than" c, per the strategy's
	// definition of larger (spec §4.3). No-op if eviction is disabled.
	Clean(c config.Configuration)
	// GetSize returns (bytes, entries), or (0,0) when measurement is
	// disabled.
	GetSize() (bytes, entries int)
}

// Options configures the cache_fail / evict_after_fail / measure_memory
// knobs shared by every strategy (spec §6).
type Options struct {
	// CacheFail stores FAIL outcomes too, not just PASS. Forced off for
	// the content-hash strategy regardless of this setting.
	CacheFail bool
	// EvictAfterFail enables Clean to actually evict anything.
	EvictAfterFail bool
	// MeasureMemory enables real GetSize accounting.
	MeasureMemory bool
}

// New constructs the named strategy ("none", "config", "config-tuple",
// "content", "content-hash"). The second return is false for an unknown
// name.
func New(strategy string, opts Options) (Cache, bool) {
	switch strategy {
	case "none":
		return NewNoCache(), true
	case "config":
		return NewTrieCache(opts), true
	case "config-tuple":
		return NewTupleCache(opts), true
	case "content":
		return NewContentCache(opts), true
	case "content-hash":
		opts.CacheFail = false
		return NewContentHashCache(opts), true
	default:
		return nil, false
	}
}
