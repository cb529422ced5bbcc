package cache

import (
	deadlock "github.com/sasha-s/go-deadlock"

	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/outcome"
)

// SharedCache interposes a single mutex on every operation of a wrapped
// Cache, so it may be shared between the reducer goroutine and
// ParallelDD's worker pool. Granular locking buys nothing here: test
// latency dominates contention (spec §4.3/§5), so one deadlock.Mutex
// guarding the whole cache is sufficient - and it actively detects
// accidental re-entrant locking, which matters because this is the one
// piece of state touched by every worker goroutine.
type SharedCache struct {
	mu     deadlock.Mutex
	nested Cache
}

// NewSharedCache wraps nested with a mutex. No lock-free reads are
// permitted (spec §4.3).
func NewSharedCache(nested Cache) *SharedCache {
	return &SharedCache{nested: nested}
}

func (s *SharedCache) SetTestBuilder(tb builder.TestBuilder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nested.SetTestBuilder(tb)
}

func (s *SharedCache) Add(c config.Configuration, o outcome.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nested.Add(c, o)
}

func (s *SharedCache) Lookup(c config.Configuration) outcome.Maybe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nested.Lookup(c)
}

func (s *SharedCache) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nested.Clear()
}

func (s *SharedCache) Clean(c config.Configuration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nested.Clean(c)
}

func (s *SharedCache) GetSize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nested.GetSize()
}
