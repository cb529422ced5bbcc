package events

import "sync"

// StatsCollector counts the lifecycle events of a reduction run. It is
// safe for concurrent use because Sink.Notify serializes dispatch, but
// it locks independently too since a caller may read a Snapshot while a
// reduction is still in flight.
type StatsCollector struct {
	BaseHandler

	mu sync.Mutex

	TestsStarted         int
	TestsFinished        int
	CacheHits            int
	CacheMisses          int
	CacheInserts         int
	SuccessfulReductions int
	ConfigurationSplits  int
	Iterations           int
	Cycles               int
}

// NewStatsCollector returns a zeroed collector ready to be attached to a
// Sink.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

func (s *StatsCollector) OnIterationStarted(Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Iterations++
}

func (s *StatsCollector) OnCycleStarted(Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cycles++
}

func (s *StatsCollector) OnSuccessfulReduction(Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SuccessfulReductions++
}

func (s *StatsCollector) OnConfigurationSplit(Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ConfigurationSplits++
}

func (s *StatsCollector) OnTestStarted(Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TestsStarted++
}

func (s *StatsCollector) OnTestFinished(Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TestsFinished++
}

func (s *StatsCollector) OnCacheLookup(p Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hit, _ := p["hit"].(bool); hit {
		s.CacheHits++
	} else {
		s.CacheMisses++
	}
}

func (s *StatsCollector) OnCacheInsert(Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CacheInserts++
}

// Snapshot is a copy of the counters at a point in time, suitable for
// JSON export (see internal/ddreduce/stats).
type Snapshot struct {
	TestsStarted         int `json:"tests_started"`
	TestsFinished        int `json:"tests_finished"`
	CacheHits            int `json:"cache_hits"`
	CacheMisses          int `json:"cache_misses"`
	CacheInserts         int `json:"cache_inserts"`
	SuccessfulReductions int `json:"successful_reductions"`
	ConfigurationSplits  int `json:"configuration_splits"`
	Iterations           int `json:"iterations"`
	Cycles               int `json:"cycles"`
}

// Snapshot returns a consistent copy of the current counters.
func (s *StatsCollector) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		TestsStarted:         s.TestsStarted,
		TestsFinished:        s.TestsFinished,
		CacheHits:            s.CacheHits,
		CacheMisses:          s.CacheMisses,
		CacheInserts:         s.CacheInserts,
		SuccessfulReductions: s.SuccessfulReductions,
		ConfigurationSplits:  s.ConfigurationSplits,
		Iterations:           s.Iterations,
		Cycles:               s.Cycles,
	}
}
