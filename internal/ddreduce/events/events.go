// Package events implements the broadcast registry that lets DD and
// ParallelDD notify zero or more observers of lifecycle transitions,
// without those observers influencing control flow (spec §4.6).
package events

import "sync"

// Name identifies one of the fixed set of lifecycle events the
// reducer emits.
type Name string

const (
	IterationStarted    Name = "iteration_started"
	CycleStarted        Name = "cycle_started"
	SuccessfulReduction Name = "successful_reduction"
	ConfigurationSplit  Name = "configuration_split"
	TestStarted         Name = "test_started"
	TestFinished        Name = "test_finished"
	CacheLookup         Name = "cache_lookup"
	CacheInsert         Name = "cache_insert"
	Finished            Name = "finished"
)

// Payload is the keyword-argument-style bag of data accompanying an
// event, mirroring picire's events.py keyword-payload notifications.
type Payload map[string]any

// Handler is a partial listener: a statically-typed analogue of
// picire's "attribute lookup + silent miss" dispatch. Embed BaseHandler
// to get empty-by-default implementations and override only the
// methods a concrete handler (a stats collector, a logger, ...) cares
// about.
type Handler interface {
	OnIterationStarted(Payload)
	OnCycleStarted(Payload)
	OnSuccessfulReduction(Payload)
	OnConfigurationSplit(Payload)
	OnTestStarted(Payload)
	OnTestFinished(Payload)
	OnCacheLookup(Payload)
	OnCacheInsert(Payload)
	OnFinished(Payload)
}

// BaseHandler implements Handler with every method a no-op. Embed it in
// a concrete handler and override only the events of interest.
type BaseHandler struct{}

func (BaseHandler) OnIterationStarted(Payload)    {}
func (BaseHandler) OnCycleStarted(Payload)        {}
func (BaseHandler) OnSuccessfulReduction(Payload) {}
func (BaseHandler) OnConfigurationSplit(Payload)  {}
func (BaseHandler) OnTestStarted(Payload)         {}
func (BaseHandler) OnTestFinished(Payload)        {}
func (BaseHandler) OnCacheLookup(Payload)         {}
func (BaseHandler) OnCacheInsert(Payload)         {}
func (BaseHandler) OnFinished(Payload)            {}

// Sink is a broadcast registry of handlers. Emitting is safe to call
// concurrently (ParallelDD's workers may emit test_started/
// test_finished from multiple goroutines); dispatch to all handlers for
// one event happens under a single lock, which also means handlers do
// not need their own synchronization unless they retain data across
// calls outside of Notify.
type Sink struct {
	mu       sync.Mutex
	handlers []Handler
}

// NewSink builds a sink observing the given handlers, none of which may
// be nil. A sink with zero handlers is valid and every Notify is then a
// no-op.
func NewSink(handlers ...Handler) *Sink {
	return &Sink{handlers: handlers}
}

// Notify dispatches name/payload to every registered handler.
func (s *Sink) Notify(name Name, payload Payload) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.handlers {
		dispatch(h, name, payload)
	}
}

func dispatch(h Handler, name Name, payload Payload) {
	switch name {
	case IterationStarted:
		h.OnIterationStarted(payload)
	case CycleStarted:
		h.OnCycleStarted(payload)
	case SuccessfulReduction:
		h.OnSuccessfulReduction(payload)
	case ConfigurationSplit:
		h.OnConfigurationSplit(payload)
	case TestStarted:
		h.OnTestStarted(payload)
	case TestFinished:
		h.OnTestFinished(payload)
	case CacheLookup:
		h.OnCacheLookup(payload)
	case CacheInsert:
		h.OnCacheInsert(payload)
	case Finished:
		h.OnFinished(payload)
	}
}
