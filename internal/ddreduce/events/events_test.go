package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/events"
)

type recordingHandler struct {
	events.BaseHandler
	seen []events.Name
}

func (h *recordingHandler) OnIterationStarted(events.Payload) {
	h.seen = append(h.seen, events.IterationStarted)
}

func (h *recordingHandler) OnFinished(events.Payload) {
	h.seen = append(h.seen, events.Finished)
}

func TestSinkDispatchesToMatchingMethodOnly(t *testing.T) {
	h := &recordingHandler{}
	sink := events.NewSink(h)

	sink.Notify(events.IterationStarted, events.Payload{"n": 4})
	sink.Notify(events.CycleStarted, events.Payload{}) // no override: silently ignored
	sink.Notify(events.Finished, events.Payload{})

	assert.Equal(t, []events.Name{events.IterationStarted, events.Finished}, h.seen)
}

func TestSinkWithNoHandlersIsNoop(t *testing.T) {
	sink := events.NewSink()
	assert.NotPanics(t, func() {
		sink.Notify(events.TestStarted, events.Payload{"id": "x"})
	})
}

func TestNilSinkIsNoop(t *testing.T) {
	var sink *events.Sink
	assert.NotPanics(t, func() {
		sink.Notify(events.Finished, events.Payload{})
	})
}

func TestStatsCollector(t *testing.T) {
	sc := events.NewStatsCollector()
	sink := events.NewSink(sc)

	sink.Notify(events.TestStarted, events.Payload{})
	sink.Notify(events.TestFinished, events.Payload{})
	sink.Notify(events.CacheLookup, events.Payload{"hit": true})
	sink.Notify(events.CacheLookup, events.Payload{"hit": false})
	sink.Notify(events.CacheInsert, events.Payload{})
	sink.Notify(events.SuccessfulReduction, events.Payload{})
	sink.Notify(events.ConfigurationSplit, events.Payload{})
	sink.Notify(events.IterationStarted, events.Payload{})
	sink.Notify(events.CycleStarted, events.Payload{})

	snap := sc.Snapshot()
	assert.Equal(t, 1, snap.TestsStarted)
	assert.Equal(t, 1, snap.TestsFinished)
	assert.Equal(t, 1, snap.CacheHits)
	assert.Equal(t, 1, snap.CacheMisses)
	assert.Equal(t, 1, snap.CacheInserts)
	assert.Equal(t, 1, snap.SuccessfulReductions)
	assert.Equal(t, 1, snap.ConfigurationSplits)
	assert.Equal(t, 1, snap.Iterations)
	assert.Equal(t, 1, snap.Cycles)
}
