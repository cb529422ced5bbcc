package stop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/stop"
)

func TestNoneNeverTriggers(t *testing.T) {
	p := stop.None()
	for i := 0; i < 100; i++ {
		p.RecordTest()
	}
	assert.False(t, p.Triggered())
}

func TestNilPredicateNeverTriggers(t *testing.T) {
	var p *stop.Predicate
	assert.NotPanics(t, func() { p.RecordTest() })
	assert.False(t, p.Triggered())
}

func TestMaxTestsTriggers(t *testing.T) {
	p := stop.New(time.Time{}, 2)
	assert.False(t, p.Triggered())
	p.RecordTest()
	assert.False(t, p.Triggered())
	p.RecordTest()
	assert.True(t, p.Triggered())
}

func TestDeadlineTriggers(t *testing.T) {
	p := stop.New(time.Now().Add(-time.Second), 0)
	assert.True(t, p.Triggered())
}

func TestDeadlineNotYetReached(t *testing.T) {
	p := stop.New(time.Now().Add(time.Hour), 0)
	assert.False(t, p.Triggered())
}
