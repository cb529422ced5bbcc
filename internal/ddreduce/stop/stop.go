// Package stop implements the reducer's time/test-count budget (spec
// §4.4/§5): polled before every dispatch, it signals cancellation by
// Triggered() reporting true.
package stop

import (
	"sync/atomic"
	"time"
)

// Predicate carries an optional wall-clock deadline and an optional
// max-test count; either or both may be set. A zero Predicate never
// stops.
type Predicate struct {
	deadline    time.Time
	hasDeadline bool
	maxTests    int
	hasMaxTests bool
	tested      atomic.Int64
}

// New builds a predicate. Pass a zero time.Time to leave the deadline
// unset, and maxTests <= 0 to leave the test budget unset.
func New(deadline time.Time, maxTests int) *Predicate {
	p := &Predicate{}
	if !deadline.IsZero() {
		p.deadline = deadline
		p.hasDeadline = true
	}
	if maxTests > 0 {
		p.maxTests = maxTests
		p.hasMaxTests = true
	}
	return p
}

// None returns a predicate that never triggers.
func None() *Predicate {
	return &Predicate{}
}

// RecordTest must be called once per dispatched test (cached lookups do
// not count - spec §4.4 distinguishes them in events, though both count
// toward "algorithmic progress").
func (p *Predicate) RecordTest() {
	if p == nil {
		return
	}
	p.tested.Add(1)
}

// Triggered reports whether the predicate has tripped.
func (p *Predicate) Triggered() bool {
	if p == nil {
		return false
	}
	if p.hasDeadline && !time.Now().Before(p.deadline) {
		return true
	}
	if p.hasMaxTests && p.tested.Load() >= int64(p.maxTests) {
		return true
	}
	return false
}
