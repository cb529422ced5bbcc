// Package dd implements the sequential Delta Debugging family: ddmin,
// and its dd-star fixed-point wrapper (spec §4.4), grounded on the
// teacher's fixed-point-loop analysis style (internal/semantic's
// repeated passes to a stable result) generalized to the reducer's
// cycle/restart structure.
package dd

import (
	"context"

	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/cache"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/dderrors"
	"ddreduce/internal/ddreduce/events"
	"ddreduce/internal/ddreduce/iterator"
	"ddreduce/internal/ddreduce/outcome"
	"ddreduce/internal/ddreduce/runid"
	"ddreduce/internal/ddreduce/splitter"
	"ddreduce/internal/ddreduce/stop"
	"ddreduce/internal/ddreduce/tester"
)

// Options configures one reduction run (spec §6 "Reducer configuration").
type Options struct {
	Split    splitter.Splitter
	Iterator iterator.Combined
	Cache    cache.Cache // nil is treated as cache.NoCache
	IDPrefix tester.ID
	Observer *events.Sink // nil is treated as a no-op sink
	DDStar   bool
	Stop     *stop.Predicate // nil is treated as stop.None()
}

// Reducer runs sequential ddmin/dd-star against one atom array.
type Reducer struct {
	Tester  tester.Tester
	Builder builder.TestBuilder
	Opts    Options
}

// New constructs a Reducer, filling in sane defaults for nil optional
// fields so callers need only set what they care about.
func New(t tester.Tester, tb builder.TestBuilder, opts Options) *Reducer {
	if opts.Cache == nil {
		opts.Cache, _ = cache.New("none", cache.Options{})
	}
	if opts.Observer == nil {
		opts.Observer = events.NewSink()
	}
	if opts.Stop == nil {
		opts.Stop = stop.None()
	}
	opts.Cache.SetTestBuilder(tb)
	return &Reducer{Tester: t, Builder: tb, Opts: opts}
}

// Reduce runs the algorithm of spec §4.4 against the initial
// configuration c, returning the 1-minimal configuration found (or the
// best-known configuration, wrapped in a *dderrors.ReductionStopped or
// *dderrors.ReductionException, if the run was cut short).
func (r *Reducer) Reduce(ctx context.Context, c config.Configuration, n0 int) (config.Configuration, error) {
	cur := c
	n := n0
	cycle := 0
	for {
		reduced, err := r.ddmin(ctx, cur, n, &cycle)
		if err != nil {
			return reduced, err
		}
		if !(r.Opts.DDStar && reduced.Len() < cur.Len()) {
			return reduced, nil
		}
		cur = reduced
		if n > cur.Len() {
			n = cur.Len()
		}
		if n < 2 {
			n = 2
		}
	}
}

// ddmin runs cycles to a fixed point at one dd-star outer iteration,
// implementing steps (a)-(f) of spec §4.4.
func (r *Reducer) ddmin(ctx context.Context, c config.Configuration, n int, cycle *int) (config.Configuration, error) {
	r.Opts.Observer.Notify(events.IterationStarted, events.Payload{"config": c, "n": n})

	complementOffset := -1
	for {
		if err := r.checkStop(c); err != nil {
			return c, err
		}

		*cycle++
		r.Opts.Observer.Notify(events.CycleStarted, events.Payload{"config": c, "n": n, "cycle": *cycle})

		subsets := r.Opts.Split.Split(c, n)
		ord := r.Opts.Iterator
		indices := ord.Indices(n)

		failIdx, failConfig, isSubset, ok, err := r.runCycle(ctx, c, subsets, indices, *cycle, complementOffset)
		if err != nil {
			return c, err
		}

		if ok {
			r.Opts.Observer.Notify(events.SuccessfulReduction, events.Payload{"config": failConfig, "source_index": failIdx})
			r.Opts.Cache.Clean(failConfig)
			c = failConfig
			if isSubset {
				n = 2
				complementOffset = -1
			} else {
				n = maxInt(n-1, 2)
				complementOffset = iterator.Decode(failIdx)
			}
			continue
		}

		if n < c.Len() {
			n = minInt(n*2, c.Len())
			r.Opts.Observer.Notify(events.ConfigurationSplit, events.Payload{"config": c, "n": n})
			continue
		}

		r.Opts.Observer.Notify(events.Finished, events.Payload{"config": c})
		return c, nil
	}
}

// runCycle walks the combined iterator once, testing subsets/complements
// in order and stopping at the first FAIL (spec §4.4 step c/d).
func (r *Reducer) runCycle(ctx context.Context, c config.Configuration, subsets []config.Configuration, indices []int, cycle, complementOffset int) (failIdx int, failConfig config.Configuration, isSubset bool, ok bool, err error) {
	for _, idx := range indices {
		if iterator.IsComplement(idx) {
			skip := iterator.Decode(idx)
			if skip == complementOffset {
				continue
			}
		}

		if stopErr := r.checkStop(c); stopErr != nil {
			return 0, nil, false, false, stopErr
		}

		var candidate config.Configuration
		subset := !iterator.IsComplement(idx)
		if subset {
			candidate = subsets[idx]
		} else {
			candidate = splitter.Complement(subsets, iterator.Decode(idx))
		}

		out, testErr := r.test(ctx, candidate, cycle, idx)
		if testErr != nil {
			return 0, nil, false, false, dderrors.NewReductionException(c, testErr)
		}
		// A FAIL only counts as a reduction if it strictly shrinks the
		// configuration. Without this guard, a complement built from an
		// empty subset (n > |c|) equals c itself and "succeeds" without
		// making progress, looping forever instead of reaching the
		// n >= |c| fixed point (spec §8: "n > |c| ... no infinite loop").
		if out == outcome.Fail && candidate.Len() < c.Len() {
			return idx, candidate, subset, true, nil
		}
	}
	return 0, nil, false, false, nil
}

// test consults the cache before dispatching to the external tester,
// emitting cache_lookup/test_started/test_finished/cache_insert events
// as specified in §4.6.
func (r *Reducer) test(ctx context.Context, c config.Configuration, cycle, slot int) (outcome.Outcome, error) {
	if out, known := r.Opts.Cache.Lookup(c).Get(); known {
		r.Opts.Observer.Notify(events.CacheLookup, events.Payload{"config": c, "hit": true})
		return out, nil
	}
	r.Opts.Observer.Notify(events.CacheLookup, events.Payload{"config": c, "hit": false})

	id := r.Opts.IDPrefix.WithSlot(runid.Cycle(cycle)).WithSlot(runid.Slot(slot))
	content := r.Builder(c)

	r.Opts.Observer.Notify(events.TestStarted, events.Payload{"config": c, "id": id})
	r.Opts.Stop.RecordTest()
	out, err := r.Tester.Test(ctx, content, id)
	r.Opts.Observer.Notify(events.TestFinished, events.Payload{"config": c, "id": id, "outcome": out})
	if err != nil {
		return outcome.Pass, err
	}

	r.Opts.Cache.Add(c, out)
	r.Opts.Observer.Notify(events.CacheInsert, events.Payload{"config": c, "outcome": out})
	return out, nil
}

func (r *Reducer) checkStop(best config.Configuration) error {
	if r.Opts.Stop.Triggered() {
		return dderrors.NewReductionStopped(best, nil)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
