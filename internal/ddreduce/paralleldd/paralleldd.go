// Package paralleldd overlays sequential ddmin with a bounded worker
// pool and a greedy merge over concurrently discovered failing slices
// (spec §4.5), grounded on the teacher's adjacent module's
// buffered-channel-semaphore-plus-WaitGroup worker pool
// (joeycumines-go-utilpkg/microbatch.Batcher.run), generalized from
// batching jobs to dispatching independent test calls and harvesting
// their futures in iteration order rather than completion order.
package paralleldd

import (
	"context"
	"runtime"
	"sync"

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

// Options configures one ParallelDD run (spec §6).
type Options struct {
	Split    splitter.Splitter
	Iterator iterator.Combined
	Cache    cache.Cache
	IDPrefix tester.ID
	Observer *events.Sink
	DDStar   bool
	Stop     *stop.Predicate
	ProcNum  int  // bounded worker pool size; default host CPU count if <= 0
	Greedy   bool // enables the accumulating merge of spec §4.5
	Retest   bool // re-verify each accumulated candidate before adopting it
}

// Reducer runs the work-stealing parallel variant of ddmin.
type Reducer struct {
	Tester  tester.Tester
	Builder builder.TestBuilder
	Opts    Options
}

// New constructs a Reducer, filling in defaults for nil/zero optional
// fields.
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
	if opts.ProcNum <= 0 {
		opts.ProcNum = runtime.NumCPU()
	}
	opts.Cache.SetTestBuilder(tb)
	return &Reducer{Tester: t, Builder: tb, Opts: opts}
}

// Reduce runs ddmin/dd-star using the parallel cycle of spec §4.5.
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

// progressEntry tracks one dispatched subset/complement index
// (spec §4.5 step 1): pending until a worker or cache lookup resolves
// it, in the order it was first seen in the cycle.
type progressEntry struct {
	index   int
	config  config.Configuration
	done    bool
	outcome outcome.Outcome
}

func (r *Reducer) ddmin(ctx context.Context, c config.Configuration, n int, cycle *int) (config.Configuration, error) {
	r.Opts.Observer.Notify(events.IterationStarted, events.Payload{"config": c, "n": n})

	for {
		if r.Opts.Stop.Triggered() {
			return c, dderrors.NewReductionStopped(c, nil)
		}

		*cycle++
		r.Opts.Observer.Notify(events.CycleStarted, events.Payload{"config": c, "n": n, "cycle": *cycle})

		subsets := r.Opts.Split.Split(c, n)
		indices := r.Opts.Iterator.Indices(n)

		failing, err := r.runCycle(ctx, c, subsets, indices, *cycle)
		if err != nil {
			return c, err
		}

		if len(failing) == 0 {
			if n < c.Len() {
				n = minInt(n*2, c.Len())
				r.Opts.Observer.Notify(events.ConfigurationSplit, events.Payload{"config": c, "n": n})
				continue
			}
			r.Opts.Observer.Notify(events.Finished, events.Payload{"config": c})
			return c, nil
		}

		newConfig, offset, err := r.merge(ctx, subsets, failing, *cycle)
		if err != nil {
			return c, err
		}

		r.Opts.Observer.Notify(events.SuccessfulReduction, events.Payload{"config": newConfig, "indices": failing})
		r.Opts.Cache.Clean(newConfig)
		c = newConfig
		if offset < 0 {
			n = 2
		} else {
			n = maxInt(n-1, 2)
		}
	}
}

// runCycle dispatches every index in the cycle to the worker pool,
// harvesting completions as it goes (non-blocking while the pool has
// free capacity, blocking for at least one completion once saturated)
// until either a FAIL is found or the iterator is exhausted, then
// drains any still-outstanding jobs before returning (spec §4.5 steps
// 2-5; §5 "Cancellation": jobs are awaited, never cancelled).
func (r *Reducer) runCycle(ctx context.Context, c config.Configuration, subsets []config.Configuration, indices []int, cycle int) ([]int, error) {
	pool := newWorkerPool(r.Opts.ProcNum)
	resultCh := make(chan jobResult, len(indices))

	progress := make([]progressEntry, 0, len(indices))
	posOf := make(map[int]int, len(indices))

	var reductionErr error

	for _, idx := range indices {
		if r.Opts.Stop.Triggered() {
			reductionErr = dderrors.NewReductionStopped(c, nil)
			break
		}

		r.harvest(resultCh, posOf, progress, pool.saturated())
		if hasFail(progress, c.Len()) {
			break
		}

		var candidate config.Configuration
		subset := !iterator.IsComplement(idx)
		if subset {
			candidate = subsets[idx]
		} else {
			candidate = splitter.Complement(subsets, iterator.Decode(idx))
		}

		if out, known := r.Opts.Cache.Lookup(candidate).Get(); known {
			r.Opts.Observer.Notify(events.CacheLookup, events.Payload{"config": candidate, "hit": true})
			pos := len(progress)
			progress = append(progress, progressEntry{index: idx, config: candidate, done: true, outcome: out})
			posOf[idx] = pos
			// Only a FAIL that strictly shrinks the configuration counts
			// as a reduction worth stopping dispatch for; otherwise (e.g.
			// the complement of an empty subset, which equals c itself
			// when n > |c|) it is a no-op "success" that would loop
			// forever (spec §8: "n > |c| ... no infinite loop").
			if out == outcome.Fail && candidate.Len() < c.Len() {
				break
			}
			continue
		}
		r.Opts.Observer.Notify(events.CacheLookup, events.Payload{"config": candidate, "hit": false})

		pos := len(progress)
		progress = append(progress, progressEntry{index: idx, config: candidate})
		posOf[idx] = pos

		cand, id := candidate, r.Opts.IDPrefix.WithSlot(runid.Cycle(cycle)).WithSlot(runid.Slot(idx))
		pool.submit(func() {
			content := r.Builder(cand)
			r.Opts.Observer.Notify(events.TestStarted, events.Payload{"config": cand, "id": id})
			r.Opts.Stop.RecordTest()
			out, err := r.Tester.Test(ctx, content, id)
			r.Opts.Observer.Notify(events.TestFinished, events.Payload{"config": cand, "id": id, "outcome": out})
			resultCh <- jobResult{index: idx, config: cand, outcome: out, err: err}
		})
	}

	pool.wait()
	r.harvest(resultCh, posOf, progress, false)

	if reductionErr != nil {
		return nil, reductionErr
	}

	var failing []int
	for _, p := range progress {
		if p.done && p.outcome == outcome.Fail && p.config.Len() < c.Len() {
			failing = append(failing, p.index)
		}
	}
	return failing, nil
}

// harvest drains resultCh into progress. If blocking is true and
// nothing is immediately available, it waits for exactly one
// completion before draining the rest non-blockingly.
func (r *Reducer) harvest(resultCh chan jobResult, posOf map[int]int, progress []progressEntry, blocking bool) {
	if blocking {
		res := <-resultCh
		r.record(posOf, progress, res)
	}
	for {
		select {
		case res := <-resultCh:
			r.record(posOf, progress, res)
		default:
			return
		}
	}
}

func (r *Reducer) record(posOf map[int]int, progress []progressEntry, res jobResult) {
	pos, ok := posOf[res.index]
	if !ok || pos >= len(progress) {
		return
	}
	entry := &progress[pos]
	entry.done = true
	if res.err != nil {
		entry.outcome = outcome.Pass
		return
	}
	entry.outcome = res.outcome
	r.Opts.Cache.Add(res.config, res.outcome)
	r.Opts.Observer.Notify(events.CacheInsert, events.Payload{"config": res.config, "outcome": res.outcome})
}

// hasFail reports whether progress already contains a FAIL that
// strictly reduces the configuration below limit (the current c's
// length) - a non-reducing FAIL (e.g. the complement of an empty
// subset) must not short-circuit dispatch of the rest of the cycle.
func hasFail(progress []progressEntry, limit int) bool {
	for _, p := range progress {
		if p.done && p.outcome == outcome.Fail && p.config.Len() < limit {
			return true
		}
	}
	return false
}

// merge implements the greedy-merge accumulation of spec §4.5,
// returning the final configuration and the complement_offset to hand
// back to the outer ddmin loop (-1 if the winning candidate was a
// subset, or the evicted subset's index if it was a complement).
func (r *Reducer) merge(ctx context.Context, subsets []config.Configuration, failing []int, cycle int) (config.Configuration, int, error) {
	first := failing[0]
	acc, offset := candidateConfig(subsets, first)

	if !r.Opts.Greedy || len(failing) == 1 {
		return acc, offset, nil
	}

	retest := r.Opts.Retest
	for i := 1; i < len(failing); i++ {
		v := failing[i]
		merged, candOffset := accumulate(acc, subsets, v)

		if !retest {
			acc, offset = merged, candOffset
			continue
		}

		if r.Opts.Stop.Triggered() {
			return acc, offset, dderrors.NewReductionStopped(acc, nil)
		}
		out, err := r.probe(ctx, merged, cycle, v)
		if err != nil {
			return acc, offset, dderrors.NewReductionException(acc, err)
		}
		if out == outcome.Pass {
			continue
		}
		acc, offset = merged, candOffset
	}

	if !retest {
		if r.Opts.Stop.Triggered() {
			return acc, offset, dderrors.NewReductionStopped(acc, nil)
		}
		out, err := r.probe(ctx, acc, cycle, failing[len(failing)-1])
		if err != nil {
			return acc, offset, dderrors.NewReductionException(acc, err)
		}
		if out == outcome.Fail {
			return acc, offset, nil
		}
		r.Opts.Retest = true
		defer func() { r.Opts.Retest = false }()
		return r.merge(ctx, subsets, failing, cycle)
	}

	return acc, offset, nil
}

func (r *Reducer) probe(ctx context.Context, cfg config.Configuration, cycle, slot int) (outcome.Outcome, error) {
	if out, known := r.Opts.Cache.Lookup(cfg).Get(); known {
		r.Opts.Observer.Notify(events.CacheLookup, events.Payload{"config": cfg, "hit": true})
		return out, nil
	}
	r.Opts.Observer.Notify(events.CacheLookup, events.Payload{"config": cfg, "hit": false})
	id := r.Opts.IDPrefix.WithSlot(runid.Cycle(cycle)).WithSlot(runid.Slot(slot)).WithSlot("merge")
	content := r.Builder(cfg)
	r.Opts.Observer.Notify(events.TestStarted, events.Payload{"config": cfg, "id": id})
	r.Opts.Stop.RecordTest()
	out, err := r.Tester.Test(ctx, content, id)
	r.Opts.Observer.Notify(events.TestFinished, events.Payload{"config": cfg, "id": id, "outcome": out})
	if err != nil {
		return outcome.Pass, err
	}
	r.Opts.Cache.Add(cfg, out)
	r.Opts.Observer.Notify(events.CacheInsert, events.Payload{"config": cfg, "outcome": out})
	return out, nil
}

// accumulate folds interesting index v into the running accumulation
// acc (spec §4.5 "Greedy merge" bullets). A subset index discards the
// prior accumulation and starts over from that single subset; a
// complement index removes one more chunk from whatever is currently
// accumulated, so that two complements intersect their removals
// (S_a, S_b both excluded) rather than union them back up to the full
// configuration.
func accumulate(acc config.Configuration, subsets []config.Configuration, v int) (config.Configuration, int) {
	if !iterator.IsComplement(v) {
		return subsets[v].Clone(), -1
	}
	skip := iterator.Decode(v)
	return acc.Subtract(subsets[skip]), skip
}

// candidateConfig returns the built configuration for interesting index
// v (spec §4.5 "Greedy merge" bullets) and the complement_offset it
// implies. Used for the first interesting index, where there is no
// prior accumulation to fold into.
func candidateConfig(subsets []config.Configuration, v int) (config.Configuration, int) {
	if !iterator.IsComplement(v) {
		return subsets[v].Clone(), -1
	}
	skip := iterator.Decode(v)
	return splitter.Complement(subsets, skip), skip
}

// jobResult is a completed worker-pool test, delivered back to the
// driving goroutine over resultCh.
type jobResult struct {
	index   int
	config  config.Configuration
	outcome outcome.Outcome
	err     error
}

// workerPool is a bounded-concurrency job runner: a buffered channel
// used as a counting semaphore plus a WaitGroup, adapted from the
// teacher's adjacent microbatch.Batcher.run.
type workerPool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

func newWorkerPool(size int) *workerPool {
	return &workerPool{sem: make(chan struct{}, size)}
}

func (p *workerPool) submit(job func()) {
	p.wg.Add(1)
	p.sem <- struct{}{}
	go func() {
		defer p.wg.Done()
		defer func() { <-p.sem }()
		job()
	}()
}

func (p *workerPool) saturated() bool {
	return len(p.sem) == cap(p.sem)
}

func (p *workerPool) wait() {
	p.wg.Wait()
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
