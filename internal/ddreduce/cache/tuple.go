package cache

import (
	"strconv"
	"strings"

	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/outcome"
)

// TupleCache is the "config-tuple" strategy: a single flat mapping from
// immutable sequence to Outcome.
type TupleCache struct {
	opts      Options
	container map[string]entry
}

type entry struct {
	outcome outcome.Outcome
	length  int
}

// NewTupleCache constructs the config-tuple strategy.
func NewTupleCache(opts Options) *TupleCache {
	return &TupleCache{opts: opts, container: make(map[string]entry)}
}

func (c *TupleCache) SetTestBuilder(builder.TestBuilder) {}

func (c *TupleCache) Add(cfg config.Configuration, o outcome.Outcome) {
	if o == outcome.Fail && !c.opts.CacheFail {
		return
	}
	c.container[tupleKey(cfg)] = entry{outcome: o, length: len(cfg)}
}

func (c *TupleCache) Lookup(cfg config.Configuration) outcome.Maybe {
	e, ok := c.container[tupleKey(cfg)]
	if !ok {
		return outcome.None
	}
	return outcome.Known(e.outcome)
}

func (c *TupleCache) Clear() {
	c.container = make(map[string]entry)
}

func (c *TupleCache) Clean(cfg config.Configuration) {
	if !c.opts.EvictAfterFail {
		return
	}
	length := len(cfg)
	for k, e := range c.container {
		if e.length > length {
			delete(c.container, k)
		}
	}
}

func (c *TupleCache) GetSize() (int, int) {
	if !c.opts.MeasureMemory {
		return 0, 0
	}
	size := 0
	for k := range c.container {
		size += len(k) + 16
	}
	return size, len(c.container)
}

// tupleKey renders a Configuration as an immutable, comparable key. A
// sequence of ints can't be a Go map key directly, so it is encoded as a
// delimited string; each index is length-prefixed-free since commas
// cannot appear inside strconv.Itoa output.
func tupleKey(cfg config.Configuration) string {
	var b strings.Builder
	for i, idx := range cfg {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}
