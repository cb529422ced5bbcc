package cache

import (
	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/outcome"
)

// ContentCache is the "content" strategy: a flat mapping from built
// content to Outcome. The cache key is the built content itself (spec
// §9's documented source-quirk fix: picire's Python cache keys on the
// raw configuration and only builds content lazily elsewhere; this
// implementation follows the spec's stated intent instead).
type ContentCache struct {
	opts      Options
	tb        builder.TestBuilder
	container map[string]outcome.Outcome
}

// NewContentCache constructs the content-keyed strategy.
func NewContentCache(opts Options) *ContentCache {
	return &ContentCache{opts: opts, container: make(map[string]outcome.Outcome)}
}

func (c *ContentCache) SetTestBuilder(tb builder.TestBuilder) {
	c.tb = tb
}

func (c *ContentCache) Add(cfg config.Configuration, o outcome.Outcome) {
	if o == outcome.Fail && !c.opts.CacheFail {
		return
	}
	c.container[c.content(cfg)] = o
}

func (c *ContentCache) Lookup(cfg config.Configuration) outcome.Maybe {
	o, ok := c.container[c.content(cfg)]
	if !ok {
		return outcome.None
	}
	return outcome.Known(o)
}

func (c *ContentCache) Clear() {
	c.container = make(map[string]outcome.Outcome)
}

func (c *ContentCache) Clean(cfg config.Configuration) {
	if !c.opts.EvictAfterFail {
		return
	}
	length := len(c.content(cfg))
	for k := range c.container {
		if len(k) > length {
			delete(c.container, k)
		}
	}
}

func (c *ContentCache) GetSize() (int, int) {
	if !c.opts.MeasureMemory {
		return 0, 0
	}
	size := 0
	for k := range c.container {
		size += len(k)
	}
	return size, len(c.container)
}

func (c *ContentCache) content(cfg config.Configuration) string {
	if c.tb == nil {
		return ""
	}
	return c.tb(cfg)
}
