package cache

import (
	"golang.org/x/crypto/blake2b"

	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/outcome"
)

// digestSize is the fixed output size of the content-hash strategy's
// digest: 32 bytes, collision-resistant (spec §3/§4.3 forbid weak
// hashes). blake2b-256 is used instead of the stdlib's sha256 because it
// is already part of the teacher's dependency graph (golang.org/x/crypto)
// and is both faster and at least as collision-resistant.
const digestSize = 32

type hashEntry struct {
	outcome outcome.Outcome
	length  int
}

// ContentHashCache is the "content-hash" strategy: a flat mapping from
// digest to (Outcome, content length). cache_fail is always forced off
// here (spec §4.3): hash collisions on a cached FAIL would mask a real
// failure, whereas a false PASS hit merely costs a redundant test.
type ContentHashCache struct {
	opts      Options
	tb        builder.TestBuilder
	container map[[digestSize]byte]hashEntry
}

// NewContentHashCache constructs the content-hash strategy.
func NewContentHashCache(opts Options) *ContentHashCache {
	opts.CacheFail = false
	return &ContentHashCache{opts: opts, container: make(map[[digestSize]byte]hashEntry)}
}

func (c *ContentHashCache) SetTestBuilder(tb builder.TestBuilder) {
	c.tb = tb
}

func (c *ContentHashCache) Add(cfg config.Configuration, o outcome.Outcome) {
	if o != outcome.Pass {
		return
	}
	content := c.content(cfg)
	c.container[digest(content)] = hashEntry{outcome: o, length: len(content)}
}

func (c *ContentHashCache) Lookup(cfg config.Configuration) outcome.Maybe {
	e, ok := c.container[digest(c.content(cfg))]
	if !ok {
		return outcome.None
	}
	return outcome.Known(e.outcome)
}

func (c *ContentHashCache) Clear() {
	c.container = make(map[[digestSize]byte]hashEntry)
}

func (c *ContentHashCache) Clean(cfg config.Configuration) {
	if !c.opts.EvictAfterFail {
		return
	}
	length := len(c.content(cfg))
	for h, e := range c.container {
		if e.length > length {
			delete(c.container, h)
		}
	}
}

func (c *ContentHashCache) GetSize() (int, int) {
	if !c.opts.MeasureMemory {
		return 0, 0
	}
	return len(c.container) * (digestSize + 8), len(c.container)
}

func (c *ContentHashCache) content(cfg config.Configuration) string {
	if c.tb == nil {
		return ""
	}
	return c.tb(cfg)
}

func digest(content string) [digestSize]byte {
	return blake2b.Sum256([]byte(content))
}
