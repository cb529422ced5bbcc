package cache

import (
	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/outcome"
)

// trieNode holds the outcome for the path of indices leading to it, plus
// the children reachable by appending one more index (spec §4.3's
// "config" / trie strategy).
type trieNode struct {
	verdict  outcome.Maybe
	children map[int]*trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[int]*trieNode)}
}

// TrieCache is the "config" strategy: a trie keyed by index, matching
// Zeller's original caching approach.
type TrieCache struct {
	opts Options
	root *trieNode
}

// NewTrieCache constructs the trie-keyed strategy.
func NewTrieCache(opts Options) *TrieCache {
	return &TrieCache{opts: opts, root: newTrieNode()}
}

func (c *TrieCache) SetTestBuilder(builder.TestBuilder) {}

func (c *TrieCache) Add(cfg config.Configuration, o outcome.Outcome) {
	if o == outcome.Fail && !c.opts.CacheFail {
		return
	}
	p := c.root
	for _, idx := range cfg {
		child, ok := p.children[idx]
		if !ok {
			child = newTrieNode()
			p.children[idx] = child
		}
		p = child
	}
	p.verdict = outcome.Known(o)
}

func (c *TrieCache) Lookup(cfg config.Configuration) outcome.Maybe {
	p := c.root
	for _, idx := range cfg {
		child, ok := p.children[idx]
		if !ok {
			return outcome.None
		}
		p = child
	}
	return p.verdict
}

func (c *TrieCache) Clear() {
	c.root = newTrieNode()
}

// Clean evicts, at every node reachable at depth len(cfg) from the
// root (not only along cfg's own path), the entire subtree of children -
// i.e. every entry whose key is a strict extension of any length-L
// prefix. This mirrors picire's ConfigCache.clean exactly (it recurses
// over the whole trie, decrementing a budget, not just cfg's path).
func (c *TrieCache) Clean(cfg config.Configuration) {
	if !c.opts.EvictAfterFail {
		return
	}
	var evict func(n *trieNode, depth int)
	evict = func(n *trieNode, depth int) {
		if depth == 0 {
			n.children = make(map[int]*trieNode)
			return
		}
		for _, child := range n.children {
			evict(child, depth-1)
		}
	}
	evict(c.root, len(cfg))
}

func (c *TrieCache) GetSize() (int, int) {
	if !c.opts.MeasureMemory {
		return 0, 0
	}
	var count int
	var size int
	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		size += trieNodeSize
		count++
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(c.root)
	return size, count
}

// trieNodeSize is a rough, fixed per-node accounting unit; real byte
// accounting would require reflection over map internals, which is not
// worth the cost for a diagnostic-only figure.
const trieNodeSize = 64
