// Package config defines Configuration, a strictly increasing sequence
// of atom indices, and the set operations the reducer performs on it.
package config

import "sort"

// Configuration is a sorted, duplicate-free sequence of non-negative
// indices into the current atom array. Its canonical form is always
// sorted; callers must not construct one out of order.
type Configuration []int

// New returns the canonical (sorted, deduplicated) form of indices. The
// input slice is not mutated.
func New(indices []int) Configuration {
	cp := make([]int, len(indices))
	copy(cp, indices)
	sort.Ints(cp)
	return Configuration(dedup(cp))
}

func dedup(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Full returns the canonical configuration containing every index in
// [0, n).
func Full(n int) Configuration {
	c := make(Configuration, n)
	for i := range c {
		c[i] = i
	}
	return c
}

// Equal reports whether c and other represent the same sequence.
func (c Configuration) Equal(other Configuration) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Len is the number of atoms referenced.
func (c Configuration) Len() int {
	return len(c)
}

// Contains reports whether idx is present, via binary search (c is
// assumed sorted).
func (c Configuration) Contains(idx int) bool {
	i := sort.SearchInts(c, idx)
	return i < len(c) && c[i] == idx
}

// Union returns the sorted, deduplicated union of c and other.
func (c Configuration) Union(other Configuration) Configuration {
	merged := make([]int, 0, len(c)+len(other))
	merged = append(merged, c...)
	merged = append(merged, other...)
	return New(merged)
}

// Subtract returns c with every index in other removed.
func (c Configuration) Subtract(other Configuration) Configuration {
	out := make(Configuration, 0, len(c))
	for _, v := range c {
		if !other.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Clone returns an independent copy.
func (c Configuration) Clone() Configuration {
	cp := make(Configuration, len(c))
	copy(cp, c)
	return cp
}
