// Package runid generates short, sortable, collision-free identifiers
// for a reduction run and its atom passes, used as the leading elements
// of a Tester's configuration_id tuple (spec §6).
package runid

import (
	"strconv"

	"github.com/segmentio/ksuid"
)

// New returns a fresh run identifier: a 27-character base62 KSUID
// string, e.g. "0ujtsYcgvSTl8PAuAdqWYSMnLOv".
func New() string {
	return ksuid.New().String()
}

// AtomPass returns a short identifier for the nth atom pass (0-based)
// within a run, e.g. "a0" for the line pass and "a1" for the subsequent
// char pass - matching the "a0","r3","s2"-style tuple shape spec §6
// describes.
func AtomPass(n int) string {
	return "a" + strconv.Itoa(n)
}

// Cycle returns a short identifier for the nth reduction cycle (0-based)
// within an atom pass.
func Cycle(n int) string {
	return "r" + strconv.Itoa(n)
}

// Slot returns a short identifier for the ith dispatched subset/
// complement slot (0-based) within a cycle.
func Slot(i int) string {
	return "s" + strconv.Itoa(i)
}
