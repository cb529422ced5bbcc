// Package tester defines the Tester contract the core reducer consumes
// (spec §6): an external collaborator that decides whether built
// content still reproduces the phenomenon being minimized toward.
package tester

import (
	"context"

	"ddreduce/internal/ddreduce/outcome"
)

// ID identifies one dispatched test call: a tuple of short strings
// naming the run, atom-pass, cycle, and subset/complement slot, e.g.
// ("r2b1k9q0", "a0", "r3", "s2"). Implementations typically use it as a
// scratch-workspace name.
type ID []string

func (id ID) String() string {
	s := ""
	for i, part := range id {
		if i > 0 {
			s += "-"
		}
		s += part
	}
	return s
}

// WithSlot returns a copy of id with one more component appended,
// without mutating id.
func (id ID) WithSlot(slot string) ID {
	out := make(ID, len(id)+1)
	copy(out, id)
	out[len(id)] = slot
	return out
}

// Tester runs the interestingness test against built content, returning
// its Outcome. Implementations must be safe to call concurrently from
// ParallelDD's worker pool, disambiguating concurrent invocations via
// id (spec §5).
type Tester interface {
	Test(ctx context.Context, content string, id ID) (outcome.Outcome, error)
}

// Func adapts a plain function to Tester.
type Func func(ctx context.Context, content string, id ID) (outcome.Outcome, error)

func (f Func) Test(ctx context.Context, content string, id ID) (outcome.Outcome, error) {
	return f(ctx, content, id)
}
