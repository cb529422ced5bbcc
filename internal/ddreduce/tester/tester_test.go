package tester_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/outcome"
	"ddreduce/internal/ddreduce/tester"
)

func TestIDStringJoinsWithDash(t *testing.T) {
	id := tester.ID{"r1", "a0", "r3"}
	assert.Equal(t, "r1-a0-r3", id.String())
}

func TestIDStringEmpty(t *testing.T) {
	assert.Equal(t, "", tester.ID{}.String())
}

func TestIDWithSlotDoesNotMutateReceiver(t *testing.T) {
	base := tester.ID{"r1", "a0"}
	extended := base.WithSlot("s2")

	assert.Equal(t, tester.ID{"r1", "a0", "s2"}, extended)
	assert.Equal(t, tester.ID{"r1", "a0"}, base)
}

func TestFuncAdaptsToTester(t *testing.T) {
	var calledWith tester.ID
	f := tester.Func(func(ctx context.Context, content string, id tester.ID) (outcome.Outcome, error) {
		calledWith = id
		if content == "boom" {
			return outcome.Fail, nil
		}
		return outcome.Pass, nil
	})

	var tst tester.Tester = f
	out, err := tst.Test(context.Background(), "boom", tester.ID{"r0"})
	assert.NoError(t, err)
	assert.Equal(t, outcome.Fail, out)
	assert.Equal(t, tester.ID{"r0"}, calledWith)
}
