package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddreduce/internal/ddreduce/report"
)

func TestDiffNoChange(t *testing.T) {
	err := report.Diff("before.txt", "after.txt", "same\n", "same\n")
	require.NoError(t, err)
}

func TestDiffWithChanges(t *testing.T) {
	err := report.Diff("before.txt", "after.txt", "a\nb\nc\n", "a\nc\n")
	require.NoError(t, err)
}

func TestReportFunctionsDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		report.Started("line pass", 42)
		report.Reduced("line pass", 42, 7)
		report.Stopped("deadline exceeded", 7)
		report.Failed(errors.New("tester exited non-zero unexpectedly"))
	})
}
