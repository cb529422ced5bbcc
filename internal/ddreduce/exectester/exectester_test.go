package exectester_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddreduce/internal/ddreduce/exectester"
	"ddreduce/internal/ddreduce/outcome"
	"ddreduce/internal/ddreduce/tester"
)

func scriptThatExitsWith(t *testing.T, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tester not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "check.sh")
	body := "#!/bin/sh\nexit " + itoa(code) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

func TestExitZeroIsFail(t *testing.T) {
	script := scriptThatExitsWith(t, 0)
	tst := exectester.New(script, t.TempDir(), "input")

	out, err := tst.Test(context.Background(), "hello", tester.ID{"r0", "a0"})
	require.NoError(t, err)
	assert.Equal(t, outcome.Fail, out)
}

func TestNonZeroExitIsPass(t *testing.T) {
	script := scriptThatExitsWith(t, 1)
	tst := exectester.New(script, t.TempDir(), "input")

	out, err := tst.Test(context.Background(), "hello", tester.ID{"r0", "a1"})
	require.NoError(t, err)
	assert.Equal(t, outcome.Pass, out)
}

func TestWritesContentToScratchFile(t *testing.T) {
	work := t.TempDir()
	script := scriptThatExitsWith(t, 1)
	tst := exectester.New(script, work, "candidate.txt")

	_, err := tst.Test(context.Background(), "the-content", tester.ID{"run", "slot"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(work, "run-slot", "candidate.txt"))
	require.NoError(t, err)
	assert.Equal(t, "the-content", string(data))
}

func TestDefaultFileName(t *testing.T) {
	tst := exectester.New("/bin/true", t.TempDir(), "")
	assert.Equal(t, "input", tst.FileName)
}
