// Package exectester implements a Tester that runs an external
// interestingness-test script as a subprocess per call (spec §1/§6:
// subprocess-based test execution is ambient plumbing, outside the
// core, but the driver needs one concrete Tester to be runnable
// end-to-end).
package exectester

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"ddreduce/internal/ddreduce/outcome"
	"ddreduce/internal/ddreduce/tester"
)

// Tester writes built content to a scratch file named after the test's
// ID, then runs Script against it. Script is considered interesting
// (FAIL) when it exits with status 0, matching the usual shell
// convention for "the bug reproduced".
type Tester struct {
	// Script is the interestingness test to run; its first argument is
	// the path to the candidate input file.
	Script string
	// WorkDir holds the per-call scratch files; created if it does not
	// exist.
	WorkDir string
	// FileName is the base name given to the candidate input file
	// inside each call's scratch subdirectory, e.g. "input.txt".
	FileName string
}

// New returns a subprocess Tester.
func New(script, workDir, fileName string) *Tester {
	if fileName == "" {
		fileName = "input"
	}
	return &Tester{Script: script, WorkDir: workDir, FileName: fileName}
}

func (t *Tester) Test(ctx context.Context, content string, id tester.ID) (outcome.Outcome, error) {
	dir := filepath.Join(t.WorkDir, id.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return outcome.Pass, err
	}

	path := filepath.Join(dir, t.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return outcome.Pass, err
	}

	cmd := exec.CommandContext(ctx, t.Script, path)
	cmd.Dir = dir
	err := cmd.Run()

	if ctx.Err() != nil {
		return outcome.Pass, ctx.Err()
	}

	if err == nil {
		return outcome.Fail, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return outcome.Pass, nil
	}
	return outcome.Pass, err
}
