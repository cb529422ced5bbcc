// Package report prints colorized status lines and unified diffs for
// the driver, grounded on internal/errors/reporter.go's
// color.New(...).SprintFunc() styling and cmd/kanso-cli/main.go's
// green/red success/failure lines.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

var (
	bold = color.New(color.Bold).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// Started announces the start of a reduction run.
func Started(atomPass string, atomCount int) {
	fmt.Printf("%s %s: %d atom(s)\n", bold("▶ reducing"), atomPass, atomCount)
}

// Reduced announces a successful atom-pass result.
func Reduced(atomPass string, before, after int) {
	color.Green("✓ %s: %d → %d atom(s)", atomPass, before, after)
}

// Stopped announces a clean stop-predicate termination.
func Stopped(reason string, atoms int) {
	color.Yellow("■ reduction stopped (%s): best known configuration has %d atom(s)", reason, atoms)
}

// Failed announces an abnormal termination.
func Failed(err error) {
	color.Red("✗ reduction aborted: %s", err)
}

// Diff prints a unified diff between the original and minimized
// content, in the style of `diff -u`.
func Diff(fromName, toName, before, after string) error {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		fmt.Println(dim("(no change)"))
		return nil
	}
	fmt.Print(text)
	return nil
}
