// Package dderrors implements the reducer's error taxonomy (spec §7):
// reduction-stopped and reduction-exception carry the best-known
// failing configuration; configuration errors are surfaced at startup.
// Modeled on internal/errors/codes.go's coded-error constructors, built
// on github.com/pkg/errors for stack-carrying wraps.
package dderrors

import (
	"fmt"

	"github.com/pkg/errors"

	"ddreduce/internal/ddreduce/config"
)

// ReductionStopped signals the stop predicate tripped. The driver
// treats this as clean termination.
type ReductionStopped struct {
	Best config.Configuration
	err  error
}

func (e *ReductionStopped) Error() string {
	return fmt.Sprintf("reduction stopped: best known configuration has %d atom(s)", len(e.Best))
}

func (e *ReductionStopped) Unwrap() error { return e.err }

// NewReductionStopped wraps the triggering cause (if any) with the
// best-known failing configuration found so far.
func NewReductionStopped(best config.Configuration, cause error) *ReductionStopped {
	return &ReductionStopped{Best: best, err: errors.WithStack(cause)}
}

// ReductionException is any other early termination: a tester internal
// error, or I/O failure during test setup. The driver treats this as an
// abnormal exit, but still writes the best-known output.
type ReductionException struct {
	Best config.Configuration
	err  error
}

func (e *ReductionException) Error() string {
	return fmt.Sprintf("reduction aborted: %v (best known configuration has %d atom(s))", e.err, len(e.Best))
}

func (e *ReductionException) Unwrap() error { return e.err }

// NewReductionException wraps cause with the best-known failing
// configuration found before the exception propagated.
func NewReductionException(best config.Configuration, cause error) *ReductionException {
	return &ReductionException{Best: best, err: errors.WithStack(cause)}
}

// ConfigurationError reports invalid arguments discovered at startup:
// missing input, unknown encoding, unknown strategy name, a
// non-executable tester. Never raised mid-reduction.
type ConfigurationError struct {
	Field string
	err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %v", e.Field, e.err)
}

func (e *ConfigurationError) Unwrap() error { return e.err }

// NewConfigurationError reports that field was invalid, wrapping cause
// with a stack trace for diagnostics.
func NewConfigurationError(field string, cause error) *ConfigurationError {
	return &ConfigurationError{Field: field, err: errors.WithStack(cause)}
}

// UnknownStrategy is a convenience constructor for the common
// configuration error of naming an unregistered splitter, iterator, or
// cache strategy.
func UnknownStrategy(kind, name string) *ConfigurationError {
	return NewConfigurationError(kind, errors.Errorf("unknown strategy %q", name))
}
