package dderrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/dderrors"
)

func TestReductionStoppedMessageAndUnwrap(t *testing.T) {
	cause := errors.New("deadline exceeded")
	best := config.New([]int{1, 2, 3})
	err := dderrors.NewReductionStopped(best, cause)

	assert.Contains(t, err.Error(), "3 atom")
	assert.ErrorIs(t, err, cause)
}

func TestReductionStoppedNilCause(t *testing.T) {
	err := dderrors.NewReductionStopped(config.New(nil), nil)
	assert.NotPanics(t, func() { _ = err.Error() })
}

func TestReductionException(t *testing.T) {
	cause := errors.New("exec failed")
	best := config.New([]int{1})
	err := dderrors.NewReductionException(best, cause)

	assert.Contains(t, err.Error(), "exec failed")
	assert.Contains(t, err.Error(), "1 atom")
	assert.ErrorIs(t, err, cause)
}

func TestConfigurationError(t *testing.T) {
	err := dderrors.NewConfigurationError("input", errors.New("missing file"))
	assert.Contains(t, err.Error(), "input")
	assert.Contains(t, err.Error(), "missing file")
}

func TestUnknownStrategy(t *testing.T) {
	err := dderrors.UnknownStrategy("cache", "bogus")
	assert.Contains(t, err.Error(), "cache")
	assert.Contains(t, err.Error(), `"bogus"`)
}
