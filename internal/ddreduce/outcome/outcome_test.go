package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/outcome"
)

func TestStringer(t *testing.T) {
	assert.Equal(t, "PASS", outcome.Pass.String())
	assert.Equal(t, "FAIL", outcome.Fail.String())
}

func TestMaybeNoneIsUnknown(t *testing.T) {
	_, known := outcome.None.Get()
	assert.False(t, known)
	assert.False(t, outcome.None.IsFail())
	assert.False(t, outcome.None.IsPass())
}

func TestMaybeKnown(t *testing.T) {
	m := outcome.Known(outcome.Fail)
	out, known := m.Get()
	assert.True(t, known)
	assert.Equal(t, outcome.Fail, out)
	assert.True(t, m.IsFail())
	assert.False(t, m.IsPass())
}
