package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/config"
)

func TestNewSortsAndDedups(t *testing.T) {
	c := config.New([]int{3, 1, 2, 1, 3})
	assert.Equal(t, config.Configuration{1, 2, 3}, c)
}

func TestFull(t *testing.T) {
	assert.Equal(t, config.Configuration{0, 1, 2, 3}, config.Full(4))
	assert.Equal(t, config.Configuration{}, config.Full(0))
}

func TestEqual(t *testing.T) {
	assert.True(t, config.New([]int{1, 2}).Equal(config.New([]int{1, 2})))
	assert.False(t, config.New([]int{1, 2}).Equal(config.New([]int{1, 3})))
	assert.False(t, config.New([]int{1}).Equal(config.New([]int{1, 2})))
}

func TestContains(t *testing.T) {
	c := config.New([]int{1, 3, 5})
	assert.True(t, c.Contains(3))
	assert.False(t, c.Contains(4))
}

func TestUnion(t *testing.T) {
	a := config.New([]int{1, 3})
	b := config.New([]int{2, 3, 4})
	assert.Equal(t, config.Configuration{1, 2, 3, 4}, a.Union(b))
}

func TestSubtract(t *testing.T) {
	a := config.New([]int{1, 2, 3, 4})
	b := config.New([]int{2, 4})
	assert.Equal(t, config.Configuration{1, 3}, a.Subtract(b))
}

func TestClone(t *testing.T) {
	a := config.New([]int{1, 2})
	b := a.Clone()
	b[0] = 99
	assert.Equal(t, 1, a[0])
}
