package splitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/splitter"
)

func TestZellerEvenSplit(t *testing.T) {
	c := config.New([]int{0, 1, 2, 3, 4, 5})
	chunks := splitter.Zeller{}.Split(c, 3)
	assert.Len(t, chunks, 3)
	assert.Equal(t, config.Configuration{0, 1}, chunks[0])
	assert.Equal(t, config.Configuration{2, 3}, chunks[1])
	assert.Equal(t, config.Configuration{4, 5}, chunks[2])
}

func TestZellerMoreChunksThanAtoms(t *testing.T) {
	c := config.New([]int{0, 1})
	chunks := splitter.Zeller{}.Split(c, 5)
	assert.Len(t, chunks, 5)
	total := 0
	for _, ch := range chunks {
		total += len(ch)
	}
	assert.Equal(t, 2, total)
}

func TestBalancedDistributesSurplus(t *testing.T) {
	c := config.New([]int{0, 1, 2, 3, 4})
	chunks := splitter.Balanced{}.Split(c, 3)
	assert.Equal(t, config.Configuration{0, 1}, chunks[0])
	assert.Equal(t, config.Configuration{2, 3}, chunks[1])
	assert.Equal(t, config.Configuration{4}, chunks[2])
}

func TestComplement(t *testing.T) {
	c := config.New([]int{0, 1, 2, 3, 4, 5})
	chunks := splitter.Zeller{}.Split(c, 3)
	comp := splitter.Complement(chunks, 1)
	assert.Equal(t, config.Configuration{0, 1, 4, 5}, comp)
}

func TestByName(t *testing.T) {
	_, ok := splitter.ByName("zeller")
	assert.True(t, ok)
	_, ok = splitter.ByName("balanced")
	assert.True(t, ok)
	_, ok = splitter.ByName("nonexistent")
	assert.False(t, ok)
}
