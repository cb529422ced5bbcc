package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ddreduce/internal/ddreduce/iterator"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 5; i++ {
		enc := iterator.Encode(i)
		assert.True(t, iterator.IsComplement(enc))
		assert.Equal(t, i, iterator.Decode(enc))
	}
}

func TestForwardBackward(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, iterator.Forward{}.Order(3))
	assert.Equal(t, []int{2, 1, 0}, iterator.Backward{}.Order(3))
}

func TestCombinedSubsetFirst(t *testing.T) {
	c := iterator.NewCombined(iterator.Forward{}, iterator.Forward{}, true)
	indices := c.Indices(2)
	assert.Equal(t, []int{0, 1, -1, -2}, indices)
}

func TestCombinedComplementFirst(t *testing.T) {
	c := iterator.NewCombined(iterator.Forward{}, iterator.Forward{}, false)
	indices := c.Indices(2)
	assert.Equal(t, []int{-1, -2, 0, 1}, indices)
}

func TestByName(t *testing.T) {
	_, ok := iterator.ByName("forward")
	assert.True(t, ok)
	_, ok = iterator.ByName("backward")
	assert.True(t, ok)
	_, ok = iterator.ByName("sideways")
	assert.False(t, ok)
}
