package stats_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddreduce/internal/ddreduce/events"
	"ddreduce/internal/ddreduce/stats"
)

func TestWriteFileProducesValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	doc := stats.Document{
		InputSize:  100,
		OutputSize: 12,
		AtomPasses: []stats.AtomPassDocument{
			{Name: "line", Before: 100, After: 30},
			{Name: "char", Before: 30, After: 12},
		},
		Counters:     events.Snapshot{TestsStarted: 50, TestsFinished: 50, CacheHits: 10},
		CacheBytes:   2048,
		CacheEntries: 50,
	}

	require.NoError(t, stats.WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var roundTripped stats.Document
	require.NoError(t, json.Unmarshal(data, &roundTripped))
	assert.Equal(t, doc, roundTripped)
}

func TestWriteFileOmitsZeroCacheFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	doc := stats.Document{InputSize: 10, OutputSize: 10}
	require.NoError(t, stats.WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cache_bytes")
	assert.NotContains(t, string(data), "cache_entries")
}
