// Package stats defines the JSON statistics document the driver
// optionally writes at the end of a run, populated from
// events.StatsCollector.Snapshot(). Grounded on internal/lsp/handler.go's
// use of encoding/json.MarshalIndent for structured diagnostic output.
package stats

import (
	"encoding/json"
	"os"

	"ddreduce/internal/ddreduce/events"
)

// Document is the top-level shape written to the stats file.
type Document struct {
	InputSize    int                `json:"input_size"`
	OutputSize   int                `json:"output_size"`
	AtomPasses   []AtomPassDocument `json:"atom_passes"`
	Counters     events.Snapshot    `json:"counters"`
	CacheBytes   int                `json:"cache_bytes,omitempty"`
	CacheEntries int                `json:"cache_entries,omitempty"`
}

// AtomPassDocument records one atom pass's before/after sizes.
type AtomPassDocument struct {
	Name   string `json:"name"`
	Before int    `json:"before"`
	After  int    `json:"after"`
}

// WriteFile marshals doc as indented JSON to path.
func WriteFile(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
