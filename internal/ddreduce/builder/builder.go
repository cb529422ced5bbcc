// Package builder defines the pure, deterministic mapping from a
// Configuration to concrete test content.
package builder

import (
	"strings"

	"ddreduce/internal/ddreduce/config"
)

// TestBuilder maps a sorted index list to the content that configuration
// represents. It must be pure: identical configurations yield identical
// content (spec §3).
type TestBuilder func(c config.Configuration) string

// Concat returns a TestBuilder that concatenates the atoms at the given
// indices, in order - the typical case described in spec §6.
func Concat(atoms []string) TestBuilder {
	return func(c config.Configuration) string {
		var b strings.Builder
		for _, idx := range c {
			if idx >= 0 && idx < len(atoms) {
				b.WriteString(atoms[idx])
			}
		}
		return b.String()
	}
}
