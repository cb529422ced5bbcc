// Package ddconfig loads reducer configuration: a YAML document for
// the bulk of the settings, plus a compact strategy-spec grammar for
// the one-liner overrides a user typically wants from the command
// line (e.g. "content-hash cache_fail=false evict_after_fail=true").
// Grounded on the teacher's grammar package: the same
// participle.Build[T]/lexer.MustStateful idiom, generalized from a
// smart-contract language to a tiny key=value option language.
package ddconfig

import (
	"time"

	"gopkg.in/yaml.v3"

	"ddreduce/internal/ddreduce/cache"
)

// Config is the full set of knobs spec §6 names under "Reducer
// configuration" and "Cache configuration", in their YAML-document
// shape.
type Config struct {
	// Atoms selects which atom passes to run, in order: "line", "char",
	// or both (line then char, per spec §6's driver behavior).
	Atoms []string `yaml:"atoms"`

	Split       string `yaml:"split"`  // "zeller" | "balanced"
	Subset      string `yaml:"subset"` // ordering name, e.g. "forward"
	Complement  string `yaml:"complement"`
	SubsetFirst bool   `yaml:"subset_first"`

	Cache        string       `yaml:"cache"` // "none"|"config"|"config-tuple"|"content"|"content-hash"
	CacheOptions CacheOptions `yaml:"cache_options"`

	DDStar  bool `yaml:"dd_star"`
	Greedy  bool `yaml:"greedy"`
	Retest  bool `yaml:"retest"`
	ProcNum int  `yaml:"proc_num"`

	Deadline *time.Duration `yaml:"deadline"`
	MaxTests int            `yaml:"max_tests"`

	IDPrefix []string `yaml:"id_prefix"`

	StatsPath string `yaml:"stats_path"`
}

// CacheOptions mirrors cache.Options with yaml tags; see spec §6 "Cache
// configuration".
type CacheOptions struct {
	CacheFail      bool `yaml:"cache_fail"`
	EvictAfterFail bool `yaml:"evict_after_fail"`
	MeasureMemory  bool `yaml:"measure_memory"`
}

func (o CacheOptions) ToCacheOptions() cache.Options {
	return cache.Options{
		CacheFail:      o.CacheFail,
		EvictAfterFail: o.EvictAfterFail,
		MeasureMemory:  o.MeasureMemory,
	}
}

// Default returns the conservative defaults the driver falls back to
// when no config file or strategy spec is given.
func Default() *Config {
	return &Config{
		Atoms:       []string{"line", "char"},
		Split:       "zeller",
		Subset:      "forward",
		Complement:  "forward",
		SubsetFirst: true,
		Cache:       "config",
		DDStar:      true,
		ProcNum:     0,
	}
}

// LoadYAML reads a Config document from raw YAML bytes, starting from
// Default and overlaying whatever fields are present.
func LoadYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
