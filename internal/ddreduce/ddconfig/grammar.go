package ddconfig

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/iancoleman/strcase"
)

// specLexer tokenizes the compact strategy-spec language: a strategy
// name followed by zero or more key=value options, e.g.
// "content-hash cache_fail=false evict_after_fail=true".
var specLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_-]*`, nil},
		{"Number", `[0-9]+`, nil},
		{"Equals", `=`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

// specGrammar is the participle AST for one strategy-spec line.
type specGrammar struct {
	Strategy string        `@Ident`
	Options  []*specOption `@@*`
}

type specOption struct {
	Key   string `@Ident "="`
	Value string `@(Ident | Number)`
}

var specParser = participle.MustBuild[specGrammar](
	participle.Lexer(specLexer),
	participle.Elide("Whitespace"),
)

// ParseStrategySpec parses a compact strategy-spec line and applies its
// overrides to cfg's cache strategy and options, normalizing keys via
// strcase the same way a YAML/env key would be normalized before
// lookup (so "CacheFail", "cache-fail" and "cache_fail" are all
// accepted).
func ParseStrategySpec(cfg *Config, spec string) error {
	parsed, err := specParser.ParseString("", spec)
	if err != nil {
		return err
	}

	cfg.Cache = parsed.Strategy
	for _, opt := range parsed.Options {
		applyOption(cfg, opt.Key, opt.Value)
	}
	return nil
}

func applyOption(cfg *Config, key, value string) {
	normalized := normalizeKey(key)
	truthy := value == "true" || value == "1" || value == "yes"

	switch normalized {
	case "cache_fail":
		cfg.CacheOptions.CacheFail = truthy
	case "evict_after_fail":
		cfg.CacheOptions.EvictAfterFail = truthy
	case "measure_memory":
		cfg.CacheOptions.MeasureMemory = truthy
	case "dd_star":
		cfg.DDStar = truthy
	case "greedy":
		cfg.Greedy = truthy
	case "retest":
		cfg.Retest = truthy
	case "proc_num":
		cfg.ProcNum = atoiOrZero(value)
	case "max_tests":
		cfg.MaxTests = atoiOrZero(value)
	case "subset_first":
		cfg.SubsetFirst = truthy
	}
}

// normalizeKey accepts CacheFail, cache-fail, or cache_fail alike,
// normalizing each to the snake_case form applyOption switches on.
func normalizeKey(key string) string {
	return strcase.ToSnake(strings.ReplaceAll(key, "-", "_"))
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
