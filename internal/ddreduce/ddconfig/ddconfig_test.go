package ddconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddreduce/internal/ddreduce/ddconfig"
)

func TestDefault(t *testing.T) {
	cfg := ddconfig.Default()
	assert.Equal(t, []string{"line", "char"}, cfg.Atoms)
	assert.Equal(t, "zeller", cfg.Split)
	assert.Equal(t, "config", cfg.Cache)
	assert.True(t, cfg.SubsetFirst)
	assert.True(t, cfg.DDStar)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	cfg, err := ddconfig.LoadYAML([]byte(`
cache: content-hash
greedy: true
proc_num: 4
`))
	require.NoError(t, err)

	assert.Equal(t, "content-hash", cfg.Cache)
	assert.True(t, cfg.Greedy)
	assert.Equal(t, 4, cfg.ProcNum)
	// untouched fields keep their defaults
	assert.Equal(t, []string{"line", "char"}, cfg.Atoms)
	assert.Equal(t, "zeller", cfg.Split)
}

func TestLoadYAMLInvalidDocument(t *testing.T) {
	_, err := ddconfig.LoadYAML([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestCacheOptionsToCacheOptions(t *testing.T) {
	opts := ddconfig.CacheOptions{CacheFail: true, EvictAfterFail: true, MeasureMemory: true}
	converted := opts.ToCacheOptions()
	assert.True(t, converted.CacheFail)
	assert.True(t, converted.EvictAfterFail)
	assert.True(t, converted.MeasureMemory)
}
