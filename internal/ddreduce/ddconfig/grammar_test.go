package ddconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddreduce/internal/ddreduce/ddconfig"
)

func TestParseStrategySpecBareStrategy(t *testing.T) {
	cfg := ddconfig.Default()
	require.NoError(t, ddconfig.ParseStrategySpec(cfg, "content-hash"))
	assert.Equal(t, "content-hash", cfg.Cache)
}

func TestParseStrategySpecWithOptions(t *testing.T) {
	cfg := ddconfig.Default()
	err := ddconfig.ParseStrategySpec(cfg, "config-tuple cache_fail=false evict_after_fail=true proc_num=8")
	require.NoError(t, err)

	assert.Equal(t, "config-tuple", cfg.Cache)
	assert.False(t, cfg.CacheOptions.CacheFail)
	assert.True(t, cfg.CacheOptions.EvictAfterFail)
	assert.Equal(t, 8, cfg.ProcNum)
}

func TestParseStrategySpecNormalizesKeyCasing(t *testing.T) {
	cfg := ddconfig.Default()
	err := ddconfig.ParseStrategySpec(cfg, "content cache-fail=true measureMemory=yes")
	require.NoError(t, err)

	assert.True(t, cfg.CacheOptions.CacheFail)
	assert.True(t, cfg.CacheOptions.MeasureMemory)
}

func TestParseStrategySpecUnknownOptionIgnored(t *testing.T) {
	cfg := ddconfig.Default()
	err := ddconfig.ParseStrategySpec(cfg, "none bogus_option=true")
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Cache)
}

func TestParseStrategySpecInvalidSyntax(t *testing.T) {
	cfg := ddconfig.Default()
	err := ddconfig.ParseStrategySpec(cfg, "content cache_fail")
	assert.Error(t, err)
}
