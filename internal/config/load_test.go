package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "testdata/refdata", cfg.RefData.Dir)
	assert.Equal(t, 8, cfg.RefData.MaxTokens)
	assert.Equal(t, 80, cfg.Thresholds.SpellingPairScore)
	assert.Equal(t, 3, cfg.Thresholds.SpellingPairCount)
	assert.Equal(t, 80, cfg.Thresholds.PronounceLowK2)
	assert.Equal(t, 75, cfg.Thresholds.PronounceLowKGt2)
	assert.Equal(t, 1000, cfg.Thresholds.PhoneticCacheSize)
	assert.Equal(t, "everforest", cfg.Log.Theme)
}

func TestLoadIsCached(t *testing.T) {
	Reset()
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "namematch.toml")
	contents := `
[refdata]
dir = "/srv/namematch/refdata"

[thresholds]
spelling_pair_count = 4
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/namematch/refdata", cfg.RefData.Dir)
	assert.Equal(t, 4, cfg.Thresholds.SpellingPairCount)
	// Untouched defaults still apply.
	assert.Equal(t, 80, cfg.Thresholds.SpellingPairScore)
}

func TestResetClearsCache(t *testing.T) {
	Reset()
	first, err := Load()
	require.NoError(t, err)

	Reset()
	second, err := Load()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}
