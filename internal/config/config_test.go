package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rankvote/internal/config"
	"github.com/katalvlaran/rankvote/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile stores content in a temp file and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rankvote.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestDefault_MatchesIngestDefaults keeps CLI and adapter defaults aligned.
func TestDefault_MatchesIngestDefaults(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ingest.DefaultOptions(), cfg.IngestOptions())
	assert.True(t, cfg.Color)
}

// TestLoad_OverridesDefaults reads a partial file and keeps unspecified defaults.
func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "start: 2\nlen: 4\nraw: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Start)
	assert.Equal(t, 4, cfg.Len)
	assert.Equal(t, 1, cfg.IndexedAt, "unset key keeps its default")
	assert.True(t, cfg.Raw)
}

// TestLoad_EmptyFile yields the defaults.
func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_Errors covers missing files, unknown keys and failed validation.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrRead)

	_, err = config.Load(writeFile(t, "strat: 2\n"))
	assert.ErrorIs(t, err, config.ErrRead, "misspelt key must be rejected")

	_, err = config.Load(writeFile(t, "indexed-at: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestValidate_ReportsEveryField lists all violations in one message.
func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := config.Default()
	cfg.Start = -1
	cfg.Len = -3

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "Start must be gte 0 (got -1)")
	assert.Contains(t, err.Error(), "Len must be gte 0 (got -3)")
}
