package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 25, cfg.Extract.MinSentenceLen)
	assert.Equal(t, 5, cfg.Extract.MaxDatedEvents)
	assert.Equal(t, 7, cfg.Extract.MaxTotalEvents)
	assert.Equal(t, 1000, cfg.Extract.MinYear)
	assert.Equal(t, 20, cfg.Extract.KeywordWeight)
	assert.Equal(t, 500, cfg.Extract.FallbackMaxChars)
	assert.NotEmpty(t, cfg.Extract.SalienceKeywords)
	assert.NotEmpty(t, cfg.Extract.SentenceDenylist)

	assert.Equal(t, 150, cfg.Sanitize.MinChars)
	assert.Equal(t, 50, cfg.Sanitize.MinWords)
	assert.Equal(t, "Summary not found", cfg.Sanitize.NotFoundSentinel)

	assert.Equal(t, 500, cfg.Watch.DebounceMs)
	assert.Equal(t, 6, cfg.Watch.StabilityThreshold)
	assert.Equal(t, 30, cfg.Watch.MaxAttempts)
	assert.Equal(t, 2, cfg.Watch.MaxRestarts)
	assert.Equal(t, 2000, cfg.Watch.PollIntervalMs)
	assert.Equal(t, 30, cfg.Watch.MaxPolls)

	assert.Equal(t, 2000, cfg.Session.DuplicateWindowMs)
	assert.Equal(t, 500, cfg.Session.DeliverRetryMs)
	assert.Equal(t, 20, cfg.Session.DeliverMaxAttempts)

	assert.Equal(t, "~/.config/timeliner", cfg.Storage.Path)
	assert.Equal(t, "timeliner.db", cfg.Storage.SQLiteFile)
	assert.Equal(t, "wal", cfg.Storage.SQLiteJournalMode)
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce())
	assert.Equal(t, 2*time.Second, cfg.Watch.PollInterval())
	assert.Equal(t, 2*time.Second, cfg.Session.DuplicateWindow())
	assert.Equal(t, 500*time.Millisecond, cfg.Session.DeliverRetry())
}

func TestLexiconsArePopulated(t *testing.T) {
	markers := DefaultChromeMarkers()
	assert.Greater(t, len(markers), 10)
	assert.Contains(t, markers, "Ask anything")
	assert.Contains(t, markers, "hours ago")

	keywords := DefaultSalienceKeywords()
	assert.Contains(t, keywords, "culture")
	assert.Contains(t, keywords, "cuisine")
	assert.Contains(t, keywords, "identity")

	assert.Contains(t, DefaultNoiseYears(), 2024)
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
extract:
  min_sentence_len: 30
  max_total_events: 9
watch:
  stability_threshold: 3
  poll_interval_ms: 250
sanitize:
  min_chars: 80
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 30, cfg.Extract.MinSentenceLen)
	assert.Equal(t, 9, cfg.Extract.MaxTotalEvents)
	assert.Equal(t, 3, cfg.Watch.StabilityThreshold)
	assert.Equal(t, 250, cfg.Watch.PollIntervalMs)
	assert.Equal(t, 80, cfg.Sanitize.MinChars)

	// Non-overridden values remain defaults
	assert.Equal(t, 5, cfg.Extract.MaxDatedEvents)
	assert.Equal(t, 500, cfg.Watch.DebounceMs)
	assert.Equal(t, "Summary not found", cfg.Sanitize.NotFoundSentinel)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	err := os.WriteFile(cfgPath, []byte(":::not valid yaml{{{"), 0644)
	require.NoError(t, err)

	_, err = Load(cfgPath)
	assert.Error(t, err)
}

func TestLoadNonExistentFileReturnsError(t *testing.T) {
	_, err := Load("/tmp/nonexistent_path_12345/config.yaml")
	assert.Error(t, err)
}

func TestLoadOrCreateCreatesDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "deep", "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Extract.MinSentenceLen)
	assert.Equal(t, 6, cfg.Watch.StabilityThreshold)

	// File should now exist on disk
	_, statErr := os.Stat(cfgPath)
	assert.NoError(t, statErr)

	// Loading it back should round-trip the defaults
	reloaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Extract.MaxTotalEvents, reloaded.Extract.MaxTotalEvents)
	assert.Equal(t, cfg.Watch.StabilityThreshold, reloaded.Watch.StabilityThreshold)
}
