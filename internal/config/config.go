package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/timeliner/config.yaml"

// Config holds all Timeliner configuration.
type Config struct {
	Extract  ExtractConfig  `yaml:"extract"`
	Sanitize SanitizeConfig `yaml:"sanitize"`
	Watch    WatchConfig    `yaml:"watch"`
	Session  SessionConfig  `yaml:"session"`
	Storage  StorageConfig  `yaml:"storage"`
	Render   RenderConfig   `yaml:"render"`
}

// ExtractConfig governs sentence segmentation, date recognition, and event
// selection. The numeric cutoffs are heuristics tuned against one host chat
// UI's observed output; expect to retune them when the target UI changes.
type ExtractConfig struct {
	MinSentenceLen   int      `yaml:"min_sentence_len"`
	MaxDatedEvents   int      `yaml:"max_dated_events"`
	MaxTotalEvents   int      `yaml:"max_total_events"`
	MinYear          int      `yaml:"min_year"`
	NoiseYears       []int    `yaml:"noise_years"`
	KeywordWeight    int      `yaml:"keyword_weight"`
	FallbackMaxChars int      `yaml:"fallback_max_chars"`
	SalienceKeywords []string `yaml:"salience_keywords"`
	SentenceDenylist []string `yaml:"sentence_denylist"`
}

// SanitizeConfig governs the acceptability gate between capture and
// extraction.
type SanitizeConfig struct {
	MinChars         int      `yaml:"min_chars"`
	MinWords         int      `yaml:"min_words"`
	NotFoundSentinel string   `yaml:"not_found_sentinel"`
	ChromeMarkers    []string `yaml:"chrome_markers"`
}

// WatchConfig governs the answer-ready detector: how long a candidate must
// stay unchanged before it counts as complete, and how hard to keep trying.
type WatchConfig struct {
	Selectors          []string `yaml:"selectors"`
	DebounceMs         int      `yaml:"debounce_ms"`
	StabilityThreshold int      `yaml:"stability_threshold"`
	MaxAttempts        int      `yaml:"max_attempts"`
	MaxRestarts        int      `yaml:"max_restarts"`
	PollIntervalMs     int      `yaml:"poll_interval_ms"`
	MaxPolls           int      `yaml:"max_polls"`
}

// Debounce returns the quiet period as a time.Duration.
func (c WatchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// PollInterval returns the polling cadence as a time.Duration.
func (c WatchConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// SessionConfig governs per-query duplicate coalescing and prompt delivery
// retries.
type SessionConfig struct {
	DuplicateWindowMs  int `yaml:"duplicate_window_ms"`
	DeliverRetryMs     int `yaml:"deliver_retry_ms"`
	DeliverMaxAttempts int `yaml:"deliver_max_attempts"`
}

// DuplicateWindow returns the coalescing window as a time.Duration.
func (c SessionConfig) DuplicateWindow() time.Duration {
	return time.Duration(c.DuplicateWindowMs) * time.Millisecond
}

// DeliverRetry returns the delivery retry interval as a time.Duration.
func (c SessionConfig) DeliverRetry() time.Duration {
	return time.Duration(c.DeliverRetryMs) * time.Millisecond
}

// StorageConfig locates the query-cycle state database.
type StorageConfig struct {
	Path              string `yaml:"path"`
	SQLiteFile        string `yaml:"sqlite_file"`
	SQLiteJournalMode string `yaml:"sqlite_journal_mode"`
}

// RenderConfig governs the timeline artifact.
type RenderConfig struct {
	Title      string `yaml:"title"`
	OutputFile string `yaml:"output_file"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}
