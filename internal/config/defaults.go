package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			MinSentenceLen:   25,
			MaxDatedEvents:   5,
			MaxTotalEvents:   7,
			MinYear:          1000,
			NoiseYears:       DefaultNoiseYears(),
			KeywordWeight:    20,
			FallbackMaxChars: 500,
			SalienceKeywords: DefaultSalienceKeywords(),
			SentenceDenylist: DefaultSentenceDenylist(),
		},
		Sanitize: SanitizeConfig{
			MinChars:         150,
			MinWords:         50,
			NotFoundSentinel: "Summary not found",
			ChromeMarkers:    DefaultChromeMarkers(),
		},
		Watch: WatchConfig{
			Selectors:          []string{"response-content-markdown", "message-bubble"},
			DebounceMs:         500,
			StabilityThreshold: 6,
			MaxAttempts:        30,
			MaxRestarts:        2,
			PollIntervalMs:     2000,
			MaxPolls:           30,
		},
		Session: SessionConfig{
			DuplicateWindowMs:  2000,
			DeliverRetryMs:     500,
			DeliverMaxAttempts: 20,
		},
		Storage: StorageConfig{
			Path:              "~/.config/timeliner",
			SQLiteFile:        "timeliner.db",
			SQLiteJournalMode: "wal",
		},
		Render: RenderConfig{
			Title:      "Timeline",
			OutputFile: "timeline-infographic.html",
		},
	}
}
