package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version            string `json:"version"`
	DatabasePath       string `json:"database_path"`
	PendingQueryID     string `json:"pending_query_id,omitempty"`
	HasTimeline        bool   `json:"has_timeline"`
	StabilityThreshold int    `json:"stability_threshold"`
	MaxAttempts        int    `json:"max_attempts"`
	MaxPolls           int    `json:"max_polls"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()
	defer db.Close()

	return c.executeWithStore(store, cfg, dbPath(cfg))
}

// executeWithStore runs status against a provided store (used by tests).
func (c *StatusCommand) executeWithStore(store *storage.SQLiteStore, cfg *config.Config, path string) error {
	ctx := context.Background()

	pendingID := ""
	q, err := store.PeekQuery(ctx)
	if err == nil {
		pendingID = q.ID
	} else if !errors.Is(err, storage.ErrNoQuery) {
		return fmt.Errorf("check pending query: %w", err)
	}

	hasTimeline, err := store.HasTimeline(ctx)
	if err != nil {
		return fmt.Errorf("check timeline: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := statusJSON{
			Version:            c.version,
			DatabasePath:       path,
			PendingQueryID:     pendingID,
			HasTimeline:        hasTimeline,
			StabilityThreshold: cfg.Watch.StabilityThreshold,
			MaxAttempts:        cfg.Watch.MaxAttempts,
			MaxPolls:           cfg.Watch.MaxPolls,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Timeliner Status")
	fmt.Println("================")
	fmt.Printf("Version:       %s\n", c.version)
	fmt.Printf("Database:      %s\n", path)
	if pendingID != "" {
		fmt.Printf("Pending query: %s\n", pendingID)
	} else {
		fmt.Printf("Pending query: none\n")
	}
	if hasTimeline {
		fmt.Printf("Timeline:      stored, awaiting render\n")
	} else {
		fmt.Printf("Timeline:      none\n")
	}
	fmt.Println()
	fmt.Println("Watch settings:")
	fmt.Printf("  Stability:   %d consecutive reads, %s debounce\n", cfg.Watch.StabilityThreshold, cfg.Watch.Debounce())
	fmt.Printf("  Budget:      %d attempts, %d restarts, %d polls\n", cfg.Watch.MaxAttempts, cfg.Watch.MaxRestarts, cfg.Watch.MaxPolls)

	return nil
}
