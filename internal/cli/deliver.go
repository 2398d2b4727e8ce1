package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/session"
	"github.com/runnerr0/timeliner/internal/storage"
)

// promptFilename is where the scraper glue expects the injected prompt.
const promptFilename = "prompt.txt"

// Execute implements the go-flags Commander interface for DeliverCommand.
func (c *DeliverCommand) Execute(args []string) error {
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

	return c.executeWithStore(store, cfg.Session)
}

// executeWithStore runs the deliver logic against a provided store (used by tests).
func (c *DeliverCommand) executeWithStore(store storage.Store, cfg config.SessionConfig) error {
	if c.Dir == "" {
		return fmt.Errorf("--dir is required for deliver command")
	}

	ctx := context.Background()

	q, err := store.PeekQuery(ctx)
	if err != nil {
		return fmt.Errorf("no query to deliver: %w", err)
	}

	// Injection succeeds only once the host directory exists, the Go
	// stand-in for waiting out the host page's unreliable load signal.
	inject := func(prompt string) error {
		if _, err := os.Stat(c.Dir); err != nil {
			return fmt.Errorf("host directory not ready: %w", err)
		}
		return os.WriteFile(filepath.Join(c.Dir, promptFilename), []byte(prompt+"\n"), 0644)
	}

	if err := session.Deliver(ctx, q, inject, cfg); err != nil {
		// The query stays stored; delivery is reported, not retried here.
		return err
	}

	// Consume the query only after successful delivery.
	if _, err := store.TakeQuery(ctx); err != nil {
		return fmt.Errorf("clearing delivered query: %w", err)
	}

	fmt.Printf("Delivered query %s to %s\n", q.ID, filepath.Join(c.Dir, promptFilename))
	return nil
}
