package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/extract"
	"github.com/runnerr0/timeliner/internal/sanitize"
	"github.com/runnerr0/timeliner/internal/session"
	"github.com/runnerr0/timeliner/internal/storage"
	"github.com/runnerr0/timeliner/internal/timeline"
	"github.com/runnerr0/timeliner/internal/watch"
)

// Execute implements the go-flags Commander interface for WatchCommand.
func (c *WatchCommand) Execute(args []string) error {
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

	return c.executeWithStore(context.Background(), store, cfg)
}

// executeWithStore runs the watch pipeline against a provided store (used by tests).
func (c *WatchCommand) executeWithStore(ctx context.Context, store storage.Store, cfg *config.Config) error {
	if c.Dir == "" {
		return fmt.Errorf("--dir is required for watch command")
	}

	// The watched answer belongs to whichever query was last delivered.
	// A fresh session object scopes this cycle's debounce state.
	sess := session.NewSession(session.NewPendingQuery("", c.SourceURL), cfg.Session)

	src := watch.NewFileSource(c.Dir, cfg.Watch.Selectors)
	gate := sanitize.New(cfg.Sanitize)
	watcher := watch.New(cfg.Watch, src, gate)

	if c.globals != nil && c.globals.Verbose {
		fmt.Fprintf(os.Stderr, "watching %s (threshold %d, debounce %s)\n",
			c.Dir, cfg.Watch.StabilityThreshold, cfg.Watch.Debounce())
	}

	res, err := watcher.Wait(ctx)
	if errors.Is(err, watch.ErrNotFound) {
		// Terminal capture failure: a user-visible notification, then the
		// explicit not-found result.
		fmt.Fprintln(os.Stderr, cfg.Sanitize.NotFoundSentinel)
		return err
	}
	if err != nil {
		return err
	}

	// Second line of defense against re-entrant notifications.
	if !sess.Accept(res.Text) {
		return nil
	}

	events := extract.New(cfg.Extract).Extract(res.Text)

	if err := store.PutTimeline(ctx, events, c.SourceURL); err != nil {
		return fmt.Errorf("storing timeline: %w", err)
	}

	if c.Render != "" {
		if err := c.renderTo(cfg, events); err != nil {
			return err
		}
	}

	if c.globals != nil && c.globals.Verbose {
		mode := "stability"
		if res.ViaPolling {
			mode = "polling"
		}
		fmt.Fprintf(os.Stderr, "captured via %s after %d stable read(s)\n", mode, res.StableReads)
	}

	asJSON := c.globals != nil && c.globals.JSON
	return printEvents(events, c.SourceURL, asJSON)
}

func (c *WatchCommand) renderTo(cfg *config.Config, events []extract.Event) error {
	f, err := os.Create(c.Render)
	if err != nil {
		return fmt.Errorf("creating render output: %w", err)
	}
	defer f.Close()

	if err := timeline.New(cfg.Render).Render(f, events, c.SourceURL); err != nil {
		return err
	}
	return nil
}
