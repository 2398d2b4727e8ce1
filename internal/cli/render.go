package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/extract"
	"github.com/runnerr0/timeliner/internal/storage"
	"github.com/runnerr0/timeliner/internal/timeline"
)

// Execute implements the go-flags Commander interface for RenderCommand.
func (c *RenderCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	if c.Input != "" {
		events, err := readEventsFile(c.Input)
		if err != nil {
			return err
		}
		return c.render(cfg, events, "")
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()
	defer db.Close()

	return c.executeWithStore(store, cfg)
}

// executeWithStore renders the stored timeline (used by tests).
func (c *RenderCommand) executeWithStore(store storage.Store, cfg *config.Config) error {
	events, sourceURL, err := store.TakeTimeline(context.Background())
	if errors.Is(err, storage.ErrNoTimeline) {
		return fmt.Errorf("no stored timeline; run watch first or pass --input")
	}
	if err != nil {
		return fmt.Errorf("loading timeline: %w", err)
	}
	return c.render(cfg, events, sourceURL)
}

func (c *RenderCommand) render(cfg *config.Config, events []extract.Event, sourceURL string) error {
	output := c.Output
	if output == "" {
		output = cfg.Render.OutputFile
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := timeline.New(cfg.Render).Render(f, events, sourceURL); err != nil {
		// Leave cleanup of the partial artifact to the caller's glue; the
		// extraction state is untouched by a render failure.
		return err
	}

	fmt.Printf("Rendered %d event(s) to %s\n", len(events), output)
	return nil
}

// readEventsFile loads a JSON array of events from disk.
func readEventsFile(path string) ([]extract.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}
	var events []extract.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing events file: %w", err)
	}
	return events, nil
}
