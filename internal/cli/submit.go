package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/runnerr0/timeliner/internal/session"
	"github.com/runnerr0/timeliner/internal/storage"
)

// Execute implements the go-flags Commander interface for SubmitCommand.
func (c *SubmitCommand) Execute(args []string) error {
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

	return c.executeWithStore(store)
}

// executeWithStore runs the submit logic against a provided store (used by tests).
func (c *SubmitCommand) executeWithStore(store storage.Store) error {
	if c.SourceURL == "" {
		return fmt.Errorf("--source-url is required for submit command")
	}
	parsed, err := url.ParseRequestURI(c.SourceURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid source URL: %s", c.SourceURL)
	}

	// Prompt and prompt-file are mutually exclusive.
	if c.Prompt != "" && c.PromptFile != "" {
		return fmt.Errorf("--prompt and --prompt-file are mutually exclusive")
	}

	prompt := c.Prompt
	if c.PromptFile != "" {
		data, err := os.ReadFile(c.PromptFile)
		if err != nil {
			return fmt.Errorf("reading prompt file: %w", err)
		}
		prompt = string(data)
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("--prompt or --prompt-file is required for submit command")
	}

	q := session.NewPendingQuery(prompt, c.SourceURL)
	q.QueryTabID = c.QueryTab
	q.AnswerTabID = c.AnswerTab

	if err := store.PutQuery(context.Background(), q); err != nil {
		return fmt.Errorf("storing query: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"id":         q.ID,
			"source_url": q.SourceURL,
			"created_at": q.CreatedAt.Format(time.RFC3339),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Queued query %s\n", q.ID)
	fmt.Printf("  Source: %s\n", q.SourceURL)
	return nil
}
