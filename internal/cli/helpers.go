package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/extract"
	"github.com/runnerr0/timeliner/internal/storage"
)

// loadConfig resolves the config for a command: an explicit --config path
// must exist; otherwise the default path is created with defaults.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadOrCreate()
}

// dbPath resolves the state database location from config.
func dbPath(cfg *config.Config) string {
	dir := cfg.Storage.Path
	if len(dir) > 0 && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, cfg.Storage.SQLiteFile)
}

// openStore opens the state database, runs migrations, and returns a
// ready-to-use store and the underlying *sql.DB.
func openStore(cfg *config.Config) (*storage.SQLiteStore, *sql.DB, error) {
	path := dbPath(cfg)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode="+cfg.Storage.SQLiteJournalMode)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	runner := storage.NewMigrationRunner(db)
	if err := runner.Run(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create store: %w", err)
	}

	return store, db, nil
}

// readInput reads the whole of path, or stdin when path is empty.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

// printEvents writes events in human or JSON form.
func printEvents(events []extract.Event, sourceURL string, asJSON bool) error {
	if asJSON {
		out := struct {
			SourceURL string          `json:"source_url,omitempty"`
			Events    []extract.Event `json:"events"`
		}{SourceURL: sourceURL, Events: events}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, ev := range events {
		fmt.Printf("%-16s %s\n", ev.Date, ev.Description)
	}
	if sourceURL != "" {
		fmt.Printf("\nSource: %s\n", sourceURL)
	}
	return nil
}
