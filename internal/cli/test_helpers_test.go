package cli

import (
	"bytes"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/storage"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// testStore creates a temporary SQLite database with migrations applied.
func testStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	require.NoError(t, err)

	runner := storage.NewMigrationRunner(db)
	require.NoError(t, runner.Run())

	store, err := storage.NewSQLiteStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
		db.Close()
	})
	return store
}

// testConfig returns defaults with watch budgets shrunk for fast tests.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Watch.DebounceMs = 5
	cfg.Watch.StabilityThreshold = 2
	cfg.Watch.MaxAttempts = 20
	cfg.Watch.MaxRestarts = 0
	cfg.Watch.PollIntervalMs = 5
	cfg.Watch.MaxPolls = 3
	cfg.Session.DeliverRetryMs = 1
	cfg.Session.DeliverMaxAttempts = 3
	return cfg
}
