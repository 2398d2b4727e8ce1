// Package storage holds the transient state of one query cycle: the
// pending prompt on its way to the host page and the extracted timeline on
// its way to the renderer. A small SQLite-backed key-value table plays the
// role the browser extension's local storage area played.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/runnerr0/timeliner/internal/extract"
	"github.com/runnerr0/timeliner/internal/session"
)

// Store defines the query-cycle state operations.
type Store interface {
	// PutQuery stores a pending query. Fails with ErrQueryPending if one
	// is already stored; the design assumes one query in flight.
	PutQuery(ctx context.Context, q *session.PendingQuery) error
	// PeekQuery returns the pending query without consuming it. Delivery
	// reads the prompt first and deletes the query only once injection
	// succeeds.
	PeekQuery(ctx context.Context) (*session.PendingQuery, error)
	// TakeQuery returns the pending query and deletes it in the same
	// transaction, so delivery happens at most once.
	TakeQuery(ctx context.Context) (*session.PendingQuery, error)
	// PutTimeline stores extracted events and their source URL. A later
	// capture for the same query overwrites an earlier one.
	PutTimeline(ctx context.Context, events []extract.Event, sourceURL string) error
	// TakeTimeline returns the stored events plus source URL and deletes
	// them.
	TakeTimeline(ctx context.Context) ([]extract.Event, string, error)
	Close() error
}

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Prepared statements
	getValue *sql.Stmt
	putValue *sql.Stmt
	delValue *sql.Stmt
}

// NewSQLiteStore creates a SQLiteStore from an already-opened and migrated
// database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.getValue, err = s.db.Prepare(`SELECT value FROM state WHERE key = ?`)
	if err != nil {
		return err
	}

	s.putValue, err = s.db.Prepare(`
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}

	s.delValue, err = s.db.Prepare(`DELETE FROM state WHERE key = ?`)
	if err != nil {
		return err
	}

	return nil
}

// PutQuery stores the pending query and its tab identifiers.
func (s *SQLiteStore) PutQuery(ctx context.Context, q *session.PendingQuery) error {
	var existing string
	err := s.getValue.QueryRowContext(ctx, KeyQuery).Scan(&existing)
	if err == nil {
		return ErrQueryPending
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check pending query: %w", err)
	}

	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	puts := map[string]string{
		KeyQuery:       string(data),
		KeyQueryTabID:  q.QueryTabID,
		KeyAnswerTabID: q.AnswerTabID,
	}
	for key, value := range puts {
		if _, err := tx.StmtContext(ctx, s.putValue).ExecContext(ctx, key, value); err != nil {
			return fmt.Errorf("store %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// PeekQuery reads the pending query without deleting it.
func (s *SQLiteStore) PeekQuery(ctx context.Context) (*session.PendingQuery, error) {
	var data string
	err := s.getValue.QueryRowContext(ctx, KeyQuery).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNoQuery
	}
	if err != nil {
		return nil, fmt.Errorf("read query: %w", err)
	}

	var q session.PendingQuery
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("unmarshal query: %w", err)
	}
	return &q, nil
}

// HasTimeline reports whether an extracted timeline is stored.
func (s *SQLiteStore) HasTimeline(ctx context.Context) (bool, error) {
	var data string
	err := s.getValue.QueryRowContext(ctx, KeyTimeline).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read timeline: %w", err)
	}
	return true, nil
}

// TakeQuery reads and deletes the pending query atomically.
func (s *SQLiteStore) TakeQuery(ctx context.Context) (*session.PendingQuery, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var data string
	err = tx.StmtContext(ctx, s.getValue).QueryRowContext(ctx, KeyQuery).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNoQuery
	}
	if err != nil {
		return nil, fmt.Errorf("read query: %w", err)
	}

	var q session.PendingQuery
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("unmarshal query: %w", err)
	}

	// The query key is deleted immediately; its tab keys live on for the
	// capture phase and are cleared with the timeline.
	if _, err := tx.StmtContext(ctx, s.delValue).ExecContext(ctx, KeyQuery); err != nil {
		return nil, fmt.Errorf("delete query: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &q, nil
}

// PutTimeline stores the extracted events and their source URL.
func (s *SQLiteStore) PutTimeline(ctx context.Context, events []extract.Event, sourceURL string) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.StmtContext(ctx, s.putValue).ExecContext(ctx, KeyTimeline, string(data)); err != nil {
		return fmt.Errorf("store timeline: %w", err)
	}
	if _, err := tx.StmtContext(ctx, s.putValue).ExecContext(ctx, KeySourceURL, sourceURL); err != nil {
		return fmt.Errorf("store source url: %w", err)
	}

	return tx.Commit()
}

// TakeTimeline reads and deletes the stored timeline plus the leftover tab
// keys, closing out the query cycle.
func (s *SQLiteStore) TakeTimeline(ctx context.Context) ([]extract.Event, string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var data string
	err = tx.StmtContext(ctx, s.getValue).QueryRowContext(ctx, KeyTimeline).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, "", ErrNoTimeline
	}
	if err != nil {
		return nil, "", fmt.Errorf("read timeline: %w", err)
	}

	var sourceURL string
	err = tx.StmtContext(ctx, s.getValue).QueryRowContext(ctx, KeySourceURL).Scan(&sourceURL)
	if err != nil && err != sql.ErrNoRows {
		return nil, "", fmt.Errorf("read source url: %w", err)
	}

	var events []extract.Event
	if err := json.Unmarshal([]byte(data), &events); err != nil {
		return nil, "", fmt.Errorf("unmarshal timeline: %w", err)
	}

	for _, key := range []string{KeyTimeline, KeySourceURL, KeyQueryTabID, KeyAnswerTabID} {
		if _, err := tx.StmtContext(ctx, s.delValue).ExecContext(ctx, key); err != nil {
			return nil, "", fmt.Errorf("delete %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, "", err
	}
	return events, sourceURL, nil
}

// Close releases the prepared statements. The caller owns the *sql.DB.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.getValue, s.putValue, s.delValue} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}
