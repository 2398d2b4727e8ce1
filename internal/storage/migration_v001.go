package storage

import "database/sql"

// migrateV001 creates the initial schema: a single key-value table holding
// the transient state of one query cycle. IF NOT EXISTS keeps it idempotent.
func migrateV001(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
