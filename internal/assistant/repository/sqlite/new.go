// Package sqlite persists command history and user settings in an embedded
// SQLite database. The driver is pure Go, so the binary stays cgo-free.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"voice-assistant-backend/internal/assistant/repository"
	"voice-assistant-backend/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS command_history (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   TEXT NOT NULL,
	command   TEXT NOT NULL,
	result    TEXT,
	timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_command_history_user
	ON command_history (user_id, timestamp DESC);

CREATE TABLE IF NOT EXISTS settings (
	user_id     TEXT PRIMARY KEY,
	voice       TEXT NOT NULL,
	voice_speed INTEGER NOT NULL,
	theme       TEXT NOT NULL
);
`

// OpenDB opens (or creates) the database at path and ensures the schema.
// The caller owns the returned handle.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}
	return db, nil
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the assistant domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("assistant/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("assistant/repository/sqlite.%s", method)
}
