package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the sqlite archive at path and ensures the
// schema exists. Use ":memory:" for an ephemeral database.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("opening archive database", "path", path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows a single writer, and a ":memory:" database exists per
	// connection; one pooled conn keeps both correct.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS parse_runs (
	id          TEXT PRIMARY KEY,
	source_path TEXT NOT NULL,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL,
	entry_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS roster_entries (
	id         TEXT PRIMARY KEY,
	run_id     TEXT NOT NULL REFERENCES parse_runs(id),
	position   INTEGER NOT NULL,
	group_id   TEXT NOT NULL,
	name       TEXT NOT NULL,
	address    TEXT NOT NULL,
	tel        TEXT NOT NULL,
	email      TEXT NOT NULL,
	committees TEXT NOT NULL,
	remarks    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_roster_entries_run ON roster_entries(run_id, position);
`
