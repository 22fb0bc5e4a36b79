package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zerobacojp/ocr-normalizer/internal/common"
	"github.com/zerobacojp/ocr-normalizer/internal/entity"
)

// ParseRun records one document parse so past runs stay queryable for
// review.
type ParseRun struct {
	ID         uuid.UUID
	SourcePath string
	StartedAt  time.Time
	FinishedAt time.Time
	EntryCount int
}

type ParseRunRepository interface {
	SaveRun(ctx context.Context, run ParseRun, entries []*entity.RosterEntry) error
	GetRun(ctx context.Context, id uuid.UUID) (*ParseRun, error)
	ListEntries(ctx context.Context, runID uuid.UUID) ([]*entity.RosterEntry, error)
}

type parseRunRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewParseRunRepository(db *sql.DB, logger *slog.Logger) ParseRunRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &parseRunRepository{db: db, logger: logger}
}

func (r *parseRunRepository) SaveRun(ctx context.Context, run ParseRun, entries []*entity.RosterEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO parse_runs (id, source_path, started_at, finished_at, entry_count)
		 VALUES (?, ?, ?, ?, ?)`,
		run.ID.String(), run.SourcePath, run.StartedAt.Unix(), run.FinishedAt.Unix(), run.EntryCount,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, e := range entries {
		committees, err := json.Marshal(e.Committees)
		if err != nil {
			return fmt.Errorf("marshal committees: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO roster_entries (id, run_id, position, group_id, name, address, tel, email, committees, remarks)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), run.ID.String(), i,
			e.GroupID, e.Name, e.Address, e.Tel, e.Email, string(committees), e.Remarks,
		); err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.logger.Info("archived parse run", "run_id", run.ID, "entries", len(entries))
	return nil
}

func (r *parseRunRepository) GetRun(ctx context.Context, id uuid.UUID) (*ParseRun, error) {
	var (
		run      ParseRun
		started  int64
		finished int64
		rawID    string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_path, started_at, finished_at, entry_count FROM parse_runs WHERE id = ?`,
		id.String(),
	).Scan(&rawID, &run.SourcePath, &started, &finished, &run.EntryCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.WrapError(common.ErrNotFound, fmt.Sprintf("parse run %s", id))
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	run.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse run id: %w", err)
	}
	run.StartedAt = time.Unix(started, 0).UTC()
	run.FinishedAt = time.Unix(finished, 0).UTC()
	return &run, nil
}

func (r *parseRunRepository) ListEntries(ctx context.Context, runID uuid.UUID) ([]*entity.RosterEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT group_id, name, address, tel, email, committees, remarks
		 FROM roster_entries WHERE run_id = ? ORDER BY position`,
		runID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*entity.RosterEntry
	for rows.Next() {
		var (
			e          entity.RosterEntry
			committees string
		)
		if err := rows.Scan(&e.GroupID, &e.Name, &e.Address, &e.Tel, &e.Email, &committees, &e.Remarks); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(committees), &e.Committees); err != nil {
			return nil, fmt.Errorf("unmarshal committees: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
