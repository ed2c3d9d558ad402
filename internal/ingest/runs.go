package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/patientload/internal/model"
	embedsql "github.com/gyeh/patientload/internal/sql"
)

// registerRun inserts (or resumes) the ingest_runs row for this file's
// SHA-256. Returns alreadyLoaded=true when the file was completed in a
// prior run and force is off; reimport=true when a completed run is being
// redone and its previously-loaded rows must be deleted before the COPY.
func registerRun(ctx context.Context, pool *pgxpool.Pool, filePath, sha string, fileSize int64, force bool) (runID uuid.UUID, alreadyLoaded, reimport bool, err error) {
	newID := uuid.New()
	err = pool.QueryRow(ctx, embedsql.RegisterRun,
		newID, filepath.Base(filePath), sha, fileSize,
	).Scan(&runID)
	if err == nil {
		return runID, false, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, false, fmt.Errorf("register run: %w", err)
	}

	// ON CONFLICT DO NOTHING returned no rows: a run for this sha exists.
	var status string
	if err := pool.QueryRow(ctx, embedsql.LookupRun, sha).Scan(&runID, &status); err != nil {
		return uuid.Nil, false, false, fmt.Errorf("lookup existing run: %w", err)
	}

	completed := status == string(model.StatusCompleted)
	if completed && !force {
		return runID, true, false, nil
	}

	// Failed or interrupted runs retry without --force.
	if _, err := pool.Exec(ctx, embedsql.ResetRun, runID); err != nil {
		return uuid.Nil, false, false, fmt.Errorf("reset run: %w", err)
	}
	return runID, false, completed, nil
}

// updateRunStatus moves the run through its state machine.
func updateRunStatus(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, status model.RunStatus) error {
	_, err := pool.Exec(ctx, embedsql.UpdateRunStatus, runID, string(status))
	return err
}
