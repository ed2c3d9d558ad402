package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/patientload/internal/config"
	"github.com/gyeh/patientload/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full ingest pipeline: preflight → collect → commit.
// Rows are rejected individually during collect; the commit itself is
// all-or-nothing.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Str("run_id", pf.RunID.String()).
			Str("sha256", pf.FileSHA256).
			Msg("file already ingested, skipping (use --force to re-ingest)")
		return &model.RunSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			RunID:         pf.RunID.String(),
			AlreadyLoaded: true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Collect (pure in-memory; no writes yet)
	log.Info().Msg("starting collect")
	collect, err := Collect(ctx, log, cfg, pf.FilePath)
	if err != nil {
		_ = updateRunStatus(ctx, pool, pf.RunID, model.StatusFailed)
		return nil, &PipelineError{Phase: "collect", Err: err}
	}

	// Phase 3: Commit (single transaction)
	log.Info().Msg("starting commit")
	if err := updateRunStatus(ctx, pool, pf.RunID, model.StatusCommitting); err != nil {
		_ = updateRunStatus(ctx, pool, pf.RunID, model.StatusFailed)
		return nil, &PipelineError{Phase: "commit", Err: err}
	}

	commit, err := Commit(ctx, pool, log, pf, collect.Batch, collect.RowsRead)
	if err != nil {
		_ = updateRunStatus(ctx, pool, pf.RunID, model.StatusFailed)
		return nil, &PipelineError{Phase: "commit", Err: err}
	}

	summary := &model.RunSummary{
		FilePath:         pf.FilePath,
		FileSHA256:       pf.FileSHA256,
		RunID:            pf.RunID.String(),
		RowsRead:         collect.RowsRead,
		PatientsAccepted: collect.PatientsAccepted,
		PatientsRejected: collect.PatientsRejected,
		DuplicatesFolded: collect.DuplicatesFolded,
		ApptsAccepted:    collect.ApptsAccepted,
		ApptsDropped:     collect.ApptsDropped,
		DurationCollect:  collect.Duration,
		DurationCommit:   commit.Duration,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("patients_accepted", summary.PatientsAccepted).
		Int64("patients_rejected", summary.PatientsRejected).
		Int64("appts_accepted", summary.ApptsAccepted).
		Int64("appts_dropped", summary.ApptsDropped).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return summary, nil
}
