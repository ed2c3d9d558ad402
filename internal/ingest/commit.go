package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/patientload/internal/db"
	"github.com/gyeh/patientload/internal/model"
	embedsql "github.com/gyeh/patientload/internal/sql"
)

// CommitResult holds metrics from the commit phase.
type CommitResult struct {
	PatientsLoaded int64
	ApptsLoaded    int64
	Duration       time.Duration
}

// Commit loads the accumulated batch in a single transaction: optional
// delete of a force-reimported run's prior rows, COPY patients, COPY
// appointments, mark the run completed. Any failure rolls the whole batch
// back; a failed run never persists partially.
func Commit(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, batch *Batch, rowsRead int64) (*CommitResult, error) {
	start := time.Now()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit begin: %w", err)
	}
	// No-op once Commit succeeds.
	defer tx.Rollback(ctx)

	if pf.Reimport {
		tag, err := tx.Exec(ctx, embedsql.DeleteRunPatients, pf.RunID)
		if err != nil {
			return nil, fmt.Errorf("commit delete prior rows: %w", err)
		}
		log.Info().Int64("rows_deleted", tag.RowsAffected()).Msg("prior run rows deleted")
	}

	patientsLoaded, err := tx.CopyFrom(ctx,
		pgx.Identifier{"intake", "patients"},
		model.PatientColumns(),
		db.NewPatientSource(pf.RunID, batch.Patients()),
	)
	if err != nil {
		return nil, fmt.Errorf("commit copy patients: %w", err)
	}

	apptsLoaded, err := tx.CopyFrom(ctx,
		pgx.Identifier{"intake", "appointments"},
		model.AppointmentColumns(),
		db.NewAppointmentSource(pf.RunID, batch.Appointments()),
	)
	if err != nil {
		return nil, fmt.Errorf("commit copy appointments: %w", err)
	}

	if _, err := tx.Exec(ctx, embedsql.FinishRun, pf.RunID, string(model.StatusCompleted), rowsRead); err != nil {
		return nil, fmt.Errorf("commit finish run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("patients_loaded", patientsLoaded).
		Int64("appointments_loaded", apptsLoaded).
		Str("duration", dur.String()).
		Msg("commit complete")

	return &CommitResult{
		PatientsLoaded: patientsLoaded,
		ApptsLoaded:    apptsLoaded,
		Duration:       dur,
	}, nil
}
