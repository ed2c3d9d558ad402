package ingest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/patientload/internal/config"
	"github.com/gyeh/patientload/internal/csvread"
	"github.com/gyeh/patientload/internal/normalize"
)

// CollectResult holds the accumulated batch and metrics from the collect
// phase.
type CollectResult struct {
	Batch            *Batch
	RowsRead         int64
	PatientsAccepted int64
	PatientsRejected int64
	DuplicatesFolded int64
	ApptsAccepted    int64
	ApptsDropped     int64
	Duration         time.Duration
}

// Collect streams the file strictly in row order (first-wins dedup depends
// on it), shaping, validating, deduplicating, and associating every row
// into an in-memory batch. Row rejections are logged and counted, never
// fatal. Nothing is written to the database here, so aborting mid-stream is
// always safe.
func Collect(ctx context.Context, log zerolog.Logger, cfg *config.Config, filePath string) (*CollectResult, error) {
	start := time.Now()

	reader, err := csvread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("collect open: %w", err)
	}
	defer reader.Close()

	opts := normalize.PatientOptions{RequireLastName: cfg.RequireLastName}
	res := &CollectResult{Batch: NewBatch()}
	var rowNum int64

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("collect at row %d: %w", rowNum+1, readErr)
		}
		rowNum++
		res.RowsRead++

		patient, rej := normalize.ToPatientCandidate(row, rowNum, opts)
		if rej != nil {
			// A rejected patient row contributes no appointment either.
			res.PatientsRejected++
			log.Warn().
				Int64("row", rej.Row).
				Str("field", rej.Field).
				Str("reason", rej.Reason).
				Msg("patient row rejected")
			continue
		}

		owner, created := res.Batch.AddPatient(patient)
		if created {
			res.PatientsAccepted++
		} else {
			res.DuplicatesFolded++
		}

		appt := normalize.ToAppointmentCandidate(row, rowNum)
		if appt.Empty() {
			res.ApptsDropped++
			continue
		}
		res.Batch.AddAppointment(owner, appt)
		res.ApptsAccepted++
	}

	res.Duration = time.Since(start)
	log.Info().
		Int64("rows_read", res.RowsRead).
		Int64("patients_accepted", res.PatientsAccepted).
		Int64("patients_rejected", res.PatientsRejected).
		Int64("duplicates_folded", res.DuplicatesFolded).
		Int64("appts_accepted", res.ApptsAccepted).
		Int64("appts_dropped", res.ApptsDropped).
		Str("duration", res.Duration.String()).
		Msg("collect complete")

	return res, nil
}
