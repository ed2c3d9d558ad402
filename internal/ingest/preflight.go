package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/patientload/internal/csvread"
	"github.com/gyeh/patientload/internal/normalize"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// RunID identifies this ingest run; reused when a prior run for the
	// same file is being retried or force-reimported.
	RunID uuid.UUID
	// AlreadyLoaded is true when the file's sha256 was completed by a
	// prior run and force mode is off, signaling the pipeline can skip.
	AlreadyLoaded bool
	// Reimport is true when a completed run is being redone under --force;
	// the commit phase deletes its prior rows first.
	Reimport bool
}

// Preflight stats and hashes the file, validates the CSV header against the
// fixed layout, and registers the run. A missing file surfaces as
// csvread.ErrNotFound so callers can report it as an outcome rather than
// crash.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, force bool) (*PreflightResult, error) {
	start := time.Now()

	stat, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", csvread.ErrNotFound, filePath)
		}
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	// Open just far enough to validate the header layout.
	reader, err := csvread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	reader.Close()

	runID, alreadyLoaded, reimport, err := registerRun(ctx, pool, filePath, sha, stat.Size(), force)
	if err != nil {
		return nil, fmt.Errorf("preflight register run: %w", err)
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Str("run_id", runID.String()).
		Bool("already_loaded", alreadyLoaded).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		RunID:         runID,
		AlreadyLoaded: alreadyLoaded,
		Reimport:      reimport,
	}, nil
}
