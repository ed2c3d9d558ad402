package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/patientload/internal/csvread"
	"github.com/gyeh/patientload/internal/db"
	"github.com/gyeh/patientload/internal/exitcode"
	"github.com/gyeh/patientload/internal/ingest"
	"github.com/gyeh/patientload/internal/logging"
)

var configFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a patient/appointment CSV file into the database",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to CSV file (required)")
	f.StringVar(&configFile, "config", "", "Path to YAML config file")
	f.BoolVar(&cfg.Force, "force", false, "Re-ingest even if file SHA already completed")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg)
	if err != nil {
		if errors.Is(err, csvread.ErrNotFound) {
			log.Error().Str("file", cfg.FilePath).Msg("source file not found; nothing was read or written")
			os.Exit(exitcode.SourceNotFound)
		}
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("ingest failed")
			switch pe.Phase {
			case "preflight", "collect":
				os.Exit(exitcode.ValidationError)
			default:
				os.Exit(exitcode.CommitError)
			}
		}
		log.Error().Err(err).Msg("ingest failed")
		os.Exit(exitcode.CommitError)
	}

	if summary.AlreadyLoaded {
		fmt.Printf("File already ingested (run %s); use --force to re-ingest\n", summary.RunID)
		return nil
	}
	fmt.Printf("Ingest complete: %d patients, %d appointments loaded; %d rows rejected (%.1fs)\n",
		summary.PatientsAccepted, summary.ApptsAccepted, summary.PatientsRejected,
		summary.DurationTotal.Seconds())
	return nil
}
