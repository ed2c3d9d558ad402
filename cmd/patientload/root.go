package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/patientload/internal/config"
	"github.com/gyeh/patientload/internal/exitcode"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "patientload",
	Short: "Patient/appointment CSV → Postgres loader",
	Long:  "Cleans, validates, and deduplicates messy patient/appointment CSV exports and bulk-loads them into Postgres via the COPY protocol.",
}

func init() {
	// Best-effort: a missing .env is not an error.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
