package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lbarbosa/ctdose/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ctdose",
	Short: "Extract and export CT radiation dose reports",
	Long: `ctdose reads CT radiation dose report PDFs, extracts their header and
per-acquisition dose fields into structured JSON, flattens the results
into an XLSX worksheet (with an optional Parquet copy), and loads them
into a Postgres dose registry for longitudinal queries.`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("CTDOSE_DB_URL"), "Postgres connection string (or set CTDOSE_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&cfg.Debug, "debug", false, "Log per-field resolution detail")
}
