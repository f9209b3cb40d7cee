package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lbarbosa/ctdose/internal/exitcode"
	"github.com/lbarbosa/ctdose/internal/export"
	"github.com/lbarbosa/ctdose/internal/logging"
	"github.com/lbarbosa/ctdose/internal/registry"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load extracted reports into the Postgres dose registry",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.OutputFolder, "input-folder", "ct_reports_json", "Folder holding extracted report JSON")
	f.StringVar(&cfg.AggregateFile, "aggregate", "ct_reports_all.json", "Aggregate filename preferred within the input folder")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Debug)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	reports, source, err := export.LoadReports(log, cfg.OutputFolder, cfg.AggregateFile)
	if err != nil {
		log.Error().Err(err).Msg("reading report JSON failed")
		os.Exit(exitcode.LoadError)
	}

	pool, err := registry.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := registry.LoadReports(ctx, pool, log, reports, uuid.New(), source)
	if err != nil {
		log.Error().Err(err).Msg("registry load failed")
		os.Exit(exitcode.LoadError)
	}

	fmt.Printf("Load complete: %d reports, %d acquisitions (batch %s) in %.1fs\n",
		summary.ReportsInserted, summary.AcquisitionsCopied, summary.LoadBatchID,
		summary.DurationTotal.Seconds())
	return nil
}
