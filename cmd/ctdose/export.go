package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbarbosa/ctdose/internal/exitcode"
	"github.com/lbarbosa/ctdose/internal/export"
	"github.com/lbarbosa/ctdose/internal/logging"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Flatten extracted reports into an XLSX worksheet",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.OutputFolder, "input-folder", "ct_reports_json", "Folder holding extracted report JSON")
	f.StringVar(&cfg.AggregateFile, "aggregate", "ct_reports_all.json", "Aggregate filename preferred within the input folder")
	f.StringVar(&cfg.XLSXPath, "output", "ct_dose_report.xlsx", "XLSX output path")
	f.StringVar(&cfg.ParquetPath, "parquet", "", "Optional Parquet output path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Debug)
	ctx := context.Background()

	if err := cfg.ValidateExport(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := export.Run(ctx, log, &cfg)
	if err != nil {
		if pe, ok := err.(*export.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("export failed")
		} else {
			log.Error().Err(err).Msg("export failed")
		}
		os.Exit(exitcode.ExportError)
	}

	fmt.Printf("Export complete: %d reports, %d rows written to %s in %.1fs\n",
		summary.ReportsRead, summary.RowsWritten, summary.XLSXPath, summary.DurationTotal.Seconds())
	if summary.ParquetPath != "" {
		fmt.Printf("Parquet copy: %s\n", summary.ParquetPath)
	}
	return nil
}
