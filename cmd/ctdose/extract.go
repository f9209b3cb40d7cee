package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbarbosa/ctdose/internal/exitcode"
	"github.com/lbarbosa/ctdose/internal/extract"
	"github.com/lbarbosa/ctdose/internal/logging"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a folder of dose report PDFs into structured JSON",
	RunE:  runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVar(&cfg.InputFolder, "folder", "ct_reports", "Folder scanned for report PDFs")
	f.StringVar(&cfg.OutputFolder, "output-folder", "ct_reports_json", "Folder receiving per-report and aggregate JSON")
	f.StringVar(&cfg.AggregateFile, "output", "ct_reports_all.json", "Aggregate JSON filename within the output folder")
	f.StringVar(&cfg.PatternsPath, "patterns", "", "YAML file with extra field patterns")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Debug)
	ctx := context.Background()

	if err := cfg.ValidateExtract(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if cfg.PatternsPath != "" {
		if err := cfg.LoadFromFile(cfg.PatternsPath); err != nil {
			log.Error().Err(err).Msg("patterns file rejected")
			os.Exit(exitcode.ValidationError)
		}
	}

	summary, err := extract.Run(ctx, log, &cfg)
	if err != nil {
		if pe, ok := err.(*extract.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("extraction failed")
			if pe.Phase == "patterns" {
				os.Exit(exitcode.ValidationError)
			}
		} else {
			log.Error().Err(err).Msg("extraction failed")
		}
		os.Exit(exitcode.ExtractError)
	}

	fmt.Printf("Extraction complete: %d/%d files extracted (%d failed), %d reports, %d acquisitions in %.1fs\n",
		summary.FilesExtracted, summary.FilesFound, summary.FilesFailed,
		summary.Reports, summary.Acquisitions, summary.DurationTotal.Seconds())
	return nil
}
