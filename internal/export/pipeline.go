package export

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lbarbosa/ctdose/internal/config"
	"github.com/lbarbosa/ctdose/internal/model"
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

// Run executes the export pipeline: load → flatten → workbook → parquet.
// The parquet writer only runs when a path is configured.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.ExportSummary, error) {
	totalStart := time.Now()
	summary := &model.ExportSummary{}

	log.Info().Str("folder", cfg.OutputFolder).Msg("loading report JSON")
	reports, source, err := LoadReports(log, cfg.OutputFolder, cfg.AggregateFile)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	summary.InputPath = source
	summary.ReportsRead = len(reports)

	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Phase: "flatten", Err: err}
	}
	rows := Flatten(reports)

	log.Info().Int("reports", len(reports)).Int("rows", len(rows)).Str("file", cfg.XLSXPath).Msg("writing workbook")
	written, err := WriteXLSX(rows, cfg.XLSXPath)
	if err != nil {
		return nil, &PipelineError{Phase: "xlsx", Err: err}
	}
	summary.RowsWritten = written
	summary.XLSXPath = cfg.XLSXPath

	if cfg.ParquetPath != "" {
		log.Info().Str("file", cfg.ParquetPath).Msg("writing parquet")
		if err := WriteParquet(rows, cfg.ParquetPath); err != nil {
			return nil, &PipelineError{Phase: "parquet", Err: err}
		}
		summary.ParquetPath = cfg.ParquetPath
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Str("source", summary.InputPath).
		Int("reports", summary.ReportsRead).
		Int("rows", summary.RowsWritten).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("export pipeline complete")
	return summary, nil
}
