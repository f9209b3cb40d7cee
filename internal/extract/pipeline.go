package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lbarbosa/ctdose/internal/config"
	"github.com/lbarbosa/ctdose/internal/model"
	"github.com/lbarbosa/ctdose/internal/normalize"
	"github.com/lbarbosa/ctdose/internal/pdftext"
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

// FromPDF extracts one report from one PDF: preflight → text layer →
// normalize → build.
func FromPDF(b *Builder, path string) (model.Report, error) {
	if err := pdftext.Preflight(path); err != nil {
		return model.Report{}, err
	}
	raw, err := pdftext.ReadText(path)
	if err != nil {
		return model.Report{}, err
	}
	return b.BuildReport(normalize.CleanText(raw)), nil
}

// Run executes the extraction pipeline: scan → per-file extract → aggregate.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.ExtractSummary, error) {
	totalStart := time.Now()

	summary := &model.ExtractSummary{
		BatchID:      uuid.New().String(),
		InputFolder:  cfg.InputFolder,
		OutputFolder: cfg.OutputFolder,
	}

	// Phase 1: Scan. A missing input folder gets created, not an error, so
	// a first run leaves the user a place to drop files.
	log.Info().Str("folder", cfg.InputFolder).Msg("scanning input folder")
	if err := os.MkdirAll(cfg.InputFolder, 0o755); err != nil {
		return nil, &PipelineError{Phase: "scan", Err: err}
	}
	pdfs, err := filepath.Glob(filepath.Join(cfg.InputFolder, "*.pdf"))
	if err != nil {
		return nil, &PipelineError{Phase: "scan", Err: err}
	}
	summary.FilesFound = len(pdfs)
	if len(pdfs) == 0 {
		log.Warn().Str("folder", cfg.InputFolder).Msg("no PDF files to process")
		summary.DurationTotal = time.Since(totalStart)
		return summary, nil
	}
	if err := os.MkdirAll(cfg.OutputFolder, 0o755); err != nil {
		return nil, &PipelineError{Phase: "scan", Err: err}
	}

	builder, err := NewBuilder(log, cfg.ExtraPatterns)
	if err != nil {
		return nil, &PipelineError{Phase: "patterns", Err: err}
	}

	// Phase 2: Extract file by file. A bad file logs and is skipped; the
	// rest of the batch still goes through.
	log.Info().Int("files", len(pdfs)).Msg("starting extraction")
	reports := make([]model.Report, 0, len(pdfs))
	for _, path := range pdfs {
		if err := ctx.Err(); err != nil {
			return nil, &PipelineError{Phase: "extract", Err: err}
		}
		report, err := FromPDF(builder, path)
		if err != nil {
			summary.FilesFailed++
			log.Warn().Err(err).Str("file", path).Msg("extraction failed, file skipped")
			continue
		}
		summary.FilesExtracted++
		summary.Acquisitions += len(report.Acquisitions)
		reports = append(reports, report)

		if id := report.Essential.PatientID; id != "" {
			out := filepath.Join(cfg.OutputFolder, "ct_report_"+id+".json")
			if err := WriteReportsJSON(out, []model.Report{report}); err != nil {
				log.Warn().Err(err).Str("file", out).Msg("per-report write failed")
			} else {
				log.Info().Str("file", path).Str("report", out).Msg("report extracted")
			}
		} else {
			summary.FilesSkipped++
			log.Info().Str("file", path).Msg("report extracted without patient ID, no per-report file")
		}
	}
	summary.Reports = len(reports)

	// Phase 3: Aggregate. Written whenever at least one report came out,
	// patient ID or not.
	if len(reports) > 0 {
		aggregate := filepath.Join(cfg.OutputFolder, cfg.AggregateFile)
		if err := WriteReportsJSON(aggregate, reports); err != nil {
			return nil, &PipelineError{Phase: "aggregate", Err: err}
		}
		summary.AggregatePath = aggregate
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Int("files_found", summary.FilesFound).
		Int("files_extracted", summary.FilesExtracted).
		Int("files_failed", summary.FilesFailed).
		Int("reports", summary.Reports).
		Int("acquisitions", summary.Acquisitions).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("extraction pipeline complete")
	return summary, nil
}
