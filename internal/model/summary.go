package model

import "time"

// ExtractSummary captures metrics from one folder extraction run.
type ExtractSummary struct {
	BatchID        string
	InputFolder    string
	OutputFolder   string
	AggregatePath  string
	FilesFound     int
	FilesExtracted int
	FilesFailed    int
	FilesSkipped   int // extracted but missing a patient ID, no per-report file
	Reports        int
	Acquisitions   int
	DurationTotal  time.Duration
}

// ExportSummary captures metrics from one spreadsheet/Parquet export run.
type ExportSummary struct {
	InputPath     string
	ReportsRead   int
	RowsWritten   int
	XLSXPath      string
	ParquetPath   string
	DurationTotal time.Duration
}

// LoadSummary captures metrics from one registry load run.
type LoadSummary struct {
	LoadBatchID        string
	SourcePath         string
	ReportsInserted    int64
	AcquisitionsCopied int64
	DurationTotal      time.Duration
}
