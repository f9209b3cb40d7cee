package model

// Row is one flattened dose line: one acquisition of one report joined with
// the patient and study identifiers. Values stay strings as captured from the
// document; absent values carry the "-" placeholder by the time a Row exists.
type Row struct {
	PatientID   string `parquet:"patient_id"`
	Sex         string `parquet:"sex"`
	BirthDate   string `parquet:"birth_date"`
	Age         string `parquet:"age"`
	Subject     string `parquet:"subject_of_interest"`
	StudyDate   string `parquet:"study_date"`
	Description string `parquet:"series_description"`
	ScanMode    string `parquet:"scan_mode"`
	TubeCurrent string `parquet:"tube_current_mas"`
	KV          string `parquet:"kv"`
	CTDIvol     string `parquet:"ctdivol"`
	DLP         string `parquet:"dlp"`
	TotalDLP    string `parquet:"total_dlp"`
	PhantomType string `parquet:"phantom_type"`
	SSDE        string `parquet:"ssde"`
	AvgScanSize string `parquet:"avg_scan_size"`
}

// RowHeaders returns the spreadsheet header labels in column order.
func RowHeaders() []string {
	return []string{
		"Patient ID",
		"Sex",
		"Birth Date",
		"Age",
		"Subject of Interest",
		"Study Date",
		"Series Description",
		"Scan Mode",
		"mAs",
		"kV",
		"CTDIvol",
		"DLP",
		"DLP Total",
		"Phantom Type",
		"SSDE",
		"Avg Scan Size",
	}
}

// Cells returns the row values in the same order as RowHeaders().
func (r *Row) Cells() []any {
	return []any{
		r.PatientID,
		r.Sex,
		r.BirthDate,
		r.Age,
		r.Subject,
		r.StudyDate,
		r.Description,
		r.ScanMode,
		r.TubeCurrent,
		r.KV,
		r.CTDIvol,
		r.DLP,
		r.TotalDLP,
		r.PhantomType,
		r.SSDE,
		r.AvgScanSize,
	}
}
