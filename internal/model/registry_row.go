package model

// AcquisitionRow is the DB-ready representation of one acquisition for COPY
// into ctdose.acquisitions. The registry archives what the report said, so
// values stay as captured text rather than unit-parsed numbers.
type AcquisitionRow struct {
	ReportID int64
	Seq      int32 // document order within the report, starting at 1

	Protocol            string
	TargetRegion        string
	AcquisitionType     string
	ProcedureContext    string
	IrradiationEventUID string
	Comment             string

	ExposureTime             string
	ScanningLength           string
	NominalSingleCollimation string
	NominalTotalCollimation  string
	NumXRaySources           string
	PitchFactor              *string

	SourceIdentification    string
	KVP                     string
	MaxTubeCurrent          string
	TubeCurrent             string
	ExposureTimePerRotation *string

	MeanCTDIvol       string
	PhantomType       string
	DLP               string
	SizeSpecificDose  *string
	CTDIvolAlertValue *string
}

// AcquisitionColumns returns the ordered column names for COPY into
// ctdose.acquisitions.
func AcquisitionColumns() []string {
	return []string{
		"report_id",
		"seq",
		"protocol",
		"target_region",
		"acquisition_type",
		"procedure_context",
		"irradiation_event_uid",
		"comment",
		"exposure_time",
		"scanning_length",
		"nominal_single_collimation",
		"nominal_total_collimation",
		"num_xray_sources",
		"pitch_factor",
		"source_identification",
		"kvp",
		"max_tube_current",
		"tube_current",
		"exposure_time_per_rotation",
		"mean_ctdivol",
		"phantom_type",
		"dlp",
		"size_specific_dose",
		"ctdivol_alert_value",
	}
}

// CopyValues returns the row values in the same order as AcquisitionColumns(),
// suitable for pgx CopyFromSource.
func (r *AcquisitionRow) CopyValues() []any {
	return []any{
		r.ReportID,
		r.Seq,
		r.Protocol,
		r.TargetRegion,
		r.AcquisitionType,
		r.ProcedureContext,
		r.IrradiationEventUID,
		r.Comment,
		r.ExposureTime,
		r.ScanningLength,
		r.NominalSingleCollimation,
		r.NominalTotalCollimation,
		r.NumXRaySources,
		r.PitchFactor,
		r.SourceIdentification,
		r.KVP,
		r.MaxTubeCurrent,
		r.TubeCurrent,
		r.ExposureTimePerRotation,
		r.MeanCTDIvol,
		r.PhantomType,
		r.DLP,
		r.SizeSpecificDose,
		r.CTDIvolAlertValue,
	}
}
