package model

// Report is the structured form of one CT radiation dose report.
//
// Field values are kept exactly as captured from the document text, so unit
// suffixes stay embedded ("1.87 mGy", "102.69 mGy.cm"). Plain string fields
// use "" for absent; pointer fields serialize as JSON null when unset,
// matching report files already in circulation.
type Report struct {
	Hospital     string        `json:"hospital"`
	ReportDate   string        `json:"report_date"`
	Essential    Essential     `json:"essential"`
	Device       Device        `json:"device"`
	Irradiation  Irradiation   `json:"irradiation"`
	Acquisitions []Acquisition `json:"acquisitions"`
}

// Essential carries the patient and study identifiers.
type Essential struct {
	PatientID       string `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	StudyID         string `json:"study_id"`
	AccessionNumber string `json:"accession_number"`
	StudyDate       string `json:"study_date"`
	BirthDate       string `json:"birth_date"`
	Sex             string `json:"sex"`
}

// Device describes the scanner that produced the report.
type Device struct {
	ObserverName     string `json:"observer_name"`
	Manufacturer     string `json:"manufacturer"`
	ModelName        string `json:"model_name"`
	SerialNumber     string `json:"serial_number"`
	PhysicalLocation string `json:"physical_location"`
}

// Irradiation aggregates exam-level exposure totals.
type Irradiation struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TotalEvents string `json:"total_events"`
	TotalDLP    string `json:"total_dlp"`
}

// Acquisition is one "N.M CT Acquisition" section of the report.
type Acquisition struct {
	Protocol            string            `json:"protocol"`
	TargetRegion        string            `json:"target_region"`
	AcquisitionType     string            `json:"acquisition_type"`
	ProcedureContext    string            `json:"procedure_context"`
	IrradiationEventUID string            `json:"irradiation_event_uid"`
	Comment             string            `json:"comment"`
	AcquisitionParams   AcquisitionParams `json:"acquisition_params"`
	XRaySourceParams    XRaySourceParams  `json:"xray_source_params"`
	CTDose              CTDose            `json:"ct_dose"`
}

// AcquisitionParams holds geometry and timing for one acquisition.
type AcquisitionParams struct {
	ExposureTime             string  `json:"exposure_time"`
	ScanningLength           string  `json:"scanning_length"`
	NominalSingleCollimation string  `json:"nominal_single_collimation"`
	NominalTotalCollimation  string  `json:"nominal_total_collimation"`
	NumXRaySources           string  `json:"num_xray_sources"`
	PitchFactor              *string `json:"pitch_factor"`
}

// XRaySourceParams holds tube settings for one acquisition.
type XRaySourceParams struct {
	Identification          string  `json:"identification"`
	KVP                     string  `json:"kvp"`
	MaxTubeCurrent          string  `json:"max_tube_current"`
	TubeCurrent             string  `json:"tube_current"`
	ExposureTimePerRotation *string `json:"exposure_time_per_rotation"`
}

// CTDose holds the dose indices for one acquisition.
type CTDose struct {
	MeanCTDIvol       string  `json:"mean_ctdivol"`
	PhantomType       string  `json:"phantom_type"`
	DLP               string  `json:"dlp"`
	SizeSpecificDose  *string `json:"size_specific_dose"`
	CTDIvolAlertValue *string `json:"ctdivol_alert_value"`
}
