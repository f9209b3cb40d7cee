package model

// FieldScope says over which text a pattern field is resolved.
type FieldScope string

const (
	// ScopeDocument fields resolve against the full report text.
	ScopeDocument FieldScope = "document"
	// ScopeAcquisition fields resolve within one acquisition section.
	ScopeAcquisition FieldScope = "acquisition"
)

// PatternField identifies one regex-resolved field of a dose report.
type PatternField struct {
	Name  string // catalogue/overlay key, e.g. "patient_id"
	Scope FieldScope
}

// AllPatternFields lists the resolvable fields in canonical order. Fields the
// record builder fills with line-oriented logic (patient name, hospital line)
// are not pattern fields and do not appear here.
var AllPatternFields = []PatternField{
	{Name: "patient_id", Scope: ScopeDocument},
	{Name: "study_id", Scope: ScopeDocument},
	{Name: "accession_number", Scope: ScopeDocument},
	{Name: "study_date", Scope: ScopeDocument},
	{Name: "birth_date", Scope: ScopeDocument},
	{Name: "sex", Scope: ScopeDocument},

	{Name: "device_name", Scope: ScopeDocument},
	{Name: "manufacturer", Scope: ScopeDocument},
	{Name: "model_name", Scope: ScopeDocument},
	{Name: "serial_number", Scope: ScopeDocument},
	{Name: "location", Scope: ScopeDocument},
	{Name: "start_irradiation", Scope: ScopeDocument},
	{Name: "end_irradiation", Scope: ScopeDocument},
	{Name: "total_events", Scope: ScopeDocument},
	{Name: "total_dlp", Scope: ScopeDocument},

	{Name: "protocol", Scope: ScopeAcquisition},
	{Name: "target_region", Scope: ScopeAcquisition},
	{Name: "acquisition_type", Scope: ScopeAcquisition},
	{Name: "procedure_context", Scope: ScopeAcquisition},
	{Name: "irradiation_uid", Scope: ScopeAcquisition},
	{Name: "comment", Scope: ScopeAcquisition},
	{Name: "exposure_time", Scope: ScopeAcquisition},
	{Name: "scanning_length", Scope: ScopeAcquisition},
	{Name: "single_collimation", Scope: ScopeAcquisition},
	{Name: "total_collimation", Scope: ScopeAcquisition},
	{Name: "num_sources", Scope: ScopeAcquisition},
	{Name: "pitch_factor", Scope: ScopeAcquisition},
	{Name: "source_id", Scope: ScopeAcquisition},
	{Name: "kvp", Scope: ScopeAcquisition},
	{Name: "max_current", Scope: ScopeAcquisition},
	{Name: "tube_current", Scope: ScopeAcquisition},
	{Name: "rotation_time", Scope: ScopeAcquisition},
	{Name: "mean_ctdivol", Scope: ScopeAcquisition},
	{Name: "phantom_type", Scope: ScopeAcquisition},
	{Name: "dlp", Scope: ScopeAcquisition},
	{Name: "specific_dose", Scope: ScopeAcquisition},
	{Name: "alert_value", Scope: ScopeAcquisition},
}

// PatternFieldNames returns just the field names for all pattern fields.
func PatternFieldNames() []string {
	names := make([]string, len(AllPatternFields))
	for i, f := range AllPatternFields {
		names[i] = f.Name
	}
	return names
}

// PatternFieldByName returns the field for the given name, or ok=false.
func PatternFieldByName(name string) (PatternField, bool) {
	for _, f := range AllPatternFields {
		if f.Name == name {
			return f, true
		}
	}
	return PatternField{}, false
}
