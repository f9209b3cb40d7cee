package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/lbarbosa/ctdose/internal/model"
	"github.com/lbarbosa/ctdose/internal/normalize"
)

// Builder turns normalized report text into a model.Report by running the
// pattern catalogue plus the line-oriented logic for the handful of fields
// the text layer likes to wrap across lines.
type Builder struct {
	log    zerolog.Logger
	fields map[string][]Pattern
}

// NewBuilder returns a Builder over the built-in catalogue with the overlay
// patterns appended after the built-ins of their field, so overlays extend
// a chain without overriding it. Overlay keys must name catalogue fields.
func NewBuilder(log zerolog.Logger, extra map[string][]string) (*Builder, error) {
	fields := make(map[string][]Pattern, len(catalogue))
	for name, chain := range catalogue {
		fields[name] = append([]Pattern(nil), chain...)
	}
	for name, exprs := range extra {
		if _, ok := model.PatternFieldByName(name); !ok {
			return nil, fmt.Errorf("unknown pattern field %q", name)
		}
		for _, expr := range exprs {
			p, err := CompileExtra(expr)
			if err != nil {
				return nil, fmt.Errorf("pattern field %q: %w", name, err)
			}
			fields[name] = append(fields[name], p)
		}
	}
	return &Builder{log: log, fields: fields}, nil
}

// BuildReport extracts one Report from full-document text. Every field is
// resolved independently; a missing field never blocks the others.
func (b *Builder) BuildReport(text string) model.Report {
	lines := strings.Split(text, "\n")

	var r model.Report
	r.Hospital, r.ReportDate = hospitalInfo(lines)
	r.Essential = model.Essential{
		PatientID:       b.resolve("patient_id", text),
		PatientName:     b.patientName(lines),
		StudyID:         b.resolve("study_id", text),
		AccessionNumber: b.resolve("accession_number", text),
		StudyDate:       b.studyDate(lines, text),
		BirthDate:       b.resolve("birth_date", text),
		Sex:             b.resolve("sex", text),
	}
	r.Device = model.Device{
		ObserverName:     b.resolve("device_name", text),
		Manufacturer:     b.resolve("manufacturer", text),
		ModelName:        b.resolve("model_name", text),
		SerialNumber:     b.resolve("serial_number", text),
		PhysicalLocation: b.physicalLocation(lines, text),
	}
	r.Irradiation = model.Irradiation{
		StartTime:   b.resolve("start_irradiation", text),
		EndTime:     b.resolve("end_irradiation", text),
		TotalEvents: b.resolve("total_events", text),
		TotalDLP:    b.resolve("total_dlp", text),
	}
	r.Acquisitions = b.acquisitions(text)
	return r
}

func (b *Builder) resolve(field, text string) string {
	v := Resolve(text, b.fields[field])
	b.log.Debug().Str("field", field).Str("value", v).Msg("resolved field")
	return v
}

// resolveOpt is resolve for fields that serialize as null when absent.
func (b *Builder) resolveOpt(field, text string) *string {
	if v := b.resolve(field, text); v != "" {
		return &v
	}
	return nil
}

// acquisitions builds one Acquisition per section, each section an
// independent text scope so a field can never leak across sections.
func (b *Builder) acquisitions(text string) []model.Acquisition {
	sections := SplitAcquisitions(text)
	// Empty slice, not nil: the JSON must carry [] for a header-only report.
	acqs := make([]model.Acquisition, 0, len(sections))
	for _, section := range sections {
		acqs = append(acqs, model.Acquisition{
			Protocol:            b.resolve("protocol", section),
			TargetRegion:        b.resolve("target_region", section),
			AcquisitionType:     b.resolve("acquisition_type", section),
			ProcedureContext:    b.resolve("procedure_context", section),
			IrradiationEventUID: b.resolve("irradiation_uid", section),
			Comment:             b.resolve("comment", section),
			AcquisitionParams: model.AcquisitionParams{
				ExposureTime:             b.resolve("exposure_time", section),
				ScanningLength:           b.resolve("scanning_length", section),
				NominalSingleCollimation: b.resolve("single_collimation", section),
				NominalTotalCollimation:  b.resolve("total_collimation", section),
				NumXRaySources:           b.resolve("num_sources", section),
				PitchFactor:              b.resolveOpt("pitch_factor", section),
			},
			XRaySourceParams: model.XRaySourceParams{
				Identification:          b.resolve("source_id", section),
				KVP:                     b.resolve("kvp", section),
				MaxTubeCurrent:          b.resolve("max_current", section),
				TubeCurrent:             b.resolve("tube_current", section),
				ExposureTimePerRotation: b.resolveOpt("rotation_time", section),
			},
			CTDose: model.CTDose{
				MeanCTDIvol:       b.resolve("mean_ctdivol", section),
				PhantomType:       b.resolve("phantom_type", section),
				DLP:               b.resolve("dlp", section),
				SizeSpecificDose:  b.resolveOpt("specific_dose", section),
				CTDIvolAlertValue: b.resolveOpt("alert_value", section),
			},
		})
	}
	return acqs
}

// hospitalInfo scans the first five lines for the report banner, e.g.
// "By Santa Casa Hospital on CT, May 13, 2025". No banner line is fine:
// both values stay empty.
func hospitalInfo(lines []string) (hospital, reportDate string) {
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		if !strings.Contains(line, "Hospital") || !strings.Contains(line, "on CT") {
			continue
		}
		if left, right, found := strings.Cut(line, "on CT,"); found {
			hospital = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(left), "By "))
			reportDate = strings.TrimSpace(right)
		}
		break
	}
	return hospital, reportDate
}

// Continuation of a wrapped value stops where the next field starts. Labels
// occasionally lose their colon in the text layer, so a short competing
// label list backs up the colon rule.
var competingLabels = []string{
	"Patient ID",
	"Patient's Birth",
	"Patient's Sex",
	"Study ID",
	"Study Date",
	"Accession Number",
}

func hasCompetingLabel(line string) bool {
	for _, label := range competingLabels {
		if indexFold(line, label) >= 0 {
			return true
		}
	}
	return false
}

// patientName takes the remainder of the "Patient's Name" line and greedily
// appends continuation lines until a blank line, a colon, or a competing
// field label.
func (b *Builder) patientName(lines []string) string {
	i, rest, ok := labelLine(lines, "Patient's Name")
	if !ok {
		return ""
	}
	name := trimLabelValue(rest)
	for _, line := range lines[i+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(trimmed, ":") || hasCompetingLabel(trimmed) {
			break
		}
		name += " " + trimmed
	}
	name = normalize.CleanText(name)
	b.log.Debug().Str("field", "patient_name").Str("value", name).Msg("resolved field")
	return name
}

// studyDate takes the remainder of the "Study Date" line; a trailing colon
// or comma means the text layer split the timestamp, so the next line is
// pulled in before normalization rejoins "2:40:" with its seconds.
func (b *Builder) studyDate(lines []string, text string) string {
	i, rest, ok := labelLine(lines, "Study Date")
	if !ok {
		return b.resolve("study_date", text)
	}
	date := trimLabelValue(rest)
	if i+1 < len(lines) && (strings.HasSuffix(date, ":") || strings.HasSuffix(date, ",")) {
		date += " " + strings.TrimSpace(lines[i+1])
	}
	date = normalize.CleanText(date)
	b.log.Debug().Str("field", "study_date").Str("value", date).Msg("resolved field")
	return date
}

var numberedHeading = regexp.MustCompile(`^\d+\.\d+`)

// physicalLocation takes the remainder of the device location line plus
// continuation lines. Wrapped location fragments are short and carry no
// "label:" of their own, hence the bounds.
func (b *Builder) physicalLocation(lines []string, text string) string {
	i, rest, ok := labelLine(lines, "Device Observer Physical Location during observation")
	if !ok {
		return b.resolve("location", text)
	}
	loc := trimLabelValue(rest)
	for _, line := range lines[i+1:] {
		trimmed := strings.TrimSpace(line)
		if numberedHeading.MatchString(trimmed) ||
			strings.Contains(trimmed, ":") ||
			utf8.RuneCountInString(trimmed) >= 50 {
			break
		}
		loc += " " + trimmed
	}
	loc = normalize.CleanText(loc)
	b.log.Debug().Str("field", "location").Str("value", loc).Msg("resolved field")
	return loc
}

// labelLine finds the first line containing the ASCII label, case
// insensitively, and returns its index and the text after the label.
func labelLine(lines []string, label string) (int, string, bool) {
	for i, line := range lines {
		if at := indexFold(line, label); at >= 0 {
			return i, line[at+len(label):], true
		}
	}
	return 0, "", false
}

func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func trimLabelValue(s string) string {
	return strings.TrimSpace(strings.TrimLeft(s, ": \t"))
}
