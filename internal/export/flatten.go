package export

import (
	"strings"

	"github.com/lbarbosa/ctdose/internal/model"
	"github.com/lbarbosa/ctdose/internal/normalize"
)

// orDash returns s, or the "-" placeholder when s is empty or whitespace.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func orDashPtr(p *string) string {
	if p == nil {
		return "-"
	}
	return orDash(*p)
}

// description applies the series description rule: empty, whitespace, and
// the literal "null" all collapse to the placeholder.
func description(comment string) string {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return "-"
	}
	return comment
}

// FlattenReport joins report-level identity onto each acquisition, one Row
// per acquisition. A report without acquisitions still yields one placeholder
// row so the exam stays visible in the worksheet, total DLP included.
func FlattenReport(r model.Report) []model.Row {
	base := model.Row{
		PatientID:   orDash(r.Essential.PatientID),
		Sex:         orDash(r.Essential.Sex),
		BirthDate:   orDash(r.Essential.BirthDate),
		Age:         normalize.AgeBetween(r.Essential.BirthDate, r.Essential.StudyDate),
		Subject:     "-",
		StudyDate:   orDash(r.Essential.StudyDate),
		Description: "-",
		ScanMode:    "-",
		TubeCurrent: "-",
		KV:          "-",
		CTDIvol:     "-",
		DLP:         "-",
		TotalDLP:    orDash(r.Irradiation.TotalDLP),
		PhantomType: "-",
		SSDE:        "-",
		AvgScanSize: "-",
	}
	if len(r.Acquisitions) == 0 {
		return []model.Row{base}
	}
	rows := make([]model.Row, 0, len(r.Acquisitions))
	for _, acq := range r.Acquisitions {
		row := base
		row.Subject = orDash(acq.Protocol)
		row.Description = description(acq.Comment)
		row.ScanMode = orDash(acq.AcquisitionType)
		row.TubeCurrent = orDash(acq.XRaySourceParams.TubeCurrent)
		row.KV = orDash(acq.XRaySourceParams.KVP)
		row.CTDIvol = orDash(acq.CTDose.MeanCTDIvol)
		row.DLP = orDash(acq.CTDose.DLP)
		row.PhantomType = orDash(acq.CTDose.PhantomType)
		row.SSDE = orDashPtr(acq.CTDose.SizeSpecificDose)
		rows = append(rows, row)
	}
	return rows
}

// Flatten flattens a batch in report order.
func Flatten(reports []model.Report) []model.Row {
	rows := make([]model.Row, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, FlattenReport(r)...)
	}
	return rows
}
