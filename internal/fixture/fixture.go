// Package fixture builds synthetic CT dose reports for tests and the
// mkfixture tool. The text mirrors the layout of scanner dose exports: one
// labeled value per line, numbered acquisition sections.
package fixture

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Acquisition holds the per-section values of a synthetic report. Values
// carry their unit suffixes exactly as the documents print them.
type Acquisition struct {
	Protocol       string
	TargetRegion   string
	Type           string
	Context        string
	EventUID       string
	Comment        string
	ExposureTime   string
	ScanningLength string
	SingleCollim   string
	TotalCollim    string
	NumSources     string
	PitchFactor    string
	SourceID       string
	KVP            string
	MaxCurrent     string
	TubeCurrent    string
	RotationTime   string
	MeanCTDIvol    string
	PhantomType    string
	DLP            string
	SSDE           string
	AlertValue     string
}

// Params describes one synthetic dose report. The banner scan keys on the
// word "Hospital", so Hospital should contain it.
type Params struct {
	Hospital     string
	ReportDate   string
	PatientID    string
	PatientName  string
	StudyID      string
	Accession    string
	StudyDate    string
	BirthDate    string
	Sex          string
	DeviceName   string
	Manufacturer string
	ModelName    string
	SerialNumber string
	Location     string
	StartTime    string
	EndTime      string
	TotalDLP     string
	Acquisitions []Acquisition
}

// Default returns a fully populated two-acquisition report.
func Default() Params {
	return Params{
		Hospital:     "Santa Casa Hospital",
		ReportDate:   "May 13, 2025",
		PatientID:    "12345",
		PatientName:  "SILVA JOAO",
		StudyID:      "67890",
		Accession:    "555001",
		StudyDate:    "May 13, 2025, 2:40:38 PM",
		BirthDate:    "Jul 1, 1997",
		Sex:          "M",
		DeviceName:   "CT99",
		Manufacturer: "SIEMENS",
		ModelName:    "SOMATOM Definition AS+",
		SerialNumber: "66021",
		Location:     "CT Room 1",
		StartTime:    "May 13, 2025, 2:41:10 PM",
		EndTime:      "May 13, 2025, 2:44:52 PM",
		TotalDLP:     "625.01 mGy.cm",
		Acquisitions: []Acquisition{
			{
				Protocol:       "Chest Routine",
				TargetRegion:   "Chest",
				Type:           "Spiral Acquisition",
				Context:        "Diagnostic Intent",
				EventUID:       "1.3.12.2.1107.5.1.4.839.30000025051311212345600000001",
				Comment:        "Chest wo contrast",
				ExposureTime:   "5.28 s",
				ScanningLength: "512.5 mm",
				SingleCollim:   "0.6 mm",
				TotalCollim:    "38.4 mm",
				NumSources:     "1 X-Ray sources",
				PitchFactor:    "0.8 ratio",
				SourceID:       "A",
				KVP:            "120 kV",
				MaxCurrent:     "404 mA",
				TubeCurrent:    "179 mA",
				RotationTime:   "0.5 s",
				MeanCTDIvol:    "11.77 mGy",
				PhantomType:    "IEC Body Dosimetry Phantom",
				DLP:            "522.32 mGy.cm",
				SSDE:           "14.0 mGy",
				AlertValue:     "100.0 mGy",
			},
			{
				Protocol:       "Chest Routine",
				TargetRegion:   "Chest",
				Type:           "Constant Angle Acquisition",
				Context:        "Diagnostic Intent",
				EventUID:       "1.3.12.2.1107.5.1.4.839.30000025051311212345600000002",
				Comment:        "Topogram",
				ExposureTime:   "3.70 s",
				ScanningLength: "512.0 mm",
				SingleCollim:   "0.6 mm",
				TotalCollim:    "0.6 mm",
				NumSources:     "1 X-Ray sources",
				PitchFactor:    "",
				SourceID:       "A",
				KVP:            "120 kV",
				MaxCurrent:     "35 mA",
				TubeCurrent:    "35 mA",
				RotationTime:   "",
				MeanCTDIvol:    "0.07 mGy",
				PhantomType:    "IEC Body Dosimetry Phantom",
				DLP:            "3.73 mGy.cm",
				SSDE:           "",
				AlertValue:     "",
			},
		},
	}
}

// Text renders the report as the text layer a PDF reader would produce.
func Text(p Params) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("Radiation Dose Report")
	line("By %s on CT, %s", p.Hospital, p.ReportDate)
	line("Patient ID: %s", p.PatientID)
	line("Patient's Name: %s", p.PatientName)
	line("Study ID: %s", p.StudyID)
	line("Accession Number: %s", p.Accession)
	line("Study Date: %s", p.StudyDate)
	line("Patient's Birth Date: %s", p.BirthDate)
	line("Patient's Sex: %s", p.Sex)
	line("Device Observer Name: %s", p.DeviceName)
	line("Device Observer Manufacturer: %s", p.Manufacturer)
	line("Device Observer Model Name: %s", p.ModelName)
	line("Device Observer Serial Number: %s", p.SerialNumber)
	line("Device Observer Physical Location during observation: %s", p.Location)
	line("Start of X-Ray Irradiation: %s", p.StartTime)
	line("End of X-Ray Irradiation: %s", p.EndTime)
	line("Total Number of Irradiation Events = %d events", len(p.Acquisitions))
	line("CT Dose Length Product Total = %s", p.TotalDLP)
	for i, a := range p.Acquisitions {
		line("%d.1 CT Acquisition", i+1)
		line("Acquisition Protocol: %s", a.Protocol)
		line("Target Region: %s", a.TargetRegion)
		line("CT Acquisition Type: %s", a.Type)
		line("Procedure Context: %s", a.Context)
		line("Irradiation Event UID: %s", a.EventUID)
		line("Comment: %s", a.Comment)
		line("Exposure Time = %s", a.ExposureTime)
		line("Scanning Length = %s", a.ScanningLength)
		line("Nominal Single Collimation Width = %s", a.SingleCollim)
		line("Nominal Total Collimation Width = %s", a.TotalCollim)
		line("Number of X-Ray Sources = %s", a.NumSources)
		line("Pitch Factor = %s", a.PitchFactor)
		line("Identification of the X-Ray Source: %s", a.SourceID)
		line("KVP = %s", a.KVP)
		line("Maximum X-Ray Tube Current = %s", a.MaxCurrent)
		line("X-Ray Tube Current = %s", a.TubeCurrent)
		line("Exposure Time per Rotation = %s", a.RotationTime)
		line("Mean CTDIvol = %s", a.MeanCTDIvol)
		line("CTDIw Phantom Type: %s", a.PhantomType)
		line("DLP = %s", a.DLP)
		line("Size Specific Dose Estimation = %s", a.SSDE)
		line("CTDIvol Alert Value = %s", a.AlertValue)
	}
	return b.String()
}

// WritePDF renders the report text as a one-column PDF, one text cell per
// line, the visual shape scanner exports have.
func WritePDF(p Params, path string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 9)
	for _, line := range strings.Split(strings.TrimRight(Text(p), "\n"), "\n") {
		doc.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write fixture pdf %s: %w", path, err)
	}
	return nil
}
