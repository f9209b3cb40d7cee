package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lbarbosa/ctdose/internal/exitcode"
	"github.com/lbarbosa/ctdose/internal/extract"
	"github.com/lbarbosa/ctdose/internal/logging"
	"github.com/lbarbosa/ctdose/internal/model"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dry-run extraction of a single PDF without writing anything",
	RunE:  runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Dose report PDF to inspect (required)")
	f.StringVar(&cfg.PatternsPath, "patterns", "", "YAML file with extra field patterns")
	_ = inspectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.Debug)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	if cfg.PatternsPath != "" {
		if err := cfg.LoadFromFile(cfg.PatternsPath); err != nil {
			log.Error().Err(err).Msg("patterns file rejected")
			os.Exit(exitcode.ValidationError)
		}
	}

	builder, err := extract.NewBuilder(log, cfg.ExtraPatterns)
	if err != nil {
		log.Error().Err(err).Msg("pattern catalogue rejected")
		os.Exit(exitcode.ValidationError)
	}

	report, err := extract.FromPDF(builder, cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.FilePath).Msg("extraction failed")
		os.Exit(exitcode.ExtractError)
	}

	fmt.Println("=== ctdose inspect ===")
	fmt.Printf("File:             %s\n", cfg.FilePath)
	fmt.Printf("Hospital:         %s\n", orDash(report.Hospital))
	fmt.Printf("Report date:      %s\n", orDash(report.ReportDate))
	fmt.Println()
	fmt.Printf("Patient ID:       %s\n", orDash(report.Essential.PatientID))
	fmt.Printf("Patient name:     %s\n", orDash(report.Essential.PatientName))
	fmt.Printf("Study ID:         %s\n", orDash(report.Essential.StudyID))
	fmt.Printf("Accession:        %s\n", orDash(report.Essential.AccessionNumber))
	fmt.Printf("Study date:       %s\n", orDash(report.Essential.StudyDate))
	fmt.Printf("Birth date:       %s\n", orDash(report.Essential.BirthDate))
	fmt.Printf("Sex:              %s\n", orDash(report.Essential.Sex))
	fmt.Println()
	fmt.Printf("Device:           %s (%s %s, serial %s)\n",
		orDash(report.Device.ObserverName), orDash(report.Device.Manufacturer),
		orDash(report.Device.ModelName), orDash(report.Device.SerialNumber))
	fmt.Printf("Location:         %s\n", orDash(report.Device.PhysicalLocation))
	fmt.Printf("Irradiation:      %s to %s\n",
		orDash(report.Irradiation.StartTime), orDash(report.Irradiation.EndTime))
	fmt.Printf("Total events:     %s\n", orDash(report.Irradiation.TotalEvents))
	fmt.Printf("Total DLP:        %s\n", orDash(report.Irradiation.TotalDLP))
	fmt.Println()
	fmt.Printf("Acquisitions:     %d\n", len(report.Acquisitions))
	for i := range report.Acquisitions {
		acq := &report.Acquisitions[i]
		filled, total := acquisitionCoverage(acq)
		fmt.Printf("  %2d. %-28s %-16s %2d/%d fields  DLP %s\n",
			i+1, orDash(acq.Protocol), orDash(acq.AcquisitionType),
			filled, total, orDash(acq.CTDose.DLP))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// acquisitionCoverage counts resolved fields so thin scanner variants stand
// out before a whole folder goes through extract.
func acquisitionCoverage(a *model.Acquisition) (filled, total int) {
	opt := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	values := []string{
		a.Protocol, a.TargetRegion, a.AcquisitionType, a.ProcedureContext,
		a.IrradiationEventUID, a.Comment,
		a.AcquisitionParams.ExposureTime, a.AcquisitionParams.ScanningLength,
		a.AcquisitionParams.NominalSingleCollimation, a.AcquisitionParams.NominalTotalCollimation,
		a.AcquisitionParams.NumXRaySources, opt(a.AcquisitionParams.PitchFactor),
		a.XRaySourceParams.Identification, a.XRaySourceParams.KVP,
		a.XRaySourceParams.MaxTubeCurrent, a.XRaySourceParams.TubeCurrent,
		opt(a.XRaySourceParams.ExposureTimePerRotation),
		a.CTDose.MeanCTDIvol, a.CTDose.PhantomType, a.CTDose.DLP,
		opt(a.CTDose.SizeSpecificDose), opt(a.CTDose.CTDIvolAlertValue),
	}
	for _, v := range values {
		if v != "" {
			filled++
		}
	}
	return filled, len(values)
}
