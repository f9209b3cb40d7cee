package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/lbarbosa/ctdose/internal/model"
	embedsql "github.com/lbarbosa/ctdose/internal/sql"
)

const copyChannelSize = 256

// LoadReports inserts one reports row per report, then COPYs every
// acquisition of the batch in a single stream. seq preserves document order
// within each report, starting at 1.
func LoadReports(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, reports []model.Report, batchID uuid.UUID, sourceFile string) (*model.LoadSummary, error) {
	start := time.Now()
	summary := &model.LoadSummary{
		LoadBatchID: batchID.String(),
		SourcePath:  sourceFile,
	}

	var rows []*model.AcquisitionRow
	for _, r := range reports {
		var reportID int64
		err := pool.QueryRow(ctx, embedsql.InsertReport,
			batchID,
			sourceFile,
			r.Hospital,
			r.ReportDate,
			r.Essential.PatientID,
			r.Essential.PatientName,
			r.Essential.StudyID,
			r.Essential.AccessionNumber,
			r.Essential.StudyDate,
			r.Essential.BirthDate,
			r.Essential.Sex,
			r.Device.ObserverName,
			r.Device.Manufacturer,
			r.Device.ModelName,
			r.Device.SerialNumber,
			r.Device.PhysicalLocation,
			r.Irradiation.StartTime,
			r.Irradiation.EndTime,
			r.Irradiation.TotalEvents,
			r.Irradiation.TotalDLP,
		).Scan(&reportID)
		if err != nil {
			return nil, fmt.Errorf("insert report (patient %q): %w", r.Essential.PatientID, err)
		}
		summary.ReportsInserted++

		for i := range r.Acquisitions {
			rows = append(rows, newAcquisitionRow(reportID, int32(i+1), &r.Acquisitions[i]))
		}
	}

	ch := make(chan *model.AcquisitionRow, copyChannelSize)
	errCh := make(chan error, 1)

	go func() {
		defer close(ch)
		for _, row := range rows {
			select {
			case ch <- row:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- nil
	}()

	copied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"ctdose", "acquisitions"},
		model.AcquisitionColumns(),
		NewChannelSource(ch),
	)

	prodErr := <-errCh
	if prodErr != nil {
		return nil, fmt.Errorf("load producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("load copy: %w", err)
	}
	summary.AcquisitionsCopied = copied
	summary.DurationTotal = time.Since(start)

	log.Info().
		Str("load_batch_id", summary.LoadBatchID).
		Int64("reports_inserted", summary.ReportsInserted).
		Int64("acquisitions_copied", summary.AcquisitionsCopied).
		Str("duration", summary.DurationTotal.String()).
		Msg("registry load complete")
	return summary, nil
}

func newAcquisitionRow(reportID int64, seq int32, a *model.Acquisition) *model.AcquisitionRow {
	return &model.AcquisitionRow{
		ReportID: reportID,
		Seq:      seq,

		Protocol:            a.Protocol,
		TargetRegion:        a.TargetRegion,
		AcquisitionType:     a.AcquisitionType,
		ProcedureContext:    a.ProcedureContext,
		IrradiationEventUID: a.IrradiationEventUID,
		Comment:             a.Comment,

		ExposureTime:             a.AcquisitionParams.ExposureTime,
		ScanningLength:           a.AcquisitionParams.ScanningLength,
		NominalSingleCollimation: a.AcquisitionParams.NominalSingleCollimation,
		NominalTotalCollimation:  a.AcquisitionParams.NominalTotalCollimation,
		NumXRaySources:           a.AcquisitionParams.NumXRaySources,
		PitchFactor:              a.AcquisitionParams.PitchFactor,

		SourceIdentification:    a.XRaySourceParams.Identification,
		KVP:                     a.XRaySourceParams.KVP,
		MaxTubeCurrent:          a.XRaySourceParams.MaxTubeCurrent,
		TubeCurrent:             a.XRaySourceParams.TubeCurrent,
		ExposureTimePerRotation: a.XRaySourceParams.ExposureTimePerRotation,

		MeanCTDIvol:       a.CTDose.MeanCTDIvol,
		PhantomType:       a.CTDose.PhantomType,
		DLP:               a.CTDose.DLP,
		SizeSpecificDose:  a.CTDose.SizeSpecificDose,
		CTDIvolAlertValue: a.CTDose.CTDIvolAlertValue,
	}
}
