package registry_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lbarbosa/ctdose/internal/logging"
	"github.com/lbarbosa/ctdose/internal/model"
	"github.com/lbarbosa/ctdose/internal/registry"
)

const (
	testPort     = 15433
	testDB       = "ctdosetest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var testDSN string

func TestMain(m *testing.M) {
	if os.Getenv("CTDOSE_TEST_PG") == "" {
		fmt.Fprintln(os.Stderr, "SKIP: set CTDOSE_TEST_PG=1 to run registry tests against embedded postgres")
		os.Exit(0)
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg := embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30 * time.Second),
	)
	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}
	os.Exit(code)
}

// setupDB connects, drops the registry schema for a clean state, and applies
// migrations.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := registry.NewPool(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS ctdose CASCADE"); err != nil {
		pool.Close()
		t.Fatalf("drop schema: %v", err)
	}

	log := logging.Setup("text", false)
	if err := registry.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

func ptr(s string) *string { return &s }

func testReport(patientID string, protocols ...string) model.Report {
	r := model.Report{
		Hospital:   "Santa Casa Hospital",
		ReportDate: "May 13, 2025",
		Essential: model.Essential{
			PatientID:   patientID,
			PatientName: "SILVA JOAO",
			StudyID:     "67890",
			StudyDate:   "May 13, 2025, 2:40:38 PM",
			BirthDate:   "Jul 1, 1997",
			Sex:         "M",
		},
		Irradiation: model.Irradiation{
			TotalEvents: fmt.Sprintf("%d events", len(protocols)),
			TotalDLP:    "625.01 mGy.cm",
		},
		Acquisitions: []model.Acquisition{},
	}
	for i, p := range protocols {
		acq := model.Acquisition{
			Protocol:        p,
			AcquisitionType: "Spiral Acquisition",
			CTDose: model.CTDose{
				MeanCTDIvol: "11.77 mGy",
				DLP:         "522.32 mGy.cm",
			},
		}
		if i == 0 {
			acq.AcquisitionParams.PitchFactor = ptr("0.8 ratio")
			acq.CTDose.SizeSpecificDose = ptr("14.0 mGy")
		}
		r.Acquisitions = append(r.Acquisitions, acq)
	}
	return r
}

func TestMigrationsIdempotent(t *testing.T) {
	pool := setupDB(t)
	log := logging.Setup("text", false)
	if err := registry.ApplyMigrations(context.Background(), pool, log); err != nil {
		t.Fatalf("second ApplyMigrations: %v", err)
	}
}

func TestLoadReports(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", false)
	batchID := uuid.New()

	reports := []model.Report{
		testReport("12345", "Chest Routine", "Topogram"),
		testReport("22222"),
	}
	summary, err := registry.LoadReports(ctx, pool, log, reports, batchID, "ct_reports_all.json")
	if err != nil {
		t.Fatalf("LoadReports: %v", err)
	}
	if summary.ReportsInserted != 2 {
		t.Errorf("ReportsInserted = %d, want 2", summary.ReportsInserted)
	}
	if summary.AcquisitionsCopied != 2 {
		t.Errorf("AcquisitionsCopied = %d, want 2", summary.AcquisitionsCopied)
	}
	if summary.LoadBatchID != batchID.String() {
		t.Errorf("LoadBatchID = %q, want %q", summary.LoadBatchID, batchID)
	}

	var reportCount int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM ctdose.reports WHERE load_batch_id = $1", batchID).Scan(&reportCount); err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if reportCount != 2 {
		t.Errorf("reports in db = %d, want 2", reportCount)
	}

	var patientName string
	err = pool.QueryRow(ctx,
		"SELECT patient_name FROM ctdose.reports WHERE patient_id = $1", "12345",
	).Scan(&patientName)
	if err != nil {
		t.Fatalf("select report: %v", err)
	}
	if patientName != "SILVA JOAO" {
		t.Errorf("patient_name = %q, want %q", patientName, "SILVA JOAO")
	}

	// Optionals: set on seq 1, NULL on seq 2.
	var pitch *string
	err = pool.QueryRow(ctx, `
		SELECT a.pitch_factor
		FROM ctdose.acquisitions a
		JOIN ctdose.reports r USING (report_id)
		WHERE r.patient_id = $1 AND a.seq = 1`, "12345",
	).Scan(&pitch)
	if err != nil {
		t.Fatalf("select seq 1: %v", err)
	}
	if pitch == nil || *pitch != "0.8 ratio" {
		t.Errorf("seq 1 pitch_factor = %v, want 0.8 ratio", pitch)
	}
	err = pool.QueryRow(ctx, `
		SELECT a.pitch_factor
		FROM ctdose.acquisitions a
		JOIN ctdose.reports r USING (report_id)
		WHERE r.patient_id = $1 AND a.seq = 2`, "12345",
	).Scan(&pitch)
	if err != nil {
		t.Fatalf("select seq 2: %v", err)
	}
	if pitch != nil {
		t.Errorf("seq 2 pitch_factor = %q, want NULL", *pitch)
	}
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", false)

	reports := []model.Report{testReport("777", "First", "Second", "Third")}
	if _, err := registry.LoadReports(ctx, pool, log, reports, uuid.New(), "ct_report_777.json"); err != nil {
		t.Fatalf("LoadReports: %v", err)
	}

	rows, err := pool.Query(ctx, `
		SELECT a.protocol
		FROM ctdose.acquisitions a
		JOIN ctdose.reports r USING (report_id)
		WHERE r.patient_id = $1
		ORDER BY a.seq`, "777",
	)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	var protocols []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			t.Fatalf("scan: %v", err)
		}
		protocols = append(protocols, p)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	want := []string{"First", "Second", "Third"}
	if len(protocols) != len(want) {
		t.Fatalf("protocols = %v, want %v", protocols, want)
	}
	for i := range want {
		if protocols[i] != want[i] {
			t.Errorf("seq %d = %q, want %q", i+1, protocols[i], want[i])
		}
	}
}
