package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	rows := FlattenReport(sampleReport())
	path := filepath.Join(t.TempDir(), "out.xlsx")

	n, err := WriteXLSX(rows, path)
	if err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	if n != len(rows) {
		t.Errorf("row count = %d, want %d", n, len(rows))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetName(0); got != "CT Reports" {
		t.Errorf("sheet = %q, want %q", got, "CT Reports")
	}

	cellChecks := []struct {
		cell string
		want string
	}{
		{"A1", "Patient ID"},
		{"E1", "Subject of Interest"},
		{"G1", "Series Description"},
		{"I1", "mAs"},
		{"M1", "DLP Total"},
		{"P1", "Avg Scan Size"},
		{"A2", "12345"},
		{"E2", "Chest Routine"},
		{"G2", "Chest wo contrast"},
		{"I2", "179 mA"},
		{"M2", "625.01 mGy.cm"},
		{"P2", "-"},
		{"G3", "-"},
		{"M3", "625.01 mGy.cm"},
	}
	for _, c := range cellChecks {
		got, err := f.GetCellValue("CT Reports", c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s = %q, want %q", c.cell, got, c.want)
		}
	}

	width, err := f.GetColWidth("CT Reports", "A")
	if err != nil {
		t.Fatalf("GetColWidth: %v", err)
	}
	if width != 15 {
		t.Errorf("column A width = %v, want 15", width)
	}
}

func TestWriteXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	n, err := WriteXLSX(nil, path)
	if err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	if n != 0 {
		t.Errorf("row count = %d, want 0", n)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("CT Reports", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "Patient ID" {
		t.Errorf("A1 = %q, want header row even with no data", got)
	}
}
