package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePatterns(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write patterns file: %v", err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writePatterns(t, "extra_patterns:\n  patient_id:\n    - 'Pt #\\s*(\\d+)'\n  comment:\n    - 'Note:\\s*(.+)'\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.ExtraPatterns) != 2 {
		t.Fatalf("expected 2 overlay fields, got %d", len(c.ExtraPatterns))
	}
	if got := c.ExtraPatterns["patient_id"]; len(got) != 1 || got[0] != `Pt #\s*(\d+)` {
		t.Errorf("unexpected patient_id overlay: %v", got)
	}
}

func TestLoadFromFile_UnknownField(t *testing.T) {
	path := writePatterns(t, "extra_patterns:\n  bogus_field:\n    - '(\\d+)'\n")

	var c Config
	err := c.LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for unknown pattern field")
	}
	if !strings.Contains(err.Error(), "bogus_field") {
		t.Errorf("error does not name the field: %v", err)
	}
}

func TestLoadFromFile_BadPattern(t *testing.T) {
	path := writePatterns(t, "extra_patterns:\n  patient_id:\n    - 'Pt #(\\d+'\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unparsable pattern")
	}
}

func TestLoadFromFile_WrongGroupCount(t *testing.T) {
	path := writePatterns(t, "extra_patterns:\n  patient_id:\n    - 'Pt (#)(\\d+)'\n")

	var c Config
	err := c.LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for two capture groups")
	}
	if !strings.Contains(err.Error(), "capture groups") {
		t.Errorf("error does not mention capture groups: %v", err)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/patterns.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_LogFormat(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		c := Config{LogFormat: format}
		if err := c.Validate(); err != nil {
			t.Errorf("Validate(%q): %v", format, err)
		}
	}
	c := Config{LogFormat: "yaml"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
}

func TestValidateExtract(t *testing.T) {
	c := Config{LogFormat: "text", InputFolder: "in", OutputFolder: "out", AggregateFile: "all.json"}
	if err := c.ValidateExtract(); err != nil {
		t.Fatalf("ValidateExtract: %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Config)
		want string
	}{
		{"missing_folder", func(c *Config) { c.InputFolder = "" }, "--folder"},
		{"missing_output_folder", func(c *Config) { c.OutputFolder = "" }, "--output-folder"},
		{"missing_aggregate", func(c *Config) { c.AggregateFile = "" }, "--output"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := c
			tc.mut(&bad)
			err := bad.ValidateExtract()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateExport(t *testing.T) {
	c := Config{LogFormat: "text", OutputFolder: "json", XLSXPath: "report.xlsx"}
	if err := c.ValidateExport(); err != nil {
		t.Fatalf("ValidateExport: %v", err)
	}

	c.XLSXPath = ""
	err := c.ValidateExport()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "--output") {
		t.Errorf("error %q does not mention --output", err)
	}
}

func TestValidateWithDSN(t *testing.T) {
	c := Config{LogFormat: "text", DSN: "postgres://localhost/ctdose"}
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}

	c.DSN = ""
	err := c.ValidateWithDSN()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "CTDOSE_DB_URL") {
		t.Errorf("error %q does not mention the env fallback", err)
	}
}
