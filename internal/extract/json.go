package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lbarbosa/ctdose/internal/model"
)

// WriteReportsJSON writes reports as a JSON array with two-space indent and
// UTF-8 kept literal, matching the report files already in circulation.
// Per-report files carry an array of one.
func WriteReportsJSON(path string, reports []model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
