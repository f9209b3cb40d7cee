package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lbarbosa/ctdose/internal/model"
)

// LoadReports reads the report batch to export and returns it with the path
// actually used. The aggregate file is preferred; when it is missing, the
// first report file in the folder stands in, so a single extracted report
// can be exported without re-running the batch.
func LoadReports(log zerolog.Logger, folder, aggregateFile string) ([]model.Report, string, error) {
	path := filepath.Join(folder, aggregateFile)
	if _, err := os.Stat(path); err != nil {
		candidates, globErr := filepath.Glob(filepath.Join(folder, "*.json"))
		if globErr != nil {
			return nil, "", fmt.Errorf("scan %s: %w", folder, globErr)
		}
		if len(candidates) == 0 {
			return nil, "", fmt.Errorf("no report JSON files in %s", folder)
		}
		path = candidates[0]
		log.Info().Str("file", path).Msg("aggregate missing, using first report file")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	// Files carry either an array of reports or one bare report object.
	var elements []json.RawMessage
	if trimmed := bytes.TrimLeft(raw, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		var single json.RawMessage
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, "", fmt.Errorf("parse %s: %w", path, err)
		}
		elements = []json.RawMessage{single}
		log.Info().Str("file", path).Msg("single report object, treated as a batch of one")
	}

	// Schema violations warn and move on; only a structurally unreadable
	// element is dropped.
	reports := make([]model.Report, 0, len(elements))
	for i, el := range elements {
		var v any
		if err := json.Unmarshal(el, &v); err != nil {
			log.Warn().Err(err).Int("report", i).Str("file", path).Msg("report skipped, unreadable")
			continue
		}
		if err := ValidateReport(v); err != nil {
			log.Warn().Err(err).Int("report", i).Str("file", path).Msg("report does not match schema")
		}
		var r model.Report
		if err := json.Unmarshal(el, &r); err != nil {
			log.Warn().Err(err).Int("report", i).Str("file", path).Msg("report skipped, unreadable")
			continue
		}
		reports = append(reports, r)
	}
	return reports, path, nil
}
