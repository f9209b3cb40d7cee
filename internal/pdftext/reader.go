// Package pdftext reads the text layer of dose report PDFs, preserving the
// row structure the extraction heuristics depend on.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadText extracts the text layer page by page, top to bottom, one output
// line per text row. Fragments within a row are joined with a single space;
// normalization downstream collapses any doubling.
func ReadText(path string) (text string, err error) {
	// The reader panics on some malformed files; turn that into an error so
	// one bad document cannot take down a folder run.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d of %s: %w", pageNum, path, err)
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(word.S)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
