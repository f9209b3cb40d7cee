package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lbarbosa/ctdose/internal/model"
)

const sheetName = "CT Reports"

// Column widths follow the review template the dose sheets circulate in.
var columnWidths = []float64{15, 10, 18, 10, 20, 18, 20, 15, 10, 10, 10, 10, 10, 15, 10, 15}

// WriteXLSX writes one styled worksheet, a header row plus one row per
// flattened acquisition, and returns the data row count. Zero rows still
// produce a workbook with headers.
func WriteXLSX(rows []model.Row, path string) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, fmt.Errorf("name sheet: %w", err)
	}

	borders := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    borders,
	})
	if err != nil {
		return 0, fmt.Errorf("header style: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return 0, fmt.Errorf("data style: %w", err)
	}

	write := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheetName, cell, v)
	}

	headers := model.RowHeaders()
	for i, h := range headers {
		if err := write(i+1, 1, h); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
	}
	for i := range rows {
		for j, v := range rows[i].Cells() {
			if err := write(j+1, i+2, v); err != nil {
				return 0, fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	headerEnd, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", headerEnd, headerStyle); err != nil {
		return 0, fmt.Errorf("style header: %w", err)
	}
	if len(rows) > 0 {
		dataEnd, _ := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
		if err := f.SetCellStyle(sheetName, "A2", dataEnd, dataStyle); err != nil {
			return 0, fmt.Errorf("style rows: %w", err)
		}
	}
	for i, w := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return 0, fmt.Errorf("set width %s: %w", col, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save %s: %w", path, err)
	}
	return len(rows), nil
}
