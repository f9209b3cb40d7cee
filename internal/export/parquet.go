package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/lbarbosa/ctdose/internal/model"
)

// WriteParquet writes the flattened rows as a Parquet file carrying the same
// column set as the worksheet.
func WriteParquet(rows []model.Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := parquet.NewGenericWriter[model.Row](f)
	if _, err := w.Write(rows); err != nil {
		w.Close()
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close %s: %w", path, err)
	}
	return f.Close()
}
