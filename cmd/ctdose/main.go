// ctdose extracts structured dose records from CT radiation dose report
// PDFs, exports them to XLSX/Parquet, and loads them into a Postgres
// dose registry.
package main

import (
	"os"

	"github.com/lbarbosa/ctdose/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
