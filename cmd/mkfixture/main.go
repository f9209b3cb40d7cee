// mkfixture writes synthetic CT dose report PDFs for demos and manual runs.
// Usage: go run ./cmd/mkfixture --out ct_reports --count 3 --acquisitions 2
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lbarbosa/ctdose/internal/fixture"
)

func main() {
	out := flag.String("out", "ct_reports", "output folder")
	count := flag.Int("count", 1, "number of reports to write")
	acquisitions := flag.Int("acquisitions", 2, "acquisition sections per report")
	flag.Parse()

	if *count < 1 || *acquisitions < 0 {
		fmt.Fprintln(os.Stderr, "count must be >= 1 and acquisitions >= 0")
		os.Exit(1)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output folder: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		p := fixture.Default()
		p.PatientID = strconv.Itoa(10000 + i)
		p.StudyID = strconv.Itoa(60000 + i)
		p.Accession = strconv.Itoa(500001 + i)

		// Grow by cloning the first acquisition with a fresh event UID, or
		// trim down to the requested section count.
		for len(p.Acquisitions) < *acquisitions {
			extra := p.Acquisitions[0]
			extra.EventUID = fmt.Sprintf("%s%04d", extra.EventUID[:len(extra.EventUID)-4], len(p.Acquisitions)+1)
			p.Acquisitions = append(p.Acquisitions, extra)
		}
		p.Acquisitions = p.Acquisitions[:*acquisitions]

		path := filepath.Join(*out, fmt.Sprintf("ct_dose_%03d.pdf", i+1))
		if err := fixture.WritePDF(p, path); err != nil {
			fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (patient %s, %d acquisitions)\n", path, p.PatientID, len(p.Acquisitions))
	}
}
