package extract

import "regexp"

// Acquisition section headings are numbered, e.g. "5.1 CT Acquisition".
// Deliberately case-sensitive: source documents are consistent here, and a
// loose match would split on running text.
var acquisitionHeading = regexp.MustCompile(`\d+\.\d+\s+CT\s+Acquisition`)

// SplitAcquisitions partitions document text at each acquisition heading
// and returns the segments following each one, in document order. The
// preamble before the first heading is dropped. No headings, no segments.
func SplitAcquisitions(text string) []string {
	parts := acquisitionHeading.Split(text, -1)
	if len(parts) < 2 {
		return nil
	}
	return parts[1:]
}
