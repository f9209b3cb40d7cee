package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var fourDigitYear = regexp.MustCompile(`(\d{4})`)

var monthTokens = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// YearFrom recovers a four-digit year from a loosely formatted date string.
// It tries a direct digit-run search first, then the "Jul 1, 1997" form: a
// month token present, commas dropped, year as the third whitespace field.
func YearFrom(s string) (int, bool) {
	if m := fourDigitYear.FindStringSubmatch(s); m != nil {
		y, err := strconv.Atoi(m[1])
		return y, err == nil
	}
	for _, month := range monthTokens {
		if !strings.Contains(s, month) {
			continue
		}
		parts := strings.Fields(strings.ReplaceAll(s, ",", ""))
		if len(parts) >= 3 && len(parts[2]) == 4 {
			if y, err := strconv.Atoi(parts[2]); err == nil {
				return y, true
			}
		}
		break
	}
	return 0, false
}

// AgeBetween derives an approximate age from a birth-date and an exam-date
// string: the simple difference of the recovered years, as a string. Month
// and day are ignored, so the result can be off by one relative to calendar
// age; that imprecision is accepted, not a defect. Returns "-" when either
// year cannot be recovered.
func AgeBetween(birthDate, examDate string) string {
	if birthDate == "" || examDate == "" {
		return "-"
	}
	birthYear, ok := YearFrom(birthDate)
	if !ok {
		return "-"
	}
	examYear, ok := YearFrom(examDate)
	if !ok {
		return "-"
	}
	return strconv.Itoa(examYear - birthYear)
}
