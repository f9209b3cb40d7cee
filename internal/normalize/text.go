package normalize

import (
	"regexp"
	"strings"
)

// Space-like Unicode that PDF text layers leak into extracted strings.
var spaceLike = strings.NewReplacer(
	" ", " ", // no-break space
	" ", " ", // en quad
	" ", " ", // em quad
	" ", " ", // thin space
	" ", " ", // hair space
	" ", " ", // narrow no-break space
)

// Zero-width characters delete to nothing.
var zeroWidth = strings.NewReplacer(
	"​", "", // zero-width space
	"‌", "", // zero-width non-joiner
	"‍", "", // zero-width joiner
	"﻿", "", // zero-width no-break space / BOM
)

var (
	splitTime = regexp.MustCompile(`(\d{1,2}:\d{2}:)\s+(\d{2})`)
	spaceRuns = regexp.MustCompile(` {2,}`)
)

// CleanText normalizes text coming out of a PDF text layer: space-like
// Unicode becomes an ordinary space, zero-width characters are dropped, runs
// of spaces collapse to one, and an "HH:MM:" separated from its seconds by a
// line wrap is rejoined. Newlines survive; line structure carries meaning
// for the record builder. Idempotent.
func CleanText(s string) string {
	s = spaceLike.Replace(s)
	s = zeroWidth.Replace(s)
	s = splitTime.ReplaceAllString(s, "${1}${2}")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
