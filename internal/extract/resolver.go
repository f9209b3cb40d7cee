package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lbarbosa/ctdose/internal/normalize"
)

// Pattern is one compiled candidate for a catalogue field. notAfter, when
// set, rejects matches immediately preceded by that prefix; it stands in
// for the lookbehind Go's regexp engine does not carry.
type Pattern struct {
	re       *regexp.Regexp
	notAfter string
}

// All catalogue matching is case-insensitive, and $ anchors at line ends
// because values sit mid-document.
const patternFlags = `(?im)`

func compile(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(patternFlags + expr)}
}

func compileNotAfter(expr, prefix string) Pattern {
	p := compile(expr)
	p.notAfter = prefix
	return p
}

// CompileExtra compiles one overlay pattern. The expression must compile
// under the catalogue flags and carry exactly one capture group.
func CompileExtra(expr string) (Pattern, error) {
	re, err := regexp.Compile(patternFlags + expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("compile %q: %w", expr, err)
	}
	if n := re.NumSubexp(); n != 1 {
		return Pattern{}, fmt.Errorf("pattern %q has %d capture groups, want 1", expr, n)
	}
	return Pattern{re: re}, nil
}

// Resolve tries each pattern in order against the text and returns the
// first capture, cleaned, or "" when nothing matches. Earlier patterns in
// a chain are the stricter forms; later ones are looser fallbacks.
func Resolve(text string, patterns []Pattern) string {
	for _, p := range patterns {
		if v, ok := p.capture(text); ok {
			return normalize.CleanText(v)
		}
	}
	return ""
}

// capture returns the first submatch, honoring the notAfter guard: a match
// starting right after the guard prefix is skipped and the search continues
// at the next candidate.
func (p Pattern) capture(text string) (string, bool) {
	if p.notAfter == "" {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
	n := len(p.notAfter)
	for _, idx := range p.re.FindAllStringSubmatchIndex(text, -1) {
		if start := idx[0]; start >= n && strings.EqualFold(text[start-n:start], p.notAfter) {
			continue
		}
		return text[idx[2]:idx[3]], true
	}
	return "", false
}
