package parse

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize prepares a raw cell value for pattern matching. It returns
// the normalized text and false when the input is blank.
//
// Steps: NFKC + width folding (spreadsheets mix full-width and half-width
// punctuation), line-break unification, "·" and ";" treated as the
// comma-class separator, whitespace runs collapsed, ASCII case-folded to
// upper. Korean text is untouched by the case fold. Newlines survive so
// the clause splitter can tell line boundaries from in-line lists.
func Normalize(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	s = norm.NFKC.String(s)
	s = width.Fold.String(s)

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "·", ",")
	s = strings.ReplaceAll(s, ";", ",")

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune('\n')
			lastSpace = false
		case r == ' ' || r == '\t' || r == ' ':
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		default:
			b.WriteRune(r)
		}
		lastSpace = false
	}

	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	result := strings.Join(out, "\n")
	if result == "" {
		return "", false
	}
	return result, true
}
