package parse

import (
	"regexp"
	"strings"
)

// Clause splitting works on normalized text. A new clause starts at a
// line break, or mid-line when a fresh exam mention appears after the
// running clause already holds a complete exam+score or level-code pair.
var (
	examMention = regexp.MustCompile(`신?HSK|TOEFL|토플|TOEIC|토익|IELTS|ITELTS|IETS|아이엘츠|DUOLINGO|듀오링고|JLPT|JPT|DELF|ZD|TOPIK|토픽`)
	codeMention = regexp.MustCompile(`\bEU_[A-E][1-5]\b|\b[A-E]-?[1-5]\b`)
	scoredExam  = regexp.MustCompile(`(?:신?HSK|TOEFL(?:\s*(?:ITP|PBT|\(?IBT\)?))?|토플|TOEIC|토익|IELTS|ITELTS|IETS|아이엘츠|DUOLINGO|듀오링고|JLPT\s*N?|JPT|TOPIK|토픽)\s*[\d,]+|(?:DELF|ZD)\s*[A-C][1-5]`)
)

// SplitClauses breaks a normalized field into ordered requirement
// clauses. Eager and deterministic; never fails.
func SplitClauses(normalized string) []string {
	if normalized == "" {
		return nil
	}

	var clauses []string
	for _, line := range strings.Split(normalized, "\n") {
		clauses = append(clauses, splitLine(line)...)
	}
	return clauses
}

func splitLine(line string) []string {
	mentions := examMention.FindAllStringIndex(line, -1)
	if len(mentions) < 2 {
		if trimClause(line) == "" {
			return nil
		}
		return []string{trimClause(line)}
	}

	var parts []string
	start := 0
	for _, m := range mentions {
		if m[0] <= start {
			continue
		}
		segment := line[start:m[0]]
		if clauseComplete(segment) {
			parts = append(parts, trimClause(segment))
			start = m[0]
		}
	}
	if tail := trimClause(line[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// trimClause drops surrounding whitespace and dangling list separators.
func trimClause(s string) string {
	return strings.Trim(s, " \t,/")
}

// clauseComplete reports whether a segment already carries a full
// requirement statement: an exam with a score, or a standard level code.
func clauseComplete(segment string) bool {
	return scoredExam.MatchString(segment) || codeMention.MatchString(segment)
}
