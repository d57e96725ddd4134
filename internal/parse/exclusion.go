package parse

import (
	"regexp"
	"strings"
)

// exclusionRule is one declarative negation matcher over note text. The
// first capture group holds the candidate exam list. Rules run per line
// in priority order; their effects union.
type exclusionRule struct {
	name string
	re   *regexp.Regexp
}

var exclusionRules = []exclusionRule{
	// "(IELTS, TOEIC 제외)" trailing an acceptance statement.
	{name: "paren-list", re: regexp.MustCompile(`\(([^()]*?)\s*(?:제외|불가)\)`)},
	// "ITP 제외", "TOEIC, ITP 제외", "TOEIC/TOEFL_ITP 제외", "* TOEIC 불가".
	{name: "list-before-keyword", re: regexp.MustCompile(`([A-Za-z가-힣][A-Za-z0-9_가-힣./,\s]*?)\s*(?:제외|불가)`)},
}

var exclusionTokenSplit = regexp.MustCompile(`[,/()\[\]\s]+`)

// multi-word exam labels are fused before tokenizing so a later split on
// whitespace cannot break them apart.
var examFusions = []struct{ from, to string }{
	{"TOEFL ITP", "TOEFL_ITP"},
	{"TOEFL PBT", "TOEFL_ITP"},
	{"TOEFL IBT", "TOEFL"},
	{"TOEFL(IBT)", "TOEFL"},
	{"TOEFL (IBT)", "TOEFL"},
}

// ExclusionDetector finds negated exam mentions in free-text notes.
// Matched labels are resolved through the alias table; anything outside
// the closed vocabulary is discarded so an unknown variant ("TOEFL Home
// Edition") never excludes a tracked exam.
type ExclusionDetector struct {
	aliases *AliasTable
}

// NewExclusionDetector builds a detector over the given alias table.
func NewExclusionDetector(aliases *AliasTable) *ExclusionDetector {
	return &ExclusionDetector{aliases: aliases}
}

// Detect returns the set of canonical exam codes the note marks as
// unavailable. Total: malformed or unrelated notes yield an empty map.
func (d *ExclusionDetector) Detect(normalized string) map[string]bool {
	excluded := map[string]bool{}
	if normalized == "" {
		return excluded
	}

	fused := normalized
	for _, f := range examFusions {
		fused = strings.ReplaceAll(fused, f.from, f.to)
	}

	for _, line := range strings.Split(fused, "\n") {
		for _, rule := range exclusionRules {
			for _, m := range rule.re.FindAllStringSubmatch(line, -1) {
				d.collect(m[1], excluded)
			}
		}
	}
	return excluded
}

// collect resolves the candidate list in reverse order, nearest token to
// the keyword first, and stops at the first token that is not a known
// exam label. Stopping keeps "TOEFL HOME EDITION 제외" from reaching back
// and excluding plain TOEFL.
func (d *ExclusionDetector) collect(candidates string, excluded map[string]bool) {
	tokens := exclusionTokenSplit.Split(candidates, -1)
	for i := len(tokens) - 1; i >= 0; i-- {
		token := strings.TrimSpace(tokens[i])
		if token == "" {
			continue
		}
		code, ok := d.aliases.Resolve(token)
		if !ok {
			// Unknown label or Korean connective text marks the start
			// of the list; anything further back is unrelated.
			break
		}
		excluded[code] = true
	}
}
