package parse

import (
	"sort"

	"goexchange/domain/parsing"
)

// Assembler merges requirement candidates with exclusion sets for the
// same row. Exclusions flip IsAvailable on matching candidates; an
// excluded exam with no positive mention gets a synthesized record so
// the disallowance is still queryable.
type Assembler struct {
	aliases *AliasTable
}

// NewAssembler builds an assembler over the given alias table.
func NewAssembler(aliases *AliasTable) *Assembler {
	return &Assembler{aliases: aliases}
}

// Merge applies excluded exams to the candidate list. Candidate order is
// preserved; synthesized exclusion-only records append in sorted exam
// order for deterministic output. Duplicate candidates for the same exam
// collapse, explicit scores winning over code-derived ones.
func (a *Assembler) Merge(candidates []parsing.Requirement, excluded map[string]bool) []parsing.Requirement {
	var order []string
	byExam := map[string]parsing.Requirement{}

	for _, c := range candidates {
		existing, seen := byExam[c.ExamType]
		if !seen {
			order = append(order, c.ExamType)
			byExam[c.ExamType] = c
			continue
		}
		if prefer(c, existing) {
			byExam[c.ExamType] = c
		}
	}

	for _, exam := range order {
		if excluded[exam] {
			req := byExam[exam]
			req.IsAvailable = false
			byExam[exam] = req
		}
	}

	var missing []string
	for exam := range excluded {
		if _, seen := byExam[exam]; !seen && a.aliases.Known(exam) {
			missing = append(missing, exam)
		}
	}
	sort.Strings(missing)
	for _, exam := range missing {
		group, _ := a.aliases.Group(exam)
		order = append(order, exam)
		byExam[exam] = parsing.Requirement{
			LanguageGroup: group,
			ExamType:      exam,
			IsAvailable:   false,
			Source:        parsing.SourceExcluded,
		}
	}

	out := make([]parsing.Requirement, 0, len(order))
	for _, exam := range order {
		out = append(out, byExam[exam])
	}
	return out
}

// prefer reports whether candidate should replace incumbent when both
// describe the same exam: explicit scores beat code-derived thresholds.
func prefer(candidate, incumbent parsing.Requirement) bool {
	rank := func(s parsing.Source) int {
		switch s {
		case parsing.SourceOverride:
			return 3
		case parsing.SourceDirect:
			return 2
		case parsing.SourceCode:
			return 1
		}
		return 0
	}
	return rank(candidate.Source) > rank(incumbent.Source)
}
