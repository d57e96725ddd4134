// Package cleaner scrubs extracted rows before parsing: whitespace
// normalization, merged-column forward fill, GPA pre-normalization, and
// summary-row removal.
package cleaner

import (
	"regexp"
	"strings"

	"goexchange/ports"
)

// Columns that arrive merged in the source workbooks and need forward
// filling once the merge fan-out leaves later rows blank in older
// vintages.
var forwardFillColumns = []string{"nation", "region", "program_type", "institution"}

var (
	summaryRow   = regexp.MustCompile(`합계|소계|총계|대학명|개국`)
	gpaScaled    = regexp.MustCompile(`^\d+(?:\.\d+)?/\d+(?:\.\d+)?$`)
	gpaWithFloor = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*이상`)
	gpaBare      = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// defaultGPAScale is the home institution's grading scale, assumed when
// a cell gives only a floor like "3.0 이상".
const defaultGPAScale = "4.5"

// Cleaner holds the cleaning configuration.
type Cleaner struct {
	excludedInstitutions map[string]bool
}

// New builds a cleaner. Rows whose institution is in excluded are
// dropped (partner networks, not direct exchange schools).
func New(excludedInstitutions []string) *Cleaner {
	set := make(map[string]bool, len(excludedInstitutions))
	for _, inst := range excludedInstitutions {
		set[strings.ToUpper(strings.TrimSpace(inst))] = true
	}
	return &Cleaner{excludedInstitutions: set}
}

// Clean runs all cleaning steps over the sheet in place-order and
// returns the surviving rows.
func (c *Cleaner) Clean(sheet *ports.Sheet) []ports.Row {
	rows := make([]ports.Row, 0, len(sheet.Rows))

	fill := map[string]string{}
	for _, row := range sheet.Rows {
		cleaned := ports.Row{}
		for key, value := range row {
			cleaned[key] = scrub(value)
		}

		// Emptiness is judged before forward filling so a blank trailing
		// row cannot inherit a nation and slip past the filter.
		if cleaned["name_kor"] == "" && cleaned["nation"] == "" {
			continue
		}

		for _, col := range forwardFillColumns {
			if cleaned[col] == "" {
				cleaned[col] = fill[col]
			} else {
				fill[col] = cleaned[col]
			}
		}

		if cleaned["program_type"] != "" {
			cleaned["program_type"] = strings.ReplaceAll(cleaned["program_type"], "\n", "")
		}
		if raw := cleaned["min_gpa"]; raw != "" {
			cleaned["min_gpa"] = NormalizeGPA(raw)
		}

		if !c.keep(cleaned) {
			continue
		}
		rows = append(rows, cleaned)
	}
	return rows
}

// NormalizeGPA rewrites free-form GPA cells into score/scale form.
// "3.0 이상" and bare "3.0" become "3.0/4.5"; already-scaled values pass
// through; anything else is returned unchanged for the parser to judge.
func NormalizeGPA(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if gpaScaled.MatchString(value) {
		return value
	}
	if m := gpaWithFloor.FindStringSubmatch(value); m != nil {
		return m[1] + "/" + defaultGPAScale
	}
	if m := gpaBare.FindStringSubmatch(value); m != nil {
		return m[1] + "/" + defaultGPAScale
	}
	return value
}

func (c *Cleaner) keep(row ports.Row) bool {
	if nameKor := row["name_kor"]; nameKor != "" && summaryRow.MatchString(nameKor) {
		return false
	}
	if inst := strings.ToUpper(row["institution"]); inst != "" && c.excludedInstitutions[inst] {
		return false
	}
	return true
}

// scrub trims a cell and collapses internal whitespace runs, keeping
// line breaks because the parser's clause splitter relies on them.
func scrub(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
	}
	out := strings.Join(lines, "\n")
	return strings.Trim(out, "\n ")
}
