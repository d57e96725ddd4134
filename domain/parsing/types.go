package parsing

// Source records where a requirement's threshold came from.
type Source string

const (
	// SourceCode means the threshold was expanded from a standard level code.
	SourceCode Source = "code"
	// SourceDirect means the exam and score were written out in the text.
	SourceDirect Source = "direct"
	// SourceOverride means a code baseline existed and an explicit score replaced it.
	SourceOverride Source = "direct_override"
	// SourceExcluded marks a synthesized record for an exam that was only
	// ever mentioned as disallowed.
	SourceExcluded Source = "excluded"
)

// Requirement is one structured language requirement extracted for a
// university. MinScore is nil for qualitative clauses (waivers, optional
// exams) and for excluded-only records.
type Requirement struct {
	LanguageGroup string   `json:"language_group"`
	ExamType      string   `json:"exam_type"`
	MinScore      *float64 `json:"min_score"`
	LevelCode     string   `json:"level_code,omitempty"`
	IsAvailable   bool     `json:"is_available"`
	Source        Source   `json:"source"`
}

// RequirementSet is the full parse result for one university's
// language-requirement cell.
type RequirementSet struct {
	Requirements []Requirement `json:"requirements"`
	// IsOptional is true when the text says no language score is needed
	// ("면제", "어학성적 없음"). Distinct from exclusion.
	IsOptional bool   `json:"is_optional"`
	RawText    string `json:"raw_text"`
}

// GPA is a parsed grade-point requirement on an explicit scale.
type GPA struct {
	Score float64 `json:"score"`
	Scale float64 `json:"scale"`
}

// Review is the parsed state of the exchange-student review column.
type Review struct {
	Available bool   `json:"available"`
	Year      string `json:"year,omitempty"`
}

// Score returns a pointer to v, for building Requirement literals.
func Score(v float64) *float64 { return &v }
