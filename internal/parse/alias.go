package parse

import (
	"regexp"
	"strings"
)

// Canonical exam codes. Tokens outside this closed set are dropped during
// resolution rather than reported as errors.
const (
	ExamTOEFL    = "TOEFL"
	ExamTOEFLITP = "TOEFL_ITP"
	ExamTOEIC    = "TOEIC"
	ExamIELTS    = "IELTS"
	ExamDuolingo = "DUOLINGO"
	ExamHSK      = "HSK"
	ExamJLPT     = "JLPT"
	ExamJPT      = "JPT"
	ExamDELF     = "DELF"
	ExamZD       = "ZD"
	ExamTOPIK    = "TOPIK"
)

// Language groups for the supported exams.
const (
	GroupEnglish  = "ENGLISH"
	GroupChinese  = "CHINESE"
	GroupJapanese = "JAPANESE"
	GroupFrench   = "FRENCH"
	GroupGerman   = "GERMAN"
	GroupKorean   = "KOREAN"
)

// AliasTable maps raw exam-name spellings to canonical codes. Built once
// at startup and read-only afterwards.
type AliasTable struct {
	aliases map[string]string
	groups  map[string]string
}

var trailingQualifier = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// NewAliasTable builds the default table covering the spellings seen in
// the recruitment spreadsheets.
func NewAliasTable() *AliasTable {
	t := &AliasTable{
		aliases: map[string]string{
			"TOEFL":      ExamTOEFL,
			"TOEFL IBT":  ExamTOEFL,
			"TOEFL_IBT":  ExamTOEFL,
			"IBT":        ExamTOEFL,
			"토플":         ExamTOEFL,
			"TOEFL ITP":  ExamTOEFLITP,
			"TOEFL_ITP":  ExamTOEFLITP,
			"TOEFL PBT":  ExamTOEFLITP,
			"TOEFL_PBT":  ExamTOEFLITP,
			"ITP":        ExamTOEFLITP,
			"PBT":        ExamTOEFLITP,
			"TOEIC":      ExamTOEIC,
			"토익":         ExamTOEIC,
			"IELTS":      ExamIELTS,
			"ITELTS":     ExamIELTS,
			"IETS":       ExamIELTS,
			"아이엘츠":       ExamIELTS,
			"DUOLINGO":   ExamDuolingo,
			"듀오링고":       ExamDuolingo,
			"HSK":        ExamHSK,
			"신HSK":       ExamHSK,
			"JLPT":       ExamJLPT,
			"JPT":        ExamJPT,
			"DELF":       ExamDELF,
			"ZD":         ExamZD,
			"TOPIK":      ExamTOPIK,
			"토픽":         ExamTOPIK,
		},
		groups: map[string]string{
			ExamTOEFL:    GroupEnglish,
			ExamTOEFLITP: GroupEnglish,
			ExamTOEIC:    GroupEnglish,
			ExamIELTS:    GroupEnglish,
			ExamDuolingo: GroupEnglish,
			ExamHSK:      GroupChinese,
			ExamJLPT:     GroupJapanese,
			ExamJPT:      GroupJapanese,
			ExamDELF:     GroupFrench,
			ExamZD:       GroupGerman,
			ExamTOPIK:    GroupKorean,
		},
	}
	return t
}

// Resolve returns the canonical code for a raw exam label. Lookup is
// exact after trimming, ASCII case-folding, and stripping a trailing
// parenthetical qualifier ("TOEFL(IBT)" -> "TOEFL").
func (t *AliasTable) Resolve(token string) (string, bool) {
	key := strings.TrimSpace(token)
	if key == "" {
		return "", false
	}
	key = trailingQualifier.ReplaceAllString(key, "")
	key = strings.ToUpper(strings.TrimSpace(key))
	key = strings.Trim(key, ".,;:*")
	if key == "" {
		return "", false
	}
	code, ok := t.aliases[key]
	return code, ok
}

// Group returns the language group for a canonical exam code.
func (t *AliasTable) Group(exam string) (string, bool) {
	g, ok := t.groups[exam]
	return g, ok
}

// Known reports whether exam is one of the canonical codes.
func (t *AliasTable) Known(exam string) bool {
	_, ok := t.groups[exam]
	return ok
}
