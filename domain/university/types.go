package university

import "goexchange/domain/parsing"

// University is one partner school row as persisted. The business key
// used for upserts across recruitment cycles is (NameEng, Nation).
type University struct {
	ID              int64  `db:"id" json:"id"`
	Semester        string `db:"semester" json:"semester"`
	Region          string `db:"region" json:"region"`
	Nation          string `db:"nation" json:"nation"`
	NameKor         string `db:"name_kor" json:"name_kor"`
	NameEng         string `db:"name_eng" json:"name_eng"`
	Badge           string `db:"badge" json:"badge,omitempty"`
	MinGPA          float64 `db:"min_gpa" json:"min_gpa"`
	SignificantNote string `db:"significant_note" json:"significant_note,omitempty"`
	Remark          string `db:"remark" json:"remark"`
	AvailableMajors string `db:"available_majors" json:"available_majors,omitempty"`
	WebsiteURL      string `db:"website_url" json:"website_url,omitempty"`
	IsExchange      bool   `db:"is_exchange" json:"is_exchange"`
	IsVisit         bool   `db:"is_visit" json:"is_visit"`
	HasReview       bool   `db:"has_review" json:"has_review"`
	ReviewYear      string `db:"review_year" json:"review_year,omitempty"`
}

// LanguageRequirement is one persisted requirement row for a university.
type LanguageRequirement struct {
	ID            int64    `db:"id" json:"id"`
	UniversityID  int64    `db:"university_id" json:"university_id"`
	LanguageGroup string   `db:"language_group" json:"language_group"`
	ExamType      string   `db:"exam_type" json:"exam_type"`
	MinScore      *float64 `db:"min_score" json:"min_score"`
	LevelCode     *string  `db:"level_code" json:"level_code"`
	IsAvailable   bool     `db:"is_available" json:"is_available"`
}

// FromParsed converts an assembled parse result into persistable rows.
func FromParsed(universityID int64, reqs []parsing.Requirement) []LanguageRequirement {
	out := make([]LanguageRequirement, 0, len(reqs))
	for _, r := range reqs {
		row := LanguageRequirement{
			UniversityID:  universityID,
			LanguageGroup: r.LanguageGroup,
			ExamType:      r.ExamType,
			MinScore:      r.MinScore,
			IsAvailable:   r.IsAvailable,
		}
		if r.LevelCode != "" {
			lc := r.LevelCode
			row.LevelCode = &lc
		}
		out = append(out, row)
	}
	return out
}

// FileMetadata is what the extract layer derives from a workbook filename.
type FileMetadata struct {
	Semester         string `json:"semester"`
	RecruitmentRound string `json:"recruitment_round"`
	Filename         string `json:"filename"`
}

// LoadStats accumulates upsert counters for one ETL run or file.
type LoadStats struct {
	Inserted     int `json:"inserted"`
	Updated      int `json:"updated"`
	Skipped      int `json:"skipped"`
	LanguageReqs int `json:"language_reqs"`
}

// Add accumulates another stats block into s.
func (s *LoadStats) Add(other LoadStats) {
	s.Inserted += other.Inserted
	s.Updated += other.Updated
	s.Skipped += other.Skipped
	s.LanguageReqs += other.LanguageReqs
}
