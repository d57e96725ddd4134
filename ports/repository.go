package ports

import (
	"context"

	"goexchange/domain/university"
)

// UniversityRepository persists universities and their language
// requirements. Implementations match on the (name_eng, nation)
// business key so the same school accumulates across recruitment cycles.
type UniversityRepository interface {
	FindByBusinessKey(ctx context.Context, nameEng, nation string) (*university.University, error)
	Insert(ctx context.Context, u *university.University) (int64, error)
	Update(ctx context.Context, u *university.University) error

	// ReplaceLanguageRequirements deletes and reinserts the requirement
	// rows for one university in a single transaction.
	ReplaceLanguageRequirements(ctx context.Context, universityID int64, rows []university.LanguageRequirement) error

	GetByID(ctx context.Context, id int64) (*university.University, error)
	List(ctx context.Context) ([]university.University, error)
	RequirementsByUniversity(ctx context.Context, universityID int64) ([]university.LanguageRequirement, error)
	AllRequirements(ctx context.Context) ([]university.LanguageRequirement, error)

	// SearchByLanguage returns universities whose stored minimum for the
	// exam is within the user's score, skipping unavailable exams.
	SearchByLanguage(ctx context.Context, examType string, userScore float64) ([]university.University, error)
}
