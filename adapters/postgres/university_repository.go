package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"goexchange/domain/university"
	"goexchange/internal/errors"
	"goexchange/ports"
)

const universityColumns = `id, semester, region, nation, name_kor, name_eng, badge, min_gpa,
	significant_note, remark, available_majors, website_url,
	is_exchange, is_visit, has_review, review_year`

// universityRepository implements ports.UniversityRepository on Postgres.
type universityRepository struct {
	db *sqlx.DB
}

// NewUniversityRepository creates a new university repository.
func NewUniversityRepository(db *sqlx.DB) ports.UniversityRepository {
	return &universityRepository{db: db}
}

// FindByBusinessKey looks a university up by (name_eng, nation); nil
// when absent.
func (r *universityRepository) FindByBusinessKey(ctx context.Context, nameEng, nation string) (*university.University, error) {
	query := `SELECT ` + universityColumns + ` FROM university WHERE name_eng = $1 AND nation = $2`

	var u university.University
	err := r.db.GetContext(ctx, &u, query, nameEng, nation)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find university: %w", err)
	}
	return &u, nil
}

// Insert stores a new university and returns its generated ID.
func (r *universityRepository) Insert(ctx context.Context, u *university.University) (int64, error) {
	query := `INSERT INTO university (
		semester, region, nation, name_kor, name_eng, badge, min_gpa,
		significant_note, remark, available_majors, website_url,
		is_exchange, is_visit, has_review, review_year
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		u.Semester, u.Region, u.Nation, u.NameKor, u.NameEng, u.Badge, u.MinGPA,
		u.SignificantNote, u.Remark, u.AvailableMajors, u.WebsiteURL,
		u.IsExchange, u.IsVisit, u.HasReview, u.ReviewYear,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert university: %w", err)
	}
	u.ID = id
	return id, nil
}

// Update rewrites all mutable columns of an existing university.
func (r *universityRepository) Update(ctx context.Context, u *university.University) error {
	query := `UPDATE university SET
		semester = $1, region = $2, nation = $3, name_kor = $4, badge = $5,
		min_gpa = $6, significant_note = $7, remark = $8, available_majors = $9,
		website_url = $10, is_exchange = $11, is_visit = $12,
		has_review = $13, review_year = $14
	WHERE id = $15`

	_, err := r.db.ExecContext(ctx, query,
		u.Semester, u.Region, u.Nation, u.NameKor, u.Badge,
		u.MinGPA, u.SignificantNote, u.Remark, u.AvailableMajors,
		u.WebsiteURL, u.IsExchange, u.IsVisit,
		u.HasReview, u.ReviewYear, u.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}
	return nil
}

// ReplaceLanguageRequirements deletes and reinserts the requirement rows
// for one university in a single transaction.
func (r *universityRepository) ReplaceLanguageRequirements(ctx context.Context, universityID int64, rows []university.LanguageRequirement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM language_requirement WHERE university_id = $1`, universityID); err != nil {
		return fmt.Errorf("failed to clear requirements: %w", err)
	}

	insert := `INSERT INTO language_requirement (
		university_id, language_group, exam_type, min_score, level_code, is_available
	) VALUES ($1, $2, $3, $4, $5, $6)`
	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, insert,
			universityID, row.LanguageGroup, row.ExamType, row.MinScore, row.LevelCode, row.IsAvailable); err != nil {
			return fmt.Errorf("failed to insert requirement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit requirements: %w", err)
	}
	return nil
}

// GetByID retrieves a university by its ID.
func (r *universityRepository) GetByID(ctx context.Context, id int64) (*university.University, error) {
	query := `SELECT ` + universityColumns + ` FROM university WHERE id = $1`

	var u university.University
	err := r.db.GetContext(ctx, &u, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("university")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get university: %w", err)
	}
	return &u, nil
}

// List returns all universities ordered by Korean name.
func (r *universityRepository) List(ctx context.Context) ([]university.University, error) {
	query := `SELECT ` + universityColumns + ` FROM university ORDER BY name_kor`

	var out []university.University
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("failed to list universities: %w", err)
	}
	return out, nil
}

// RequirementsByUniversity returns the stored requirement rows for one
// university.
func (r *universityRepository) RequirementsByUniversity(ctx context.Context, universityID int64) ([]university.LanguageRequirement, error) {
	query := `SELECT id, university_id, language_group, exam_type, min_score, level_code, is_available
	FROM language_requirement WHERE university_id = $1 ORDER BY exam_type`

	var out []university.LanguageRequirement
	if err := r.db.SelectContext(ctx, &out, query, universityID); err != nil {
		return nil, fmt.Errorf("failed to get requirements: %w", err)
	}
	return out, nil
}

// AllRequirements returns every stored requirement row.
func (r *universityRepository) AllRequirements(ctx context.Context) ([]university.LanguageRequirement, error) {
	query := `SELECT id, university_id, language_group, exam_type, min_score, level_code, is_available
	FROM language_requirement ORDER BY university_id, exam_type`

	var out []university.LanguageRequirement
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("failed to get requirements: %w", err)
	}
	return out, nil
}

// SearchByLanguage finds universities reachable with the given exam and
// score, excluding requirements marked unavailable.
func (r *universityRepository) SearchByLanguage(ctx context.Context, examType string, userScore float64) ([]university.University, error) {
	query := `SELECT DISTINCT u.id, u.semester, u.region, u.nation, u.name_kor, u.name_eng,
		u.badge, u.min_gpa, u.significant_note, u.remark, u.available_majors, u.website_url,
		u.is_exchange, u.is_visit, u.has_review, u.review_year
	FROM university u
	JOIN language_requirement lr ON lr.university_id = u.id
	WHERE lr.exam_type = $1 AND lr.is_available = TRUE
	  AND lr.min_score IS NOT NULL AND lr.min_score <= $2
	ORDER BY u.name_kor`

	var out []university.University
	if err := r.db.SelectContext(ctx, &out, query, examType, userScore); err != nil {
		return nil, fmt.Errorf("failed to search universities: %w", err)
	}
	return out, nil
}
