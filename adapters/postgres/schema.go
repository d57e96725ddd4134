package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"goexchange/internal/errors"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS university (
		id BIGSERIAL PRIMARY KEY,
		semester VARCHAR(100) NOT NULL,
		region VARCHAR(100) NOT NULL,
		nation VARCHAR(100) NOT NULL,
		name_kor VARCHAR(255) NOT NULL,
		name_eng VARCHAR(255) NOT NULL,
		badge VARCHAR(255) NOT NULL DEFAULT '',
		min_gpa DOUBLE PRECISION NOT NULL DEFAULT 0,
		significant_note TEXT NOT NULL DEFAULT '',
		remark TEXT NOT NULL DEFAULT '',
		available_majors TEXT NOT NULL DEFAULT '',
		website_url TEXT NOT NULL DEFAULT '',
		is_exchange BOOLEAN NOT NULL DEFAULT FALSE,
		is_visit BOOLEAN NOT NULL DEFAULT FALSE,
		has_review BOOLEAN NOT NULL DEFAULT FALSE,
		review_year VARCHAR(50) NOT NULL DEFAULT '',
		UNIQUE (name_eng, nation)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_university_nation ON university (nation)`,
	`CREATE INDEX IF NOT EXISTS idx_university_region ON university (region)`,
	`CREATE INDEX IF NOT EXISTS idx_university_name_kor ON university (name_kor)`,
	`CREATE TABLE IF NOT EXISTS language_requirement (
		id BIGSERIAL PRIMARY KEY,
		university_id BIGINT NOT NULL REFERENCES university(id) ON DELETE CASCADE,
		language_group VARCHAR(50) NOT NULL,
		exam_type VARCHAR(50) NOT NULL,
		min_score DOUBLE PRECISION,
		level_code VARCHAR(50),
		is_available BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_lang_req_university_id ON language_requirement (university_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lang_req_exam_type ON language_requirement (exam_type)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS language_requirement CASCADE`,
	`DROP TABLE IF EXISTS university CASCADE`,
}

// CreateSchema creates the tables and indexes if they do not exist.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to create schema")
		}
	}
	return nil
}

// DropSchema drops all tables.
func DropSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to drop schema")
		}
	}
	return nil
}
