package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS exams (
		id                  TEXT PRIMARY KEY,
		short_id            TEXT NOT NULL DEFAULT '',
		name                TEXT NOT NULL,
		exam_date           TEXT NOT NULL,
		hours_per_day       INTEGER NOT NULL DEFAULT 2,
		study_days_per_week INTEGER NOT NULL DEFAULT 5,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_exams_short_id ON exams(short_id) WHERE short_id != ''`,

	`CREATE TABLE IF NOT EXISTS blueprint_domains (
		exam_id        TEXT NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
		domain_id      TEXT NOT NULL,
		name           TEXT NOT NULL,
		exam_weight    INTEGER NOT NULL,
		lesson_count   INTEGER NOT NULL DEFAULT 0,
		question_count INTEGER NOT NULL DEFAULT 0,
		order_index    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (exam_id, domain_id)
	)`,

	`CREATE TABLE IF NOT EXISTS domain_progress (
		exam_id    TEXT NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
		domain_id  TEXT NOT NULL,
		percent    INTEGER NOT NULL DEFAULT 0 CHECK(percent BETWEEN 0 AND 100),
		weak       INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (exam_id, domain_id)
	)`,

	`CREATE TABLE IF NOT EXISTS study_log (
		id         TEXT PRIMARY KEY,
		exam_id    TEXT NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
		logged_on  TEXT NOT NULL,
		lessons    INTEGER NOT NULL DEFAULT 0,
		questions  INTEGER NOT NULL DEFAULT 0,
		flashcards INTEGER NOT NULL DEFAULT 0,
		mock_exams INTEGER NOT NULL DEFAULT 0,
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_log_exam ON study_log(exam_id)`,
	`CREATE INDEX IF NOT EXISTS idx_study_log_logged ON study_log(logged_on)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id                  TEXT PRIMARY KEY,
		exam_id             TEXT NOT NULL UNIQUE REFERENCES exams(id) ON DELETE CASCADE,
		generated_on        TEXT NOT NULL,
		exam_date           TEXT NOT NULL,
		total_days          INTEGER NOT NULL,
		study_days          INTEGER NOT NULL,
		hours_per_day       INTEGER NOT NULL,
		study_days_per_week INTEGER NOT NULL,
		goal_questions      INTEGER NOT NULL DEFAULT 0,
		goal_lessons        INTEGER NOT NULL DEFAULT 0,
		goal_flashcards     INTEGER NOT NULL DEFAULT 0,
		goal_study_min      INTEGER NOT NULL DEFAULT 0,
		goal_review_min     INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_domains (
		plan_id            TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		order_index        INTEGER NOT NULL,
		domain_id          TEXT NOT NULL,
		name               TEXT NOT NULL,
		start_date         TEXT NOT NULL,
		end_date           TEXT NOT NULL,
		days_allocated     INTEGER NOT NULL,
		questions_per_day  INTEGER NOT NULL,
		lessons_per_day    INTEGER NOT NULL,
		flashcards_per_day INTEGER NOT NULL,
		exam_weight        INTEGER NOT NULL,
		PRIMARY KEY (plan_id, order_index)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_milestones (
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		order_index INTEGER NOT NULL,
		date        TEXT NOT NULL,
		label       TEXT NOT NULL,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('start','domain_complete','mock_exam','review_start','exam')),
		domain_id   TEXT NOT NULL DEFAULT '',
		position    REAL NOT NULL,
		PRIMARY KEY (plan_id, order_index)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_phases (
		plan_id       TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		order_index   INTEGER NOT NULL,
		kind          TEXT NOT NULL
		              CHECK(kind IN ('foundation','reinforcement','final_review')),
		name          TEXT NOT NULL,
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		focus_domains TEXT NOT NULL DEFAULT '',
		activities    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (plan_id, order_index)
	)`,
}
