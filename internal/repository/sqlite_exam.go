package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mcalloway/prepplan/internal/db"
	"github.com/mcalloway/prepplan/internal/domain"
)

// SQLiteExamRepo implements ExamRepo on a SQLite database. It accepts a
// DBTX so callers can scope it to a transaction.
type SQLiteExamRepo struct {
	db db.DBTX
}

// NewSQLiteExamRepo creates a new SQLiteExamRepo.
func NewSQLiteExamRepo(db db.DBTX) *SQLiteExamRepo {
	return &SQLiteExamRepo{db: db}
}

const examColumns = `id, short_id, name, exam_date, hours_per_day, study_days_per_week, created_at, updated_at`

func (r *SQLiteExamRepo) Create(ctx context.Context, e *domain.Exam, blueprint domain.Blueprint) error {
	query := `INSERT INTO exams (` + examColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ShortID,
		e.Name,
		e.ExamDate.Format(dateLayout),
		e.HoursPerDay,
		e.StudyDaysPerWeek,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting exam: %w", err)
	}

	for i, d := range blueprint {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO blueprint_domains (exam_id, domain_id, name, exam_weight, lesson_count, question_count, order_index)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, d.ID, d.Name, d.ExamWeight, d.LessonCount, d.QuestionCount, i,
		)
		if err != nil {
			return fmt.Errorf("inserting blueprint domain %s: %w", d.ID, err)
		}
	}
	return nil
}

func (r *SQLiteExamRepo) GetByID(ctx context.Context, id string) (*domain.Exam, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+examColumns+` FROM exams WHERE id = ?`, id)
	return scanExam(row.Scan)
}

func (r *SQLiteExamRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Exam, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+examColumns+` FROM exams WHERE UPPER(short_id) = UPPER(?)`, shortID)
	return scanExam(row.Scan)
}

func (r *SQLiteExamRepo) List(ctx context.Context) ([]*domain.Exam, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+examColumns+` FROM exams ORDER BY exam_date, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing exams: %w", err)
	}
	defer rows.Close()

	var exams []*domain.Exam
	for rows.Next() {
		e, err := scanExam(rows.Scan)
		if err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exams: %w", err)
	}
	return exams, nil
}

func (r *SQLiteExamRepo) Update(ctx context.Context, e *domain.Exam) error {
	query := `UPDATE exams SET short_id = ?, name = ?, exam_date = ?, hours_per_day = ?, study_days_per_week = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.ShortID,
		e.Name,
		e.ExamDate.Format(dateLayout),
		e.HoursPerDay,
		e.StudyDaysPerWeek,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating exam: %w", err)
	}
	return nil
}

func (r *SQLiteExamRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM exams WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting exam: %w", err)
	}
	return nil
}

func (r *SQLiteExamRepo) GetBlueprint(ctx context.Context, examID string) (domain.Blueprint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT domain_id, name, exam_weight, lesson_count, question_count
			FROM blueprint_domains WHERE exam_id = ? ORDER BY order_index`, examID)
	if err != nil {
		return nil, fmt.Errorf("loading blueprint: %w", err)
	}
	defer rows.Close()

	var blueprint domain.Blueprint
	for rows.Next() {
		var d domain.BlueprintDomain
		if err := rows.Scan(&d.ID, &d.Name, &d.ExamWeight, &d.LessonCount, &d.QuestionCount); err != nil {
			return nil, fmt.Errorf("scanning blueprint domain: %w", err)
		}
		blueprint = append(blueprint, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blueprint domains: %w", err)
	}
	return blueprint, nil
}

// scanExam scans one exam row from either a *sql.Row or *sql.Rows scan
// function.
func scanExam(scan func(dest ...any) error) (*domain.Exam, error) {
	var e domain.Exam
	var examDateStr, createdAtStr, updatedAtStr string

	err := scan(
		&e.ID, &e.ShortID, &e.Name, &examDateStr,
		&e.HoursPerDay, &e.StudyDaysPerWeek,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("exam: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning exam: %w", err)
	}

	var parseErr error
	e.ExamDate, parseErr = time.Parse(dateLayout, examDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing exam_date: %w", parseErr)
	}
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &e, nil
}
