package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mcalloway/prepplan/internal/db"
	"github.com/mcalloway/prepplan/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo on a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(db db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: db}
}

func (r *SQLiteProgressRepo) UpsertPercent(ctx context.Context, examID, domainID string, percent int) error {
	query := `INSERT INTO domain_progress (exam_id, domain_id, percent, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(exam_id, domain_id) DO UPDATE SET percent = excluded.percent, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, examID, domainID, percent, nowUTC()); err != nil {
		return fmt.Errorf("upserting domain progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) SetWeak(ctx context.Context, examID, domainID string, weak bool) error {
	query := `INSERT INTO domain_progress (exam_id, domain_id, weak, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(exam_id, domain_id) DO UPDATE SET weak = excluded.weak, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, examID, domainID, boolToInt(weak), nowUTC()); err != nil {
		return fmt.Errorf("setting weak flag: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) ListByExam(ctx context.Context, examID string) ([]*domain.DomainProgress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT exam_id, domain_id, percent, weak, updated_at
			FROM domain_progress WHERE exam_id = ? ORDER BY domain_id`, examID)
	if err != nil {
		return nil, fmt.Errorf("listing domain progress: %w", err)
	}
	defer rows.Close()

	var progress []*domain.DomainProgress
	for rows.Next() {
		var p domain.DomainProgress
		var weakInt int
		var updatedAtStr string
		if err := rows.Scan(&p.ExamID, &p.DomainID, &p.Percent, &weakInt, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning domain progress: %w", err)
		}
		p.Weak = intToBool(weakInt)
		p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		progress = append(progress, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating domain progress: %w", err)
	}
	return progress, nil
}

func (r *SQLiteProgressRepo) LogStudy(ctx context.Context, entry *domain.StudyLogEntry) error {
	query := `INSERT INTO study_log (id, exam_id, logged_on, lessons, questions, flashcards, mock_exams, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.ExamID,
		entry.LoggedOn.Format(dateLayout),
		entry.Lessons,
		entry.Questions,
		entry.Flashcards,
		entry.MockExams,
		entry.Note,
		entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study log entry: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) Totals(ctx context.Context, examID string) (domain.StudyTotals, error) {
	var t domain.StudyTotals
	query := `SELECT COALESCE(SUM(lessons), 0), COALESCE(SUM(questions), 0),
			COALESCE(SUM(flashcards), 0), COALESCE(SUM(mock_exams), 0)
		FROM study_log WHERE exam_id = ?`
	row := r.db.QueryRowContext(ctx, query, examID)
	if err := row.Scan(&t.Lessons, &t.Questions, &t.Flashcards, &t.MockExams); err != nil {
		return domain.StudyTotals{}, fmt.Errorf("summing study log: %w", err)
	}
	return t, nil
}
