package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mcalloway/prepplan/internal/app"
	"github.com/mcalloway/prepplan/internal/db"
	"github.com/mcalloway/prepplan/internal/domain"
)

// SQLitePlanRepo implements PlanRepo on a SQLite database. The weekly
// schedule is not stored: it is a pure function of the exam preferences
// and is rebuilt on load by the service layer.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Replace(ctx context.Context, p *app.Plan) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE exam_id = ?`, p.ExamID); err != nil {
		return fmt.Errorf("removing previous plan: %w", err)
	}

	query := `INSERT INTO plans (id, exam_id, generated_on, exam_date, total_days, study_days,
			hours_per_day, study_days_per_week,
			goal_questions, goal_lessons, goal_flashcards, goal_study_min, goal_review_min, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ExamID,
		p.GeneratedOn.Format(dateLayout),
		p.ExamDate.Format(dateLayout),
		p.TotalDays,
		p.StudyDays,
		p.HoursPerDay,
		p.StudyDaysPerWeek,
		p.Goals.Questions,
		p.Goals.Lessons,
		p.Goals.Flashcards,
		p.Goals.StudyMin,
		p.Goals.ReviewMin,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	for i, a := range p.Domains {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_domains (plan_id, order_index, domain_id, name, start_date, end_date,
				days_allocated, questions_per_day, lessons_per_day, flashcards_per_day, exam_weight)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, a.DomainID, a.Name,
			a.StartDate.Format(dateLayout), a.EndDate.Format(dateLayout),
			a.DaysAllocated, a.QuestionsPerDay, a.LessonsPerDay, a.FlashcardsPerDay, a.ExamWeight,
		)
		if err != nil {
			return fmt.Errorf("inserting plan domain %s: %w", a.DomainID, err)
		}
	}

	for i, m := range p.Milestones {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_milestones (plan_id, order_index, date, label, kind, domain_id, position)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, m.Date.Format(dateLayout), m.Label, string(m.Kind), m.DomainID, m.Position,
		)
		if err != nil {
			return fmt.Errorf("inserting plan milestone %d: %w", i, err)
		}
	}

	for i, ph := range p.Phases {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_phases (plan_id, order_index, kind, name, start_date, end_date, description, focus_domains, activities)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, string(ph.Kind), ph.Name,
			ph.StartDate.Format(dateLayout), ph.EndDate.Format(dateLayout),
			ph.Description,
			strings.Join(ph.Focus, ","),
			strings.Join(ph.Activities, "\n"),
		)
		if err != nil {
			return fmt.Errorf("inserting plan phase %s: %w", ph.Kind, err)
		}
	}

	return nil
}

func (r *SQLitePlanRepo) GetByExam(ctx context.Context, examID string) (*app.Plan, error) {
	query := `SELECT id, exam_id, generated_on, exam_date, total_days, study_days,
			hours_per_day, study_days_per_week,
			goal_questions, goal_lessons, goal_flashcards, goal_study_min, goal_review_min
		FROM plans WHERE exam_id = ?`
	row := r.db.QueryRowContext(ctx, query, examID)

	var p app.Plan
	var generatedOnStr, examDateStr string
	err := row.Scan(
		&p.ID, &p.ExamID, &generatedOnStr, &examDateStr,
		&p.TotalDays, &p.StudyDays, &p.HoursPerDay, &p.StudyDaysPerWeek,
		&p.Goals.Questions, &p.Goals.Lessons, &p.Goals.Flashcards,
		&p.Goals.StudyMin, &p.Goals.ReviewMin,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	if p.GeneratedOn, err = time.Parse(dateLayout, generatedOnStr); err != nil {
		return nil, fmt.Errorf("parsing generated_on: %w", err)
	}
	if p.ExamDate, err = time.Parse(dateLayout, examDateStr); err != nil {
		return nil, fmt.Errorf("parsing exam_date: %w", err)
	}

	if p.Domains, err = r.loadDomains(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Milestones, err = r.loadMilestones(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Phases, err = r.loadPhases(ctx, p.ID); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *SQLitePlanRepo) DeleteByExam(ctx context.Context, examID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE exam_id = ?`, examID); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) loadDomains(ctx context.Context, planID string) ([]app.DomainAllocation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT domain_id, name, start_date, end_date, days_allocated,
			questions_per_day, lessons_per_day, flashcards_per_day, exam_weight
			FROM plan_domains WHERE plan_id = ? ORDER BY order_index`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading plan domains: %w", err)
	}
	defer rows.Close()

	var domains []app.DomainAllocation
	for rows.Next() {
		var a app.DomainAllocation
		var startStr, endStr string
		if err := rows.Scan(&a.DomainID, &a.Name, &startStr, &endStr, &a.DaysAllocated,
			&a.QuestionsPerDay, &a.LessonsPerDay, &a.FlashcardsPerDay, &a.ExamWeight); err != nil {
			return nil, fmt.Errorf("scanning plan domain: %w", err)
		}
		if a.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		if a.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
			return nil, fmt.Errorf("parsing end_date: %w", err)
		}
		domains = append(domains, a)
	}
	return domains, rows.Err()
}

func (r *SQLitePlanRepo) loadMilestones(ctx context.Context, planID string) ([]app.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, label, kind, domain_id, position
			FROM plan_milestones WHERE plan_id = ? ORDER BY order_index`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading plan milestones: %w", err)
	}
	defer rows.Close()

	var milestones []app.Milestone
	for rows.Next() {
		var m app.Milestone
		var dateStr, kindStr string
		if err := rows.Scan(&dateStr, &m.Label, &kindStr, &m.DomainID, &m.Position); err != nil {
			return nil, fmt.Errorf("scanning plan milestone: %w", err)
		}
		if m.Date, err = time.Parse(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("parsing milestone date: %w", err)
		}
		m.Kind = domain.MilestoneKind(kindStr)
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (r *SQLitePlanRepo) loadPhases(ctx context.Context, planID string) ([]app.Phase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, name, start_date, end_date, description, focus_domains, activities
			FROM plan_phases WHERE plan_id = ? ORDER BY order_index`, planID)
	if err != nil {
		return nil, fmt.Errorf("loading plan phases: %w", err)
	}
	defer rows.Close()

	var phases []app.Phase
	for rows.Next() {
		var ph app.Phase
		var kindStr, startStr, endStr, focusStr, activitiesStr string
		if err := rows.Scan(&kindStr, &ph.Name, &startStr, &endStr, &ph.Description, &focusStr, &activitiesStr); err != nil {
			return nil, fmt.Errorf("scanning plan phase: %w", err)
		}
		if ph.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
			return nil, fmt.Errorf("parsing phase start_date: %w", err)
		}
		if ph.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
			return nil, fmt.Errorf("parsing phase end_date: %w", err)
		}
		ph.Kind = domain.PhaseKind(kindStr)
		if focusStr != "" {
			ph.Focus = strings.Split(focusStr, ",")
		}
		if activitiesStr != "" {
			ph.Activities = strings.Split(activitiesStr, "\n")
		}
		phases = append(phases, ph)
	}
	return phases, rows.Err()
}
