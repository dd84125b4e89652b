package repository

import (
	"context"
	"errors"

	"github.com/mcalloway/prepplan/internal/app"
	"github.com/mcalloway/prepplan/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row. Callers test it
// with errors.Is.
var ErrNotFound = errors.New("not found")

type ExamRepo interface {
	// Create inserts the exam together with its blueprint rows.
	Create(ctx context.Context, e *domain.Exam, blueprint domain.Blueprint) error
	GetByID(ctx context.Context, id string) (*domain.Exam, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Exam, error)
	List(ctx context.Context) ([]*domain.Exam, error)
	Update(ctx context.Context, e *domain.Exam) error
	Delete(ctx context.Context, id string) error
	GetBlueprint(ctx context.Context, examID string) (domain.Blueprint, error)
}

type ProgressRepo interface {
	UpsertPercent(ctx context.Context, examID, domainID string, percent int) error
	SetWeak(ctx context.Context, examID, domainID string, weak bool) error
	ListByExam(ctx context.Context, examID string) ([]*domain.DomainProgress, error)
	LogStudy(ctx context.Context, entry *domain.StudyLogEntry) error
	Totals(ctx context.Context, examID string) (domain.StudyTotals, error)
}

type PlanRepo interface {
	// Replace removes any stored plan for the exam and inserts the new
	// one. Run it inside a UnitOfWork so regeneration is atomic.
	Replace(ctx context.Context, p *app.Plan) error
	GetByExam(ctx context.Context, examID string) (*app.Plan, error)
	DeleteByExam(ctx context.Context, examID string) error
}
