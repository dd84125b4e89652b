package service

import (
	"context"
	"time"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

type ExamService interface {
	Create(ctx context.Context, e *domain.Exam, blueprint domain.Blueprint) error
	GetByID(ctx context.Context, id string) (*domain.Exam, error)
	// Resolve accepts a short ID, a full UUID, or a unique UUID prefix.
	Resolve(ctx context.Context, ref string) (*domain.Exam, error)
	List(ctx context.Context) ([]*domain.Exam, error)
	GetBlueprint(ctx context.Context, examID string) (domain.Blueprint, error)
	SetDate(ctx context.Context, id string, examDate time.Time) error
	SetCommitment(ctx context.Context, id string, hoursPerDay, studyDaysPerWeek int) error
	Delete(ctx context.Context, id string) error
}

type ProgressService interface {
	SetPercent(ctx context.Context, examID, domainID string, percent int) error
	SetWeak(ctx context.Context, examID, domainID string, weak bool) error
	Log(ctx context.Context, entry *domain.StudyLogEntry) error
	Snapshot(ctx context.Context, examID string) (*contract.ProgressSnapshot, error)
	Totals(ctx context.Context, examID string) (domain.StudyTotals, error)
}

type PlanService interface {
	Generate(ctx context.Context, req contract.GeneratePlanRequest) (*contract.Plan, error)
	Get(ctx context.Context, examID string) (*contract.Plan, error)
}

type PaceService interface {
	Evaluate(ctx context.Context, req contract.PaceRequest) (*contract.PaceResult, error)
}

type AdviceService interface {
	Tips(ctx context.Context, examID string, now time.Time) ([]string, error)
	Recommendations(ctx context.Context, examID string) ([]contract.DomainAdvice, error)
	Readiness(ctx context.Context, examID string) (*contract.Readiness, error)
}
