package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mcalloway/prepplan/internal/app"
	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/db"
	"github.com/mcalloway/prepplan/internal/planner"
	"github.com/mcalloway/prepplan/internal/repository"
)

type planService struct {
	exams    repository.ExamRepo
	progress repository.ProgressRepo
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	params   planner.Params
}

func NewPlanService(
	exams repository.ExamRepo,
	progress repository.ProgressRepo,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
) PlanService {
	return &planService{
		exams:    exams,
		progress: progress,
		plans:    plans,
		uow:      uow,
		params:   planner.DefaultParams(),
	}
}

func (s *planService) Generate(ctx context.Context, req contract.GeneratePlanRequest) (*contract.Plan, error) {
	exam, err := s.exams.GetByID(ctx, req.ExamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{Code: app.ErrExamNotFound, Message: "no exam with id " + req.ExamID}
		}
		return nil, err
	}

	blueprint, err := s.exams.GetBlueprint(ctx, req.ExamID)
	if err != nil {
		return nil, err
	}

	snapshot, err := snapshotFromRepo(ctx, s.progress, req.ExamID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	plan, err := planner.GeneratePlan(planner.Input{
		Today:            now,
		ExamDate:         exam.ExamDate,
		HoursPerDay:      exam.HoursPerDay,
		StudyDaysPerWeek: exam.StudyDaysPerWeek,
		Blueprint:        blueprint,
		Progress:         snapshot.Percent,
		WeakAreas:        snapshot.WeakAreas,
		AllowDegraded:    req.AllowDegraded,
		Params:           s.params,
	})
	if err != nil {
		return nil, err
	}

	plan.ID = uuid.New().String()
	plan.ExamID = exam.ID

	// Replace the stored plan atomically; a failed generation never
	// clobbers the previous plan.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Replace(ctx, plan)
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *planService) Get(ctx context.Context, examID string) (*contract.Plan, error) {
	plan, err := s.plans.GetByExam(ctx, examID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{Code: app.ErrPlanNotFound, Message: "no plan generated for exam " + examID}
		}
		return nil, err
	}

	// The weekly template is derived, not stored.
	plan.Weekly = planner.BuildWeeklySchedule(plan.HoursPerDay, plan.StudyDaysPerWeek, s.params)
	return plan, nil
}

func snapshotFromRepo(ctx context.Context, repo repository.ProgressRepo, examID string) (*contract.ProgressSnapshot, error) {
	rows, err := repo.ListByExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	snapshot := &contract.ProgressSnapshot{Percent: make(map[string]int, len(rows))}
	for _, p := range rows {
		snapshot.Percent[p.DomainID] = p.Percent
		if p.Weak {
			snapshot.WeakAreas = append(snapshot.WeakAreas, p.DomainID)
		}
	}
	return snapshot, nil
}
