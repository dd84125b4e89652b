package service

import (
	"context"
	"errors"
	"time"

	"github.com/mcalloway/prepplan/internal/app"
	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/planner"
	"github.com/mcalloway/prepplan/internal/repository"
)

type paceService struct {
	exams    repository.ExamRepo
	progress repository.ProgressRepo
	plans    repository.PlanRepo
}

func NewPaceService(
	exams repository.ExamRepo,
	progress repository.ProgressRepo,
	plans repository.PlanRepo,
) PaceService {
	return &paceService{exams: exams, progress: progress, plans: plans}
}

// Evaluate compares logged lessons against the stored plan's timeline.
// Lesson counters in the request override the study log and blueprint
// totals, which lets callers feed externally tracked progress.
func (s *paceService) Evaluate(ctx context.Context, req contract.PaceRequest) (*contract.PaceResult, error) {
	plan, err := s.plans.GetByExam(ctx, req.ExamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{Code: app.ErrPlanNotFound, Message: "generate a plan before evaluating pace"}
		}
		return nil, err
	}

	completed := 0
	if req.LessonsCompleted != nil {
		completed = *req.LessonsCompleted
	} else {
		totals, err := s.progress.Totals(ctx, req.ExamID)
		if err != nil {
			return nil, err
		}
		completed = totals.Lessons
	}

	total := 0
	if req.TotalLessons != nil {
		total = *req.TotalLessons
	} else {
		blueprint, err := s.exams.GetBlueprint(ctx, req.ExamID)
		if err != nil {
			return nil, err
		}
		total = blueprint.TotalLessons()
	}

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	result := planner.EvaluatePace(planner.PaceInput{
		Now:              now,
		StartDate:        plan.GeneratedOn,
		StudyDays:        plan.StudyDays,
		LessonsCompleted: completed,
		TotalLessons:     total,
	})
	return &result, nil
}
