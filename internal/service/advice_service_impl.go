package service

import (
	"context"
	"time"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/planner"
	"github.com/mcalloway/prepplan/internal/repository"
)

type adviceService struct {
	exams    repository.ExamRepo
	progress repository.ProgressRepo
	params   planner.Params
}

func NewAdviceService(exams repository.ExamRepo, progress repository.ProgressRepo) AdviceService {
	return &adviceService{exams: exams, progress: progress, params: planner.DefaultParams()}
}

func (s *adviceService) Tips(ctx context.Context, examID string, now time.Time) ([]string, error) {
	exam, err := s.exams.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	daysLeft := int(exam.ExamDate.Sub(now).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}
	return planner.StudyTips(daysLeft), nil
}

func (s *adviceService) Recommendations(ctx context.Context, examID string) ([]contract.DomainAdvice, error) {
	blueprint, err := s.exams.GetBlueprint(ctx, examID)
	if err != nil {
		return nil, err
	}

	rows, err := s.progress.ListByExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	percent := make(map[string]int, len(rows))
	for _, p := range rows {
		percent[p.DomainID] = p.Percent
	}

	advice := make([]contract.DomainAdvice, 0, len(blueprint))
	for _, d := range blueprint {
		advice = append(advice, contract.DomainAdvice{
			DomainID:        d.ID,
			Name:            d.Name,
			Percent:         percent[d.ID],
			Recommendations: planner.DomainRecommendations(d, percent[d.ID]),
		})
	}
	return advice, nil
}

func (s *adviceService) Readiness(ctx context.Context, examID string) (*contract.Readiness, error) {
	exam, err := s.exams.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}
	blueprint, err := s.exams.GetBlueprint(ctx, examID)
	if err != nil {
		return nil, err
	}
	totals, err := s.progress.Totals(ctx, examID)
	if err != nil {
		return nil, err
	}

	totalDays := int(time.Until(exam.ExamDate).Hours() / 24)
	readiness := planner.ComputeReadiness(blueprint, totals, totalDays, s.params)
	return &readiness, nil
}
