package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mcalloway/prepplan/internal/db"
	"github.com/mcalloway/prepplan/internal/domain"
	"github.com/mcalloway/prepplan/internal/repository"
)

type examService struct {
	exams repository.ExamRepo
	uow   db.UnitOfWork
}

func NewExamService(exams repository.ExamRepo, uow db.UnitOfWork) ExamService {
	return &examService{exams: exams, uow: uow}
}

func (s *examService) Create(ctx context.Context, e *domain.Exam, blueprint domain.Blueprint) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := blueprint.Validate(); err != nil {
		return err
	}
	// Exam row and blueprint rows land together or not at all.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteExamRepo(tx).Create(ctx, e, blueprint)
	})
}

func (s *examService) GetByID(ctx context.Context, id string) (*domain.Exam, error) {
	return s.exams.GetByID(ctx, id)
}

func (s *examService) Resolve(ctx context.Context, ref string) (*domain.Exam, error) {
	if ref == "" {
		return nil, fmt.Errorf("exam reference is required")
	}

	if e, err := s.exams.GetByShortID(ctx, ref); err == nil {
		return e, nil
	}

	exams, err := s.exams.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range exams {
		if e.ID == ref {
			return e, nil
		}
	}

	var matches []*domain.Exam
	for _, e := range exams {
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("exam not found: %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("exam reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func (s *examService) List(ctx context.Context) ([]*domain.Exam, error) {
	return s.exams.List(ctx)
}

func (s *examService) GetBlueprint(ctx context.Context, examID string) (domain.Blueprint, error) {
	return s.exams.GetBlueprint(ctx, examID)
}

func (s *examService) SetDate(ctx context.Context, id string, examDate time.Time) error {
	e, err := s.exams.GetByID(ctx, id)
	if err != nil {
		return err
	}
	e.ExamDate = examDate
	e.UpdatedAt = time.Now().UTC()
	return s.exams.Update(ctx, e)
}

func (s *examService) SetCommitment(ctx context.Context, id string, hoursPerDay, studyDaysPerWeek int) error {
	e, err := s.exams.GetByID(ctx, id)
	if err != nil {
		return err
	}
	e.HoursPerDay = hoursPerDay
	e.StudyDaysPerWeek = studyDaysPerWeek
	if err := e.Validate(); err != nil {
		return err
	}
	e.UpdatedAt = time.Now().UTC()
	return s.exams.Update(ctx, e)
}

func (s *examService) Delete(ctx context.Context, id string) error {
	return s.exams.Delete(ctx, id)
}
