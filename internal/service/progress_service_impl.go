package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
	"github.com/mcalloway/prepplan/internal/repository"
)

type progressService struct {
	progress repository.ProgressRepo
	exams    repository.ExamRepo
}

func NewProgressService(progress repository.ProgressRepo, exams repository.ExamRepo) ProgressService {
	return &progressService{progress: progress, exams: exams}
}

func (s *progressService) SetPercent(ctx context.Context, examID, domainID string, percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("percent %d out of range 0-100", percent)
	}
	if _, err := s.exams.GetByID(ctx, examID); err != nil {
		return err
	}
	return s.progress.UpsertPercent(ctx, examID, domainID, percent)
}

func (s *progressService) SetWeak(ctx context.Context, examID, domainID string, weak bool) error {
	if _, err := s.exams.GetByID(ctx, examID); err != nil {
		return err
	}
	return s.progress.SetWeak(ctx, examID, domainID, weak)
}

func (s *progressService) Log(ctx context.Context, entry *domain.StudyLogEntry) error {
	if entry.Lessons < 0 || entry.Questions < 0 || entry.Flashcards < 0 || entry.MockExams < 0 {
		return fmt.Errorf("study log counters must be non-negative")
	}
	if _, err := s.exams.GetByID(ctx, entry.ExamID); err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.LoggedOn.IsZero() {
		entry.LoggedOn = time.Now().UTC()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return s.progress.LogStudy(ctx, entry)
}

func (s *progressService) Snapshot(ctx context.Context, examID string) (*contract.ProgressSnapshot, error) {
	rows, err := s.progress.ListByExam(ctx, examID)
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

func (s *progressService) Totals(ctx context.Context, examID string) (domain.StudyTotals, error) {
	return s.progress.Totals(ctx, examID)
}
