package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mcalloway/prepplan/internal/domain"
)

var testShortIDCounter atomic.Int64

// Exam options
type ExamOption func(*domain.Exam)

func WithExamDate(d time.Time) ExamOption {
	return func(e *domain.Exam) {
		e.ExamDate = d
	}
}

func WithHoursPerDay(h int) ExamOption {
	return func(e *domain.Exam) {
		e.HoursPerDay = h
	}
}

func WithStudyDaysPerWeek(d int) ExamOption {
	return func(e *domain.Exam) {
		e.StudyDaysPerWeek = d
	}
}

func WithShortID(id string) ExamOption {
	return func(e *domain.Exam) {
		e.ShortID = id
	}
}

func defaultShortID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestExam builds an exam profile 90 days out with sane defaults.
func NewTestExam(name string, opts ...ExamOption) *domain.Exam {
	now := time.Now().UTC()
	e := &domain.Exam{
		ID:               uuid.New().String(),
		ShortID:          defaultShortID(name),
		Name:             name,
		ExamDate:         now.AddDate(0, 0, 90),
		HoursPerDay:      2,
		StudyDaysPerWeek: 5,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StudyLogEntry options
type LogOption func(*domain.StudyLogEntry)

func WithLessons(n int) LogOption {
	return func(l *domain.StudyLogEntry) {
		l.Lessons = n
	}
}

func WithQuestions(n int) LogOption {
	return func(l *domain.StudyLogEntry) {
		l.Questions = n
	}
}

func WithFlashcards(n int) LogOption {
	return func(l *domain.StudyLogEntry) {
		l.Flashcards = n
	}
}

func WithMockExams(n int) LogOption {
	return func(l *domain.StudyLogEntry) {
		l.MockExams = n
	}
}

func WithLoggedOn(d time.Time) LogOption {
	return func(l *domain.StudyLogEntry) {
		l.LoggedOn = d
	}
}

func WithLogNote(n string) LogOption {
	return func(l *domain.StudyLogEntry) {
		l.Note = n
	}
}

// NewTestLogEntry builds a study log entry for the given exam.
func NewTestLogEntry(examID string, opts ...LogOption) *domain.StudyLogEntry {
	now := time.Now().UTC()
	l := &domain.StudyLogEntry{
		ID:        uuid.New().String(),
		ExamID:    examID,
		LoggedOn:  now,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
