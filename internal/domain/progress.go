package domain

import "time"

// DomainProgress is the caller-maintained completion state for one
// blueprint domain: percent complete plus a weak-area flag that biases
// time allocation toward the domain.
type DomainProgress struct {
	ExamID    string
	DomainID  string
	Percent   int // 0-100
	Weak      bool
	UpdatedAt time.Time
}

// StudyLogEntry is one dated record of completed study activity.
// Counters are deltas, not running totals.
type StudyLogEntry struct {
	ID         string
	ExamID     string
	LoggedOn   time.Time
	Lessons    int
	Questions  int
	Flashcards int
	MockExams  int
	Note       string
	CreatedAt  time.Time
}

// StudyTotals aggregates the study log for one exam.
type StudyTotals struct {
	Lessons    int
	Questions  int
	Flashcards int
	MockExams  int
}
