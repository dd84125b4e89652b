package app

import (
	"time"

	"github.com/mcalloway/prepplan/internal/domain"
)

// DomainAllocation is one domain's contiguous slice of the study
// timeline plus its derived daily targets. End dates are inclusive.
type DomainAllocation struct {
	DomainID         string
	Name             string
	StartDate        time.Time
	EndDate          time.Time
	DaysAllocated    int
	QuestionsPerDay  int
	LessonsPerDay    int
	FlashcardsPerDay int
	ExamWeight       int
}

// Milestone is one dated event on the plan timeline. Position is the
// normalized 0-100 offset of the date within the total day span.
type Milestone struct {
	Date     time.Time
	Label    string
	Kind     domain.MilestoneKind
	DomainID string // set for domain_complete milestones only
	Position float64
}

// DateLabel is the short display form of the milestone date.
func (m Milestone) DateLabel() string {
	return m.Date.Format("Jan 2")
}

// Phase is one of the three curriculum phases. Focus lists domain IDs
// in study order.
type Phase struct {
	Kind        domain.PhaseKind
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Focus       []string
	Activities  []string
}

// Activity is one timed block within a study day.
type Activity struct {
	Kind    domain.ActivityKind
	Minutes int
	Note    string
}

// DayPlan is the template for one weekday. Non-study days carry zero
// planned minutes and no activities.
type DayPlan struct {
	Weekday    time.Weekday
	StudyDay   bool
	PlannedMin int
	Activities []Activity
}

// WeeklySchedule is the repeating week template, Monday first.
type WeeklySchedule struct {
	Days [7]DayPlan
}

// DailyGoals is the plan-level daily target summary across all domains.
type DailyGoals struct {
	Questions  int
	Lessons    int
	Flashcards int
	StudyMin   int
	ReviewMin  int
}

// Plan is the full generated study plan. It is a value object: every
// field is a deterministic function of the generation inputs, and a
// stored plan is replaced wholesale rather than mutated.
type Plan struct {
	ID               string
	ExamID           string
	GeneratedOn      time.Time
	ExamDate         time.Time
	TotalDays        int
	StudyDays        int
	HoursPerDay      int
	StudyDaysPerWeek int
	Domains          []DomainAllocation
	Milestones       []Milestone
	Phases           []Phase
	Weekly           WeeklySchedule
	Goals            DailyGoals
}

// PaceResult is the outcome of one pace evaluation. It is ephemeral:
// recomputed on every call and never stored with the plan.
type PaceResult struct {
	Status          domain.PaceStatus
	ExpectedLessons int
	Diff            int
	AdjustedPace    float64
	Message         string
}

// Readiness is the weighted overall exam-readiness score with its
// per-signal components, each 0-100.
type Readiness struct {
	Overall     int
	QuestionPct int
	LessonPct   int
	MockPct     int
}

// ProgressSnapshot is the per-domain completion state fed into plan
// generation: percent complete by domain ID plus the weak-area set.
type ProgressSnapshot struct {
	Percent   map[string]int
	WeakAreas []string
}

// DomainAdvice pairs a blueprint domain with progress-banded study
// recommendations.
type DomainAdvice struct {
	DomainID        string
	Name            string
	Percent         int
	Recommendations []string
}
