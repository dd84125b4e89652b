package planner

import (
	"time"

	"github.com/mcalloway/prepplan/internal/app"
	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// Input carries everything one plan generation needs. Today is always
// injected; the planner never reads the clock.
type Input struct {
	Today            time.Time
	ExamDate         time.Time
	HoursPerDay      int
	StudyDaysPerWeek int
	Blueprint        domain.Blueprint
	Progress         map[string]int
	WeakAreas        []string
	// AllowDegraded permits a single-day fallback plan when ExamDate is
	// not strictly after Today.
	AllowDegraded bool
	Params        Params
}

// GeneratePlan assembles a complete study plan from one input snapshot.
// The result is deterministic: identical inputs produce structurally
// identical plans. The plan and exam IDs are left for the caller to
// assign.
func GeneratePlan(in Input) (*contract.Plan, error) {
	if len(in.Blueprint) == 0 {
		return nil, &app.PlanError{Code: app.ErrEmptyBlueprint, Message: "exam has no blueprint domains"}
	}

	today := dateOnly(in.Today)
	examDate := dateOnly(in.ExamDate)

	totalDays := daysBetween(today, examDate)
	if totalDays < 1 {
		if !in.AllowDegraded {
			return nil, &app.PlanError{
				Code:    app.ErrExamDateNotFuture,
				Message: "exam date must be strictly after today",
			}
		}
		totalDays = 1
	}

	weak := make(map[string]bool, len(in.WeakAreas))
	for _, id := range in.WeakAreas {
		weak[id] = true
	}
	progress := in.Progress
	if progress == nil {
		progress = map[string]int{}
	}

	studyDays := StudyDays(totalDays, in.Params)
	ordered := PrioritizeDomains(in.Blueprint, progress, weak)
	allocations := AllocateDomains(today, studyDays, ordered, progress, weak, in.HoursPerDay, in.Params)

	return &contract.Plan{
		GeneratedOn:      today,
		ExamDate:         examDate,
		TotalDays:        totalDays,
		StudyDays:        studyDays,
		HoursPerDay:      in.HoursPerDay,
		StudyDaysPerWeek: in.StudyDaysPerWeek,
		Domains:          allocations,
		Milestones:       BuildMilestones(today, allocations, examDate, totalDays, in.Params),
		Phases:           BuildPhases(today, examDate, totalDays, allocations, in.Params),
		Weekly:           BuildWeeklySchedule(in.HoursPerDay, in.StudyDaysPerWeek, in.Params),
		Goals:            BuildDailyGoals(in.Blueprint, allocations, totalDays, in.StudyDaysPerWeek, in.HoursPerDay, in.Params),
	}, nil
}
