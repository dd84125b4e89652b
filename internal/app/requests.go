package app

import "time"

// GeneratePlanRequest carries the inputs for one plan generation.
// Now is injected for determinism; a nil Now means the wall clock.
type GeneratePlanRequest struct {
	ExamID string
	Now    *time.Time
	// AllowDegraded opts into a single-day fallback plan when the exam
	// date is not strictly in the future.
	AllowDegraded bool
}

func NewGeneratePlanRequest(examID string) GeneratePlanRequest {
	return GeneratePlanRequest{ExamID: examID}
}

// PaceRequest carries the inputs for one pace evaluation. Lessons
// counters default to the study log and blueprint totals when nil.
type PaceRequest struct {
	ExamID           string
	Now              *time.Time
	LessonsCompleted *int
	TotalLessons     *int
}

func NewPaceRequest(examID string) PaceRequest {
	return PaceRequest{ExamID: examID}
}

type PlanErrorCode string

const (
	ErrExamDateNotFuture PlanErrorCode = "EXAM_DATE_NOT_FUTURE"
	ErrEmptyBlueprint    PlanErrorCode = "EMPTY_BLUEPRINT"
	ErrPlanNotFound      PlanErrorCode = "PLAN_NOT_FOUND"
	ErrExamNotFound      PlanErrorCode = "EXAM_NOT_FOUND"
)

// PlanError is a typed planning failure surfaced to callers.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
