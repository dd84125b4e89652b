package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// Status ladder thresholds on diff = completed - expected.
const (
	aheadThreshold          = 2
	onTrackThreshold        = -1
	slightlyBehindThreshold = -5
)

// PaceInput carries one pace evaluation. StartDate is the plan's
// generation date; Now is injected by the caller.
type PaceInput struct {
	Now              time.Time
	StartDate        time.Time
	StudyDays        int
	LessonsCompleted int
	TotalLessons     int
}

// EvaluatePace compares completed lessons against the linearly expected
// count for the elapsed time. All denominators are floored at 1 so the
// result is always finite. Invalid inputs degrade to a conservative
// "behind" result rather than an error, since pace is evaluated on
// every render.
func EvaluatePace(in PaceInput) contract.PaceResult {
	if in.TotalLessons <= 0 || in.StudyDays <= 0 {
		return contract.PaceResult{
			Status:       domain.PaceBehind,
			AdjustedPace: float64(in.TotalLessons),
			Message:      "Not enough plan data to evaluate pace; assuming behind.",
		}
	}

	daysElapsed := daysBetween(in.StartDate, in.Now)
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	fraction := float64(daysElapsed) / float64(in.StudyDays)
	if fraction > 1 {
		fraction = 1
	}
	expected := int(math.Round(float64(in.TotalLessons) * fraction))
	diff := in.LessonsCompleted - expected

	var status domain.PaceStatus
	switch {
	case diff >= aheadThreshold:
		status = domain.PaceAhead
	case diff >= onTrackThreshold:
		status = domain.PaceOnTrack
	case diff >= slightlyBehindThreshold:
		status = domain.PaceSlightlyBehind
	default:
		status = domain.PaceBehind
	}

	daysLeft := in.StudyDays - daysElapsed
	if daysLeft < 1 {
		daysLeft = 1
	}
	remaining := in.TotalLessons - in.LessonsCompleted
	if remaining < 0 {
		remaining = 0
	}
	pace := math.Round(float64(remaining)/float64(daysLeft)*10) / 10

	return contract.PaceResult{
		Status:          status,
		ExpectedLessons: expected,
		Diff:            diff,
		AdjustedPace:    pace,
		Message:         paceMessage(status, diff, pace),
	}
}

func paceMessage(status domain.PaceStatus, diff int, pace float64) string {
	switch status {
	case domain.PaceAhead:
		return fmt.Sprintf("You are %d lessons ahead of schedule. Keep the momentum.", diff)
	case domain.PaceOnTrack:
		return fmt.Sprintf("You are on track. Hold %.1f lessons per day to finish on time.", pace)
	case domain.PaceSlightlyBehind:
		return fmt.Sprintf("You are %d lessons behind. Bump up to %.1f lessons per day to catch up.", -diff, pace)
	default:
		return fmt.Sprintf("You are %d lessons behind schedule. You need %.1f lessons per day from here.", -diff, pace)
	}
}
