package planner

import (
	"math"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// Share of each day's minutes reserved for reviewing earlier material.
const dailyReviewShare = 0.20

// BuildDailyGoals summarizes the plan-level daily targets. The
// denominator is the number of actual study days in the span, derived
// from the weekly commitment rather than the calendar. Lessons are
// front-loaded: they must finish within the foundation fraction of the
// study days, so their daily target divides by that smaller window.
func BuildDailyGoals(blueprint domain.Blueprint, allocations []contract.DomainAllocation, totalDays, studyDaysPerWeek, hoursPerDay int, p Params) contract.DailyGoals {
	totalStudyDays := int(math.Floor(float64(totalDays) / 7 * float64(studyDaysPerWeek)))
	if totalStudyDays < 1 {
		totalStudyDays = 1
	}

	totalQuestions := 0
	for _, a := range allocations {
		totalQuestions += a.QuestionsPerDay * a.DaysAllocated
	}
	totalLessons := blueprint.TotalLessons()
	totalFlashcards := len(blueprint) * p.FlashcardsPerDomain

	lessonDays := int(math.Floor(float64(totalStudyDays) * p.FoundationFrac))
	if lessonDays < 1 {
		lessonDays = 1
	}

	minutes := hoursPerDay * 60

	return contract.DailyGoals{
		Questions:  ceilDiv(totalQuestions, totalStudyDays),
		Lessons:    ceilDiv(totalLessons, lessonDays),
		Flashcards: ceilDiv(totalFlashcards, totalStudyDays),
		StudyMin:   minutes,
		ReviewMin:  int(math.Floor(float64(minutes) * dailyReviewShare)),
	}
}

func ceilDiv(a, b int) int {
	if b < 1 {
		b = 1
	}
	return (a + b - 1) / b
}
