package planner

import (
	"math"
	"time"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// StudyDays computes the number of new-content study days: the span to
// the exam minus the trailing review window, floored at MinStudyDays.
func StudyDays(totalDays int, p Params) int {
	studyDays := totalDays - p.ReviewWindowDays
	if studyDays < p.MinStudyDays {
		studyDays = p.MinStudyDays
	}
	return studyDays
}

// AllocateDomains partitions studyDays across the priority-ordered
// domains. Each domain's share scales with exam weight and remaining
// work, boosted for weak areas, with per-domain floors. The last domain
// absorbs the exact remainder so the allocated days always sum to
// studyDays. Date ranges are contiguous with inclusive end dates,
// starting at today.
func AllocateDomains(
	today time.Time,
	studyDays int,
	ordered []domain.BlueprintDomain,
	progress map[string]int,
	weak map[string]bool,
	hoursPerDay int,
	p Params,
) []contract.DomainAllocation {
	allocations := make([]contract.DomainAllocation, 0, len(ordered))
	remaining := studyDays
	cursor := dateOnly(today)
	minutesPerDay := hoursPerDay * 60

	for i, d := range ordered {
		remainingWork := 1 - float64(progress[d.ID])/100
		if remainingWork < 0 {
			remainingWork = 0
		}

		days := domainDays(d, remainingWork, weak[d.ID], studyDays, i, ordered, weak, remaining, p)
		remaining -= days

		questions, lessons, flashcards := dailyTargets(d, remainingWork, days, minutesPerDay, p)

		allocations = append(allocations, contract.DomainAllocation{
			DomainID:         d.ID,
			Name:             d.Name,
			StartDate:        cursor,
			EndDate:          addDays(cursor, days-1),
			DaysAllocated:    days,
			QuestionsPerDay:  questions,
			LessonsPerDay:    lessons,
			FlashcardsPerDay: flashcards,
			ExamWeight:       d.ExamWeight,
		})
		cursor = addDays(cursor, days)
	}

	return allocations
}

// domainDays computes one domain's day share. The last domain absorbs
// whatever is left; earlier domains are clamped so every later domain
// can still receive its floor.
func domainDays(
	d domain.BlueprintDomain,
	remainingWork float64,
	isWeak bool,
	studyDays, index int,
	ordered []domain.BlueprintDomain,
	weak map[string]bool,
	remaining int,
	p Params,
) int {
	if index == len(ordered)-1 {
		// Every domain gets at least one day. With fewer study days than
		// domains the allocated days sum past studyDays; the exact-sum
		// invariant holds whenever studyDays >= len(ordered), which the
		// MinStudyDays floor guarantees for the seeded blueprint.
		if remaining < 1 {
			return 1
		}
		return remaining
	}

	minDays := p.MinDays
	if isWeak {
		minDays = p.MinDaysWeak
	}

	weightFactor := float64(d.ExamWeight) / 100
	if isWeak {
		weightFactor *= p.WeakAreaBoost
	}
	days := int(math.Ceil(float64(studyDays) * weightFactor * remainingWork))
	if days < minDays {
		days = minDays
	}

	reserve := 0
	for _, rest := range ordered[index+1:] {
		if weak[rest.ID] {
			reserve += p.MinDaysWeak
		} else {
			reserve += p.MinDays
		}
	}
	if ceiling := remaining - reserve; days > ceiling {
		days = ceiling
	}
	if days < 1 {
		days = 1
	}
	return days
}

// dailyTargets derives the per-day workload for one allocation.
// Questions assume roughly MinutesPerQuestion each, so the cap is the
// daily minutes divided by that rate.
func dailyTargets(d domain.BlueprintDomain, remainingWork float64, days, minutesPerDay int, p Params) (questions, lessons, flashcards int) {
	if days < 1 {
		days = 1
	}

	questions = int(math.Ceil(float64(p.TargetQuestionsPerDomain) * remainingWork / float64(days)))
	if maxQuestions := minutesPerDay / p.MinutesPerQuestion; questions > maxQuestions {
		questions = maxQuestions
	}
	if remainingWork > 0 && questions < 1 {
		questions = 1
	}

	// Lessons never drop to zero: completed domains still get one
	// lesson-review pass per day.
	lessons = int(math.Ceil(float64(d.LessonCount) * remainingWork / float64(days)))
	if lessons > p.MaxLessonsPerDay {
		lessons = p.MaxLessonsPerDay
	}
	if lessons < 1 {
		lessons = 1
	}

	flashcards = int(math.Ceil(float64(p.FlashcardsPerDomain) * remainingWork / float64(days)))
	if flashcards > p.MaxFlashcardsPerDay {
		flashcards = p.MaxFlashcardsPerDay
	}

	return questions, lessons, flashcards
}
