package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalloway/prepplan/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStudyDays(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, 14, StudyDays(14, p), "review window eats the whole span, floor applies")
	assert.Equal(t, 14, StudyDays(1, p))
	assert.Equal(t, 106, StudyDays(120, p))
	assert.Equal(t, 86, StudyDays(100, p))
}

func TestAllocateDomains_SumsExactly(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	blueprint := domain.DefaultCFPBlueprint()

	for _, studyDays := range []int{14, 30, 60, 106, 200} {
		ordered := PrioritizeDomains(blueprint, nil, nil)
		allocations := AllocateDomains(today, studyDays, ordered, nil, nil, 2, p)

		require.Len(t, allocations, len(blueprint))
		sum := 0
		for _, a := range allocations {
			sum += a.DaysAllocated
		}
		assert.Equal(t, studyDays, sum, "studyDays=%d", studyDays)
	}
}

func TestAllocateDomains_ContiguousDates(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	blueprint := domain.DefaultCFPBlueprint()
	studyDays := 60

	ordered := PrioritizeDomains(blueprint, nil, nil)
	allocations := AllocateDomains(today, studyDays, ordered, nil, nil, 2, p)

	assert.Equal(t, today, allocations[0].StartDate)
	for i, a := range allocations {
		assert.Equal(t, a.StartDate.AddDate(0, 0, a.DaysAllocated-1), a.EndDate)
		if i > 0 {
			prev := allocations[i-1]
			assert.Equal(t, prev.EndDate.AddDate(0, 0, 1), a.StartDate,
				"allocation %d must start the day after its predecessor ends", i)
		}
	}
	last := allocations[len(allocations)-1]
	assert.Equal(t, today.AddDate(0, 0, studyDays-1), last.EndDate)
}

func TestAllocateDomains_WeakAreaBoost(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)

	// A and B share weight and progress; only A is weak. E absorbs the
	// remainder so neither compared domain does.
	blueprint := domain.Blueprint{
		{ID: "A", Name: "Alpha", ExamWeight: 12, LessonCount: 10, QuestionCount: 75},
		{ID: "B", Name: "Bravo", ExamWeight: 12, LessonCount: 10, QuestionCount: 75},
		{ID: "C", Name: "Charlie", ExamWeight: 40, LessonCount: 10, QuestionCount: 75},
		{ID: "D", Name: "Delta", ExamWeight: 24, LessonCount: 10, QuestionCount: 75},
		{ID: "E", Name: "Echo", ExamWeight: 4, LessonCount: 10, QuestionCount: 75},
	}
	weak := map[string]bool{"A": true}

	ordered := PrioritizeDomains(blueprint, nil, weak)
	require.Equal(t, "A", ordered[0].ID, "weak domain sorts first")

	allocations := AllocateDomains(today, 100, ordered, nil, weak, 2, p)
	byID := make(map[string]int)
	for _, a := range allocations {
		byID[a.DomainID] = a.DaysAllocated
	}

	assert.Equal(t, 15, byID["A"], "weak 12%% domain gets the 1.25x boost")
	assert.Equal(t, 12, byID["B"])
	assert.GreaterOrEqual(t, float64(byID["A"]), 1.25*float64(byID["B"]))
}

func TestAllocateDomains_MinimumFloors(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)

	// Nearly complete domains still get their floors.
	blueprint := domain.Blueprint{
		{ID: "A", Name: "Alpha", ExamWeight: 50, LessonCount: 10, QuestionCount: 75},
		{ID: "B", Name: "Bravo", ExamWeight: 30, LessonCount: 10, QuestionCount: 75},
		{ID: "C", Name: "Charlie", ExamWeight: 20, LessonCount: 10, QuestionCount: 75},
	}
	progress := map[string]int{"A": 95, "B": 95, "C": 95}
	weak := map[string]bool{"B": true}

	ordered := PrioritizeDomains(blueprint, progress, weak)
	allocations := AllocateDomains(today, 60, ordered, progress, weak, 2, p)

	byID := make(map[string]int)
	for _, a := range allocations {
		byID[a.DomainID] = a.DaysAllocated
	}
	assert.GreaterOrEqual(t, byID["A"], p.MinDays)
	assert.GreaterOrEqual(t, byID["B"], p.MinDaysWeak)
}

func TestDailyTargets_CapsAndFloors(t *testing.T) {
	p := DefaultParams()
	d := domain.BlueprintDomain{ID: "TAX", Name: "Tax Planning", ExamWeight: 14, LessonCount: 10, QuestionCount: 75}

	t.Run("questions capped by daily minutes", func(t *testing.T) {
		// 2h/day = 120 min, cap = 60 questions.
		questions, _, _ := dailyTargets(d, 1.0, 1, 120, p)
		assert.Equal(t, 60, questions)
	})

	t.Run("questions at least one while work remains", func(t *testing.T) {
		questions, _, _ := dailyTargets(d, 0.01, 200, 120, p)
		assert.Equal(t, 1, questions)
	})

	t.Run("lessons capped", func(t *testing.T) {
		_, lessons, _ := dailyTargets(d, 1.0, 2, 120, p)
		assert.Equal(t, p.MaxLessonsPerDay, lessons)
	})

	t.Run("flashcards capped", func(t *testing.T) {
		_, _, flashcards := dailyTargets(d, 1.0, 1, 120, p)
		assert.Equal(t, p.MaxFlashcardsPerDay, flashcards)
	})

	t.Run("zero days guarded", func(t *testing.T) {
		questions, lessons, flashcards := dailyTargets(d, 1.0, 0, 120, p)
		assert.GreaterOrEqual(t, questions, 1)
		assert.GreaterOrEqual(t, lessons, 1)
		assert.GreaterOrEqual(t, flashcards, 1)
	})

	t.Run("completed domain keeps one daily lesson", func(t *testing.T) {
		questions, lessons, flashcards := dailyTargets(d, 0, 10, 120, p)
		assert.Zero(t, questions)
		assert.Equal(t, 1, lessons, "lesson floor applies even at 100%% progress")
		assert.Zero(t, flashcards)
	})
}

func TestAllocateDomains_FloorsWhenDomainsExceedDays(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)

	blueprint := make(domain.Blueprint, 9)
	for i := range blueprint {
		id := string(rune('A' + i))
		blueprint[i] = domain.BlueprintDomain{ID: id, Name: id, ExamWeight: 11, LessonCount: 5, QuestionCount: 40}
	}

	ordered := PrioritizeDomains(blueprint, nil, nil)
	allocations := AllocateDomains(today, 5, ordered, nil, nil, 2, p)

	sum := 0
	for _, a := range allocations {
		assert.GreaterOrEqual(t, a.DaysAllocated, 1)
		sum += a.DaysAllocated
	}
	// The one-day floor wins over the exact sum when the span is shorter
	// than the domain list.
	assert.Greater(t, sum, 5)
}

func TestPrioritizeDomains_Ordering(t *testing.T) {
	blueprint := domain.Blueprint{
		{ID: "A", ExamWeight: 20},
		{ID: "B", ExamWeight: 30},
		{ID: "C", ExamWeight: 30},
		{ID: "D", ExamWeight: 20},
	}
	progress := map[string]int{"B": 50, "C": 10}
	weak := map[string]bool{"D": true}

	ordered := PrioritizeDomains(blueprint, progress, weak)
	ids := make([]string, len(ordered))
	for i, d := range ordered {
		ids[i] = d.ID
	}

	// D weak first; C before B (same weight, less progress); A last.
	assert.Equal(t, []string{"D", "C", "B", "A"}, ids)
}

func TestPrioritizeDomains_DoesNotMutateInput(t *testing.T) {
	blueprint := domain.Blueprint{
		{ID: "A", ExamWeight: 10},
		{ID: "B", ExamWeight: 90},
	}
	PrioritizeDomains(blueprint, nil, nil)
	assert.Equal(t, "A", blueprint[0].ID)
}
