package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcalloway/prepplan/internal/domain"
)

func TestEvaluatePace_Ahead(t *testing.T) {
	// 40 lessons over 100 study days, 50 days in, 25 done:
	// expected 20, diff +5.
	result := EvaluatePace(PaceInput{
		Now:              date(2026, 3, 23),
		StartDate:        date(2026, 2, 1),
		StudyDays:        100,
		LessonsCompleted: 25,
		TotalLessons:     40,
	})

	assert.Equal(t, domain.PaceAhead, result.Status)
	assert.Equal(t, 20, result.ExpectedLessons)
	assert.Equal(t, 5, result.Diff)
}

func TestEvaluatePace_StatusLadder(t *testing.T) {
	eval := func(completed int) domain.PaceStatus {
		return EvaluatePace(PaceInput{
			Now:              date(2026, 3, 23), // 50 days elapsed
			StartDate:        date(2026, 2, 1),
			StudyDays:        100,
			LessonsCompleted: completed,
			TotalLessons:     40,
		}).Status
	}

	// expected = 20 at the midpoint
	assert.Equal(t, domain.PaceBehind, eval(14))         // diff -6
	assert.Equal(t, domain.PaceSlightlyBehind, eval(15)) // diff -5
	assert.Equal(t, domain.PaceSlightlyBehind, eval(18)) // diff -2
	assert.Equal(t, domain.PaceOnTrack, eval(19))        // diff -1
	assert.Equal(t, domain.PaceOnTrack, eval(21))        // diff +1
	assert.Equal(t, domain.PaceAhead, eval(22))          // diff +2
}

func TestEvaluatePace_MonotonicInCompleted(t *testing.T) {
	rank := map[domain.PaceStatus]int{
		domain.PaceBehind:         0,
		domain.PaceSlightlyBehind: 1,
		domain.PaceOnTrack:        2,
		domain.PaceAhead:          3,
	}

	prev := -1
	for completed := 0; completed <= 40; completed++ {
		status := EvaluatePace(PaceInput{
			Now:              date(2026, 3, 23),
			StartDate:        date(2026, 2, 1),
			StudyDays:        100,
			LessonsCompleted: completed,
			TotalLessons:     40,
		}).Status
		assert.GreaterOrEqual(t, rank[status], prev, "completed=%d", completed)
		prev = rank[status]
	}
}

func TestEvaluatePace_AdjustedPace(t *testing.T) {
	t.Run("long runway rounds to one decimal", func(t *testing.T) {
		result := EvaluatePace(PaceInput{
			Now:          date(2026, 2, 1),
			StartDate:    date(2026, 2, 1),
			StudyDays:    106,
			TotalLessons: 40,
		})
		assert.InDelta(t, 0.4, result.AdjustedPace, 1e-9)
	})

	t.Run("short runway", func(t *testing.T) {
		result := EvaluatePace(PaceInput{
			Now:          date(2026, 2, 1),
			StartDate:    date(2026, 2, 1),
			StudyDays:    14,
			TotalLessons: 40,
		})
		assert.InDelta(t, 2.9, result.AdjustedPace, 1e-9)
	})
}

func TestEvaluatePace_EdgeCases(t *testing.T) {
	t.Run("elapsed past study days clamps expected", func(t *testing.T) {
		result := EvaluatePace(PaceInput{
			Now:              date(2026, 8, 1),
			StartDate:        date(2026, 2, 1),
			StudyDays:        30,
			LessonsCompleted: 40,
			TotalLessons:     40,
		})
		assert.Equal(t, 40, result.ExpectedLessons)
		assert.Equal(t, domain.PaceOnTrack, result.Status)
		assert.Zero(t, result.AdjustedPace)
	})

	t.Run("start date in the future counts as day zero", func(t *testing.T) {
		result := EvaluatePace(PaceInput{
			Now:          date(2026, 2, 1),
			StartDate:    date(2026, 3, 1),
			StudyDays:    30,
			TotalLessons: 40,
		})
		assert.Zero(t, result.ExpectedLessons)
		assert.Equal(t, domain.PaceOnTrack, result.Status)
	})

	t.Run("invalid input degrades to behind", func(t *testing.T) {
		result := EvaluatePace(PaceInput{
			Now:          date(2026, 2, 1),
			StartDate:    date(2026, 2, 1),
			StudyDays:    0,
			TotalLessons: 40,
		})
		assert.Equal(t, domain.PaceBehind, result.Status)
		assert.NotEmpty(t, result.Message)
	})
}
