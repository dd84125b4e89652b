package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalloway/prepplan/internal/domain"
)

func TestBuildMilestones_StartAndExamPinned(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	examDate := date(2026, 6, 1)
	totalDays := daysBetween(today, examDate)

	ordered := PrioritizeDomains(domain.DefaultCFPBlueprint(), nil, nil)
	allocations := AllocateDomains(today, StudyDays(totalDays, p), ordered, nil, nil, 2, p)

	milestones := BuildMilestones(today, allocations, examDate, totalDays, p)
	require.NotEmpty(t, milestones)

	first := milestones[0]
	assert.Equal(t, domain.MilestoneStart, first.Kind)
	assert.Equal(t, today, first.Date)
	assert.Zero(t, first.Position)

	last := milestones[len(milestones)-1]
	assert.Equal(t, domain.MilestoneExam, last.Kind)
	assert.Equal(t, examDate, last.Date)
	assert.Equal(t, 100.0, last.Position)

	starts, exams := 0, 0
	for _, m := range milestones {
		if m.Kind == domain.MilestoneStart {
			starts++
		}
		if m.Kind == domain.MilestoneExam {
			exams++
		}
	}
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, exams)
}

func TestBuildMilestones_SortedWithMonotonicPositions(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	examDate := date(2026, 5, 1)
	totalDays := daysBetween(today, examDate)

	ordered := PrioritizeDomains(domain.DefaultCFPBlueprint(), nil, nil)
	allocations := AllocateDomains(today, StudyDays(totalDays, p), ordered, nil, nil, 2, p)

	milestones := BuildMilestones(today, allocations, examDate, totalDays, p)
	for i := 1; i < len(milestones); i++ {
		assert.False(t, milestones[i].Date.Before(milestones[i-1].Date), "dates must be ascending")
		assert.GreaterOrEqual(t, milestones[i].Position, milestones[i-1].Position)
	}
}

func TestBuildMilestones_MockExamCadence(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	examDate := date(2026, 6, 1) // 120 days out

	milestones := BuildMilestones(today, nil, examDate, 120, p)

	cutoff := examDate.AddDate(0, 0, -p.MockExamLeadDays)
	var mocks []int
	for _, m := range milestones {
		if m.Kind == domain.MilestoneMockExam {
			mocks = append(mocks, daysBetween(today, m.Date))
			assert.True(t, m.Date.Before(cutoff), "mock exams stop before the exam lead window")
		}
	}

	// Every 14 days from day 14 up to day 112, but 112 >= cutoff (113),
	// so 14..112 all qualify except those at or past the cutoff.
	require.NotEmpty(t, mocks)
	assert.Equal(t, 14, mocks[0])
	for i := 1; i < len(mocks); i++ {
		assert.Equal(t, 14, mocks[i]-mocks[i-1])
	}
}

func TestBuildMilestones_OneDomainCompletePerAllocation(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	examDate := date(2026, 5, 1)
	totalDays := daysBetween(today, examDate)

	blueprint := domain.DefaultCFPBlueprint()
	ordered := PrioritizeDomains(blueprint, nil, nil)
	allocations := AllocateDomains(today, StudyDays(totalDays, p), ordered, nil, nil, 2, p)

	milestones := BuildMilestones(today, allocations, examDate, totalDays, p)

	seen := make(map[string]bool)
	for _, m := range milestones {
		if m.Kind == domain.MilestoneDomainComplete {
			assert.NotEmpty(t, m.DomainID)
			seen[m.DomainID] = true
		}
	}
	assert.Len(t, seen, len(blueprint))
}

func TestBuildMilestones_ReviewStartClampedToToday(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	examDate := date(2026, 2, 8) // review window reaches before today

	milestones := BuildMilestones(today, nil, examDate, 7, p)

	for _, m := range milestones {
		if m.Kind == domain.MilestoneReviewStart {
			assert.Equal(t, today, m.Date)
			assert.GreaterOrEqual(t, m.Position, 0.0)
			return
		}
	}
	t.Fatal("no review-start milestone emitted")
}
