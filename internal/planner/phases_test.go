package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalloway/prepplan/internal/domain"
)

func TestBuildPhases_Boundaries(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	examDate := date(2026, 6, 1)
	totalDays := daysBetween(today, examDate) // 120

	ordered := PrioritizeDomains(domain.DefaultCFPBlueprint(), nil, nil)
	allocations := AllocateDomains(today, StudyDays(totalDays, p), ordered, nil, nil, 2, p)

	phases := BuildPhases(today, examDate, totalDays, allocations, p)
	require.Len(t, phases, 3)

	foundation, reinforcement, review := phases[0], phases[1], phases[2]

	assert.Equal(t, domain.PhaseFoundation, foundation.Kind)
	assert.Equal(t, today, foundation.StartDate)
	assert.Equal(t, today.AddDate(0, 0, 48), foundation.EndDate) // floor(120*0.4)

	assert.Equal(t, domain.PhaseReinforcement, reinforcement.Kind)
	assert.Equal(t, foundation.EndDate.AddDate(0, 0, 1), reinforcement.StartDate)
	assert.Equal(t, today.AddDate(0, 0, 84), reinforcement.EndDate) // floor(120*0.7)

	assert.Equal(t, domain.PhaseFinalReview, review.Kind)
	assert.Equal(t, examDate.AddDate(0, 0, -p.ReviewWindowDays), review.StartDate)
	assert.Equal(t, examDate.AddDate(0, 0, -1), review.EndDate)
}

func TestBuildPhases_FocusSplit(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)
	examDate := date(2026, 6, 1)

	blueprint := domain.DefaultCFPBlueprint()
	ordered := PrioritizeDomains(blueprint, nil, nil)
	allocations := AllocateDomains(today, 106, ordered, nil, nil, 2, p)

	phases := BuildPhases(today, examDate, 120, allocations, p)

	// First half (rounded up) of study order goes to Foundation, the
	// rest to Reinforcement, everything to Final Review.
	assert.Len(t, phases[0].Focus, 4)
	assert.Len(t, phases[1].Focus, 3)
	assert.Len(t, phases[2].Focus, len(blueprint))
	assert.Equal(t, allocations[0].DomainID, phases[0].Focus[0])
}

func TestBuildPhases_ReviewWindowAlwaysFourteenDays(t *testing.T) {
	p := DefaultParams()
	today := date(2026, 2, 1)

	for _, examDate := range []struct {
		d    string
		exam int
	}{
		{"short", 20}, {"medium", 60}, {"long", 200},
	} {
		end := today.AddDate(0, 0, examDate.exam)
		phases := BuildPhases(today, end, examDate.exam, nil, p)
		review := phases[2]
		assert.Equal(t, p.ReviewWindowDays-1, daysBetween(review.StartDate, review.EndDate), examDate.d)
	}
}
