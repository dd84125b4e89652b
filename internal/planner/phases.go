package planner

import (
	"time"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// BuildPhases splits the timeline into the three curriculum phases.
// Foundation and Reinforcement end at the proportional boundaries;
// Final Review always spans exactly the trailing review window. When
// totalDays is small the proportional boundaries can overlap the review
// window; that overlap is a documented boundary condition and is left
// as computed.
func BuildPhases(today, examDate time.Time, totalDays int, allocations []contract.DomainAllocation, p Params) []contract.Phase {
	today = dateOnly(today)
	examDate = dateOnly(examDate)

	foundationEnd := addDays(today, int(float64(totalDays)*p.FoundationFrac))
	reinforcementEnd := addDays(today, int(float64(totalDays)*p.ReinforcementFrac))

	allIDs := make([]string, len(allocations))
	for i, a := range allocations {
		allIDs[i] = a.DomainID
	}
	split := (len(allIDs) + 1) / 2
	foundationFocus := allIDs[:split]
	reinforcementFocus := allIDs[split:]

	return []contract.Phase{
		{
			Kind:        domain.PhaseFoundation,
			Name:        "Foundation",
			StartDate:   today,
			EndDate:     foundationEnd,
			Description: "First-pass coverage of the highest priority domains.",
			Focus:       foundationFocus,
			Activities: []string{
				"Work through lessons in study order",
				"Short practice sets after each lesson",
				"Build the flashcard deck as you go",
			},
		},
		{
			Kind:        domain.PhaseReinforcement,
			Name:        "Reinforcement",
			StartDate:   addDays(foundationEnd, 1),
			EndDate:     reinforcementEnd,
			Description: "Finish the remaining domains and consolidate earlier material.",
			Focus:       reinforcementFocus,
			Activities: []string{
				"Complete the remaining lesson sequence",
				"Longer mixed practice sets",
				"Daily flashcard review",
			},
		},
		{
			Kind:        domain.PhaseFinalReview,
			Name:        "Final Review",
			StartDate:   addDays(examDate, -p.ReviewWindowDays),
			EndDate:     addDays(examDate, -1),
			Description: "Cross-domain review and full exam simulation.",
			Focus:       allIDs,
			Activities: []string{
				"Full-length mock exams under timed conditions",
				"Targeted review of missed questions",
				"Flashcard sweeps across all domains",
			},
		},
	}
}
