package planner

import (
	"sort"

	"github.com/mcalloway/prepplan/internal/domain"
)

// PrioritizeDomains orders blueprint domains for allocation: weak areas
// first, then descending exam weight, then ascending current progress.
// The sort is stable, so equally ranked domains keep blueprint order.
// The same ordering drives both day allocation and study order.
func PrioritizeDomains(blueprint domain.Blueprint, progress map[string]int, weak map[string]bool) []domain.BlueprintDomain {
	ordered := make([]domain.BlueprintDomain, len(blueprint))
	copy(ordered, blueprint)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if weak[a.ID] != weak[b.ID] {
			return weak[a.ID]
		}
		if a.ExamWeight != b.ExamWeight {
			return a.ExamWeight > b.ExamWeight
		}
		return progress[a.ID] < progress[b.ID]
	})

	return ordered
}
