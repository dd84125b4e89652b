package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// BuildMilestones emits the dated plan events sorted ascending: plan
// start, one completion per allocation, periodic mock exams, review
// start, and exam day. Positions are the 0-100 day offset within
// totalDays; the exam is pinned to exactly 100 since integer day
// arithmetic can leave other positions short of it.
func BuildMilestones(today time.Time, allocations []contract.DomainAllocation, examDate time.Time, totalDays int, p Params) []contract.Milestone {
	today = dateOnly(today)
	examDate = dateOnly(examDate)

	span := totalDays
	if span < 1 {
		span = 1
	}
	position := func(d time.Time) float64 {
		pos := float64(daysBetween(today, d)) / float64(span) * 100
		if pos < 0 {
			pos = 0
		}
		if pos > 100 {
			pos = 100
		}
		return pos
	}

	milestones := []contract.Milestone{
		{Date: today, Label: "Start study plan", Kind: domain.MilestoneStart, Position: 0},
	}

	for _, a := range allocations {
		milestones = append(milestones, contract.Milestone{
			Date:     a.EndDate,
			Label:    "Complete " + a.Name,
			Kind:     domain.MilestoneDomainComplete,
			DomainID: a.DomainID,
			Position: position(a.EndDate),
		})
	}

	mockCutoff := addDays(examDate, -p.MockExamLeadDays)
	n := 1
	for d := addDays(today, p.MockExamIntervalDays); d.Before(mockCutoff); d = addDays(d, p.MockExamIntervalDays) {
		milestones = append(milestones, contract.Milestone{
			Date:     d,
			Label:    fmt.Sprintf("Mock exam %d", n),
			Kind:     domain.MilestoneMockExam,
			Position: position(d),
		})
		n++
	}

	reviewStart := addDays(examDate, -p.ReviewWindowDays)
	if reviewStart.Before(today) {
		reviewStart = today
	}
	milestones = append(milestones, contract.Milestone{
		Date:     reviewStart,
		Label:    "Begin final review",
		Kind:     domain.MilestoneReviewStart,
		Position: position(reviewStart),
	})

	milestones = append(milestones, contract.Milestone{
		Date:     examDate,
		Label:    "Exam day",
		Kind:     domain.MilestoneExam,
		Position: 100,
	})

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].Date.Before(milestones[j].Date)
	})

	return milestones
}
