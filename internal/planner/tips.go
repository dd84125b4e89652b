package planner

import (
	"math"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// StudyTips returns rule-based advice keyed on days remaining until the
// exam, plus a few always-on habits.
func StudyTips(daysLeft int) []string {
	var tips []string

	switch {
	case daysLeft < 30:
		tips = append(tips,
			"Prioritize weak domains over full coverage",
			"Take a full-length mock exam every week",
			"Shift most study time to timed practice questions",
		)
	case daysLeft < 60:
		tips = append(tips,
			"Finish first-pass lessons in the next two weeks",
			"Alternate lesson days with practice-question days",
			"Take a mock exam every other week to benchmark",
		)
	default:
		tips = append(tips,
			"Build a steady daily routine before worrying about speed",
			"Work domains in study order and resist skipping ahead",
			"Grow the flashcard deck now so review is cheap later",
		)
	}

	tips = append(tips,
		"Study at the same time each day",
		"Review flashcards in short spaced bursts, not marathons",
		"Log study activity daily so pace tracking stays honest",
	)

	return tips
}

// domainExtras holds one extra recommendation for each seeded CFP
// blueprint domain. Unknown domain IDs simply get the banded advice.
var domainExtras = map[string]string{
	"GEN":  "Revisit the seven-step planning process until you can recite it",
	"RISK": "Focus on policy provisions and the taxation of benefits",
	"INV":  "Work the time-value and portfolio math by hand, not calculator recipes",
	"TAX":  "Memorize the current-year brackets, phaseouts, and key thresholds",
	"RET":  "Drill the distribution and rollover rules until they are automatic",
	"EST":  "Sketch the trust structures on paper instead of rereading them",
	"PRO":  "Read the conduct standards end to end at least twice",
}

// DomainRecommendations returns progress-banded advice for one domain.
func DomainRecommendations(d domain.BlueprintDomain, percent int) []string {
	var recs []string

	switch {
	case percent < 25:
		recs = append(recs,
			"Start with the lesson sequence before any timed practice",
			"Skim the domain outline first so new material has somewhere to land",
		)
	case percent < 50:
		recs = append(recs,
			"Keep alternating lessons with short practice sets",
			"Flag every missed question for a second pass",
		)
	case percent < 75:
		recs = append(recs,
			"Shift toward timed question blocks over new reading",
			"Rework flagged questions until the miss rate drops",
		)
	default:
		recs = append(recs,
			"Maintain with short daily question sets",
			"Teach the tricky concepts aloud to expose gaps",
		)
	}

	if extra, ok := domainExtras[d.ID]; ok {
		recs = append(recs, extra)
	}

	return recs
}

// Readiness share of each progress signal in the overall score.
const (
	questionShareWeight = 0.4
	lessonShareWeight   = 0.4
	mockShareWeight     = 0.2
)

// ComputeReadiness blends question, lesson, and mock-exam progress into
// a weighted 0-100 readiness score. Expected mock exams scale with the
// timeline at one per interval, floored at 1.
func ComputeReadiness(blueprint domain.Blueprint, totals domain.StudyTotals, totalDays int, p Params) contract.Readiness {
	questionPct := pct(totals.Questions, blueprint.TotalQuestions())
	lessonPct := pct(totals.Lessons, blueprint.TotalLessons())

	expectedMocks := totalDays / p.MockExamIntervalDays
	if expectedMocks < 1 {
		expectedMocks = 1
	}
	mockPct := pct(totals.MockExams, expectedMocks)

	overall := int(math.Round(
		float64(questionPct)*questionShareWeight +
			float64(lessonPct)*lessonShareWeight +
			float64(mockPct)*mockShareWeight,
	))

	return contract.Readiness{
		Overall:     overall,
		QuestionPct: questionPct,
		LessonPct:   lessonPct,
		MockPct:     mockPct,
	}
}

func pct(done, total int) int {
	if total < 1 {
		return 0
	}
	p := int(math.Round(float64(done) / float64(total) * 100))
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}
