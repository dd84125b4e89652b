package planner

import (
	"time"

	"github.com/mcalloway/prepplan/internal/contract"
	"github.com/mcalloway/prepplan/internal/domain"
)

// weekdayOrder lays the week out Monday-first for display and storage.
var weekdayOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// studyDayPatterns maps a study-days-per-week count to its weekday
// mask. Unsupported counts fall back to the 5-day pattern.
var studyDayPatterns = map[int][]time.Weekday{
	7: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday},
	6: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
	5: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	4: {time.Monday, time.Tuesday, time.Thursday, time.Friday},
	3: {time.Monday, time.Wednesday, time.Friday},
}

// Activity split for a regular study day.
const (
	lessonShare    = 0.30
	practiceShare  = 0.40
	flashcardShare = 0.15
	reviewShare    = 0.15
)

// Saturday mock-exam block. The override fires only when Saturday is a
// study day, so it applies to the 6- and 7-day patterns.
const (
	mockExamMin   = 180
	mockReviewMin = 60
)

// BuildWeeklySchedule maps the study-days-per-week preference onto a
// fixed weekday pattern and splits each study day's minutes across
// activities in fixed proportions.
func BuildWeeklySchedule(hoursPerDay, studyDaysPerWeek int, p Params) contract.WeeklySchedule {
	pattern, ok := studyDayPatterns[studyDaysPerWeek]
	if !ok {
		pattern = studyDayPatterns[5]
	}
	studyDays := make(map[time.Weekday]bool, len(pattern))
	for _, wd := range pattern {
		studyDays[wd] = true
	}

	minutes := hoursPerDay * 60

	var week contract.WeeklySchedule
	for i, wd := range weekdayOrder {
		day := contract.DayPlan{Weekday: wd}
		if studyDays[wd] {
			day.StudyDay = true
			if wd == time.Saturday {
				day.PlannedMin = mockExamMin + mockReviewMin
				day.Activities = []contract.Activity{
					{Kind: domain.ActivityMockExam, Minutes: mockExamMin, Note: "Full-length timed mock exam"},
					{Kind: domain.ActivityReview, Minutes: mockReviewMin, Note: "Review missed questions"},
				}
			} else {
				day.PlannedMin = minutes
				day.Activities = splitStudyDay(minutes)
			}
		}
		week.Days[i] = day
	}

	return week
}

// splitStudyDay divides a study day's minutes 30/40/15/15 across
// lessons, practice, flashcards, and review. Rounding remainder goes
// to practice so the blocks sum to the full day.
func splitStudyDay(minutes int) []contract.Activity {
	lessonMin := int(float64(minutes) * lessonShare)
	flashMin := int(float64(minutes) * flashcardShare)
	reviewMin := int(float64(minutes) * reviewShare)
	practiceMin := minutes - lessonMin - flashMin - reviewMin

	return []contract.Activity{
		{Kind: domain.ActivityLessons, Minutes: lessonMin, Note: "New lesson content"},
		{Kind: domain.ActivityPractice, Minutes: practiceMin, Note: "Practice questions"},
		{Kind: domain.ActivityFlashcards, Minutes: flashMin, Note: "Flashcard drill"},
		{Kind: domain.ActivityReview, Minutes: reviewMin, Note: "Review earlier material"},
	}
}
