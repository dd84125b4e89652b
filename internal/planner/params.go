package planner

// Params holds the tunable planning constants. Allocation logic reads
// everything from here so tuning never touches the algorithms.
type Params struct {
	ReviewWindowDays     int     // trailing cross-domain review period
	MockExamIntervalDays int     // spacing between mock-exam milestones
	MockExamLeadDays     int     // mock exams stop this many days before the exam
	MinStudyDays         int     // floor for the study-day count
	FoundationFrac       float64 // proportional end of the foundation phase
	ReinforcementFrac    float64 // proportional end of the reinforcement phase
	WeakAreaBoost        float64 // weight multiplier for weak-area domains
	MinDays              int     // per-domain allocation floor
	MinDaysWeak          int     // per-domain allocation floor when weak
	TargetQuestionsPerDomain int
	FlashcardsPerDomain      int
	MaxLessonsPerDay         int
	MaxFlashcardsPerDay      int
	MinutesPerQuestion       int
}

func DefaultParams() Params {
	return Params{
		ReviewWindowDays:         14,
		MockExamIntervalDays:     14,
		MockExamLeadDays:         7,
		MinStudyDays:             14,
		FoundationFrac:           0.4,
		ReinforcementFrac:        0.7,
		WeakAreaBoost:            1.25,
		MinDays:                  3,
		MinDaysWeak:              5,
		TargetQuestionsPerDomain: 150,
		FlashcardsPerDomain:      30,
		MaxLessonsPerDay:         3,
		MaxFlashcardsPerDay:      20,
		MinutesPerQuestion:       2,
	}
}
