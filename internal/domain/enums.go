package domain

type PaceStatus string

const (
	PaceAhead          PaceStatus = "ahead"
	PaceOnTrack        PaceStatus = "on_track"
	PaceSlightlyBehind PaceStatus = "slightly_behind"
	PaceBehind         PaceStatus = "behind"
)

type MilestoneKind string

const (
	MilestoneStart          MilestoneKind = "start"
	MilestoneDomainComplete MilestoneKind = "domain_complete"
	MilestoneMockExam       MilestoneKind = "mock_exam"
	MilestoneReviewStart    MilestoneKind = "review_start"
	MilestoneExam           MilestoneKind = "exam"
)

type PhaseKind string

const (
	PhaseFoundation    PhaseKind = "foundation"
	PhaseReinforcement PhaseKind = "reinforcement"
	PhaseFinalReview   PhaseKind = "final_review"
)

type ActivityKind string

const (
	ActivityLessons    ActivityKind = "lessons"
	ActivityPractice   ActivityKind = "practice"
	ActivityFlashcards ActivityKind = "flashcards"
	ActivityReview     ActivityKind = "review"
	ActivityMockExam   ActivityKind = "mock_exam"
)
