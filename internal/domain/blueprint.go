package domain

import "fmt"

// BlueprintDomain is one weighted knowledge area of an exam blueprint.
// IDs are opaque labels chosen by the caller; nothing validates them
// against a fixed set.
type BlueprintDomain struct {
	ID            string
	Name          string
	ExamWeight    int // percent of the exam, all domains sum to 100
	LessonCount   int
	QuestionCount int
}

// Blueprint is the ordered set of domains for one exam. Order is the
// display order, not the study order; study order is derived at plan
// generation time.
type Blueprint []BlueprintDomain

func (b Blueprint) TotalLessons() int {
	total := 0
	for _, d := range b {
		total += d.LessonCount
	}
	return total
}

func (b Blueprint) TotalQuestions() int {
	total := 0
	for _, d := range b {
		total += d.QuestionCount
	}
	return total
}

// Validate checks structural soundness: at least one domain, unique
// non-empty IDs, non-negative content counts, and exam weights that sum
// to 100.
func (b Blueprint) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("blueprint has no domains")
	}
	seen := make(map[string]bool, len(b))
	weightSum := 0
	for _, d := range b {
		if d.ID == "" {
			return fmt.Errorf("blueprint domain %q has an empty id", d.Name)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate blueprint domain id %q", d.ID)
		}
		seen[d.ID] = true
		if d.ExamWeight <= 0 || d.ExamWeight > 100 {
			return fmt.Errorf("domain %q has exam weight %d, want 1-100", d.ID, d.ExamWeight)
		}
		if d.LessonCount < 0 || d.QuestionCount < 0 {
			return fmt.Errorf("domain %q has negative content counts", d.ID)
		}
		weightSum += d.ExamWeight
	}
	if weightSum != 100 {
		return fmt.Errorf("exam weights sum to %d, want 100", weightSum)
	}
	return nil
}

// DefaultCFPBlueprint returns the seeded CFP exam blueprint: seven
// domains with the published exam weights and the course's lesson and
// question-bank counts.
func DefaultCFPBlueprint() Blueprint {
	return Blueprint{
		{ID: "GEN", Name: "General Principles of Financial Planning", ExamWeight: 18, LessonCount: 10, QuestionCount: 75},
		{ID: "RISK", Name: "Risk Management and Insurance Planning", ExamWeight: 12, LessonCount: 8, QuestionCount: 75},
		{ID: "INV", Name: "Investment Planning", ExamWeight: 11, LessonCount: 10, QuestionCount: 75},
		{ID: "TAX", Name: "Tax Planning", ExamWeight: 14, LessonCount: 10, QuestionCount: 75},
		{ID: "RET", Name: "Retirement Savings and Income Planning", ExamWeight: 19, LessonCount: 12, QuestionCount: 75},
		{ID: "EST", Name: "Estate Planning", ExamWeight: 12, LessonCount: 10, QuestionCount: 75},
		{ID: "PRO", Name: "Professional Conduct and Regulation", ExamWeight: 15, LessonCount: 8, QuestionCount: 75},
	}
}
