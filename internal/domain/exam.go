package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Exam is a registered exam profile: the target date plus the user's
// study-time preferences. The blueprint rows live alongside it.
type Exam struct {
	ID               string
	ShortID          string
	Name             string
	ExamDate         time.Time
	HoursPerDay      int
	StudyDaysPerWeek int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var shortIDPattern = regexp.MustCompile(`^[A-Z]{2,6}[0-9]{0,4}$`)

// ValidateShortID checks the short ID format: 2-6 uppercase letters
// optionally followed by up to 4 digits (e.g. CFP, SEC65, CPA01).
func ValidateShortID(id string) error {
	if !shortIDPattern.MatchString(id) {
		return fmt.Errorf("invalid short ID %q: want 2-6 uppercase letters plus optional digits", id)
	}
	return nil
}

// Validate checks the profile fields that plan generation depends on.
// The exam date itself is validated against "today" at generation time,
// not here.
func (e *Exam) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("exam name is required")
	}
	if err := ValidateShortID(e.ShortID); err != nil {
		return err
	}
	if e.ExamDate.IsZero() {
		return fmt.Errorf("exam date is required")
	}
	if e.HoursPerDay < 1 || e.HoursPerDay > 12 {
		return fmt.Errorf("hours per day %d out of range 1-12", e.HoursPerDay)
	}
	if e.StudyDaysPerWeek < 1 || e.StudyDaysPerWeek > 7 {
		return fmt.Errorf("study days per week %d out of range 1-7", e.StudyDaysPerWeek)
	}
	return nil
}
