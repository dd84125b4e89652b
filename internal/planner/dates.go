package planner

import "time"

// dateOnly truncates t to its civil date, rebuilt in UTC. All planning
// arithmetic runs on these values so daylight-saving transitions and
// time-of-day never shift a boundary.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar-day difference to - from.
// Two timestamps on the same calendar date yield 0 regardless of
// time of day.
func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func addDays(t time.Time, days int) time.Time {
	return dateOnly(t).AddDate(0, 0, days)
}
