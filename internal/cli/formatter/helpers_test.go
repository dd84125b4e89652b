package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcalloway/prepplan/internal/domain"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDateFrom(tt.input, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHumanDate(t *testing.T) {
	past := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2022", HumanDate(past))

	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Tomorrow", HumanDate(time.Now().AddDate(0, 0, 1)))
}

func TestMilestoneBadge(t *testing.T) {
	tests := []struct {
		kind     domain.MilestoneKind
		contains string
	}{
		{domain.MilestoneStart, "Start"},
		{domain.MilestoneDomainComplete, "Domain"},
		{domain.MilestoneMockExam, "Mock"},
		{domain.MilestoneReviewStart, "Review"},
		{domain.MilestoneExam, "Exam"},
	}
	for _, tt := range tests {
		assert.Contains(t, MilestoneBadge(tt.kind), tt.contains)
	}
}

func TestPaceIndicator(t *testing.T) {
	tests := []struct {
		status   domain.PaceStatus
		contains string
	}{
		{domain.PaceAhead, "AHEAD"},
		{domain.PaceOnTrack, "ON TRACK"},
		{domain.PaceSlightlyBehind, "SLIGHTLY BEHIND"},
		{domain.PaceBehind, "BEHIND"},
	}
	for _, tt := range tests {
		assert.Contains(t, PaceIndicator(tt.status), tt.contains)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "2h 30m", FormatMinutes(150))
}

func TestTruncID(t *testing.T) {
	got := TruncID("abcdefgh12345678")
	assert.Contains(t, got, "abcdefgh")
	assert.NotContains(t, got, "12345678")
}
