package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcalloway/prepplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDateStyled returns RelativeDate with urgency coloring applied.
// Exam dates inside a week render red, inside a month yellow.
func RelativeDateStyled(t time.Time) string {
	text := RelativeDate(t)
	days := int(math.Round(time.Until(t).Hours() / 24))

	if days < 0 {
		return StyleDim.Render(text)
	}
	if days <= 7 {
		return StyleRed.Render(text)
	}
	if days <= 30 {
		return StyleYellow.Render(text)
	}
	return StyleFg.Render(text)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	tomorrow := now.AddDate(0, 0, 1)
	y3, m3, d3 := tomorrow.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Tomorrow"
	}
	return t.Format("Jan 2, 2006")
}

// MilestoneBadge returns a colored marker for a milestone kind.
func MilestoneBadge(kind domain.MilestoneKind) string {
	switch kind {
	case domain.MilestoneStart:
		return StyleBlue.Render("○ Start")
	case domain.MilestoneDomainComplete:
		return StyleGreen.Render("● Domain")
	case domain.MilestoneMockExam:
		return StylePurple.Render("◆ Mock")
	case domain.MilestoneReviewStart:
		return StyleYellow.Render("▲ Review")
	case domain.MilestoneExam:
		return StyleRed.Render("★ Exam")
	default:
		return StyleDim.Render(string(kind))
	}
}

// PhaseBadge returns a colored label for a curriculum phase.
func PhaseBadge(kind domain.PhaseKind) string {
	switch kind {
	case domain.PhaseFoundation:
		return StyleBlue.Render("Foundation")
	case domain.PhaseReinforcement:
		return StyleYellow.Render("Reinforcement")
	case domain.PhaseFinalReview:
		return StyleRed.Render("Final Review")
	default:
		return StyleDim.Render(string(kind))
	}
}

// WeakBadge marks a domain flagged as a weak area.
func WeakBadge(weak bool) string {
	if weak {
		return StyleRed.Render("weak")
	}
	return ""
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
