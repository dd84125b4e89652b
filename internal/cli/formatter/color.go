package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcalloway/prepplan/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PaceColor returns the lipgloss style corresponding to the given pace status.
func PaceColor(status domain.PaceStatus) lipgloss.Style {
	switch status {
	case domain.PaceAhead:
		return StyleGreen
	case domain.PaceOnTrack:
		return StyleGreen
	case domain.PaceSlightlyBehind:
		return StyleYellow
	case domain.PaceBehind:
		return StyleRed
	default:
		return StyleDim
	}
}

// PaceIndicator returns a colored pace indicator string such as "● AHEAD".
func PaceIndicator(status domain.PaceStatus) string {
	switch status {
	case domain.PaceAhead:
		return StyleGreen.Render("▲ AHEAD")
	case domain.PaceOnTrack:
		return StyleGreen.Render("● ON TRACK")
	case domain.PaceSlightlyBehind:
		return StyleYellow.Render("◆ SLIGHTLY BEHIND")
	case domain.PaceBehind:
		return StyleRed.Render("▼ BEHIND")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
