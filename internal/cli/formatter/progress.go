package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Color bands for the bar: red below lowBand, yellow up to midBand,
// green above.
const (
	lowBand = 0.33
	midBand = 0.66
)

// RenderProgress draws a fixed-width completion bar with a trailing
// percentage, like [█████░░░░░]  50%. pct is clamped to [0, 1] and
// width to at least 2.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", barStyle(pct).Render(bar), pct*100)
}

func barStyle(pct float64) lipgloss.Style {
	switch {
	case pct < lowBand:
		return StyleRed
	case pct < midBand:
		return StyleYellow
	default:
		return StyleGreen
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
