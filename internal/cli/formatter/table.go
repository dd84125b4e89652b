package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spaces between table columns.
const colGap = 2

// RenderTable lays headers and rows out as aligned columns with a dim
// rule under the header. Cells are measured with lipgloss.Width so
// styled content lines up with plain content.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		padColumn(&b, h, widths, i)
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			padColumn(&b, cell, widths, i)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// columnWidths returns the widest visible cell per column, headers
// included. Rows may be ragged; short rows just leave later columns at
// their header width.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// padColumn writes the spacing that follows a cell. The last column
// gets none so lines carry no trailing blanks.
func padColumn(b *strings.Builder, cell string, widths []int, i int) {
	if i >= len(widths)-1 {
		return
	}
	pad := widths[i] - lipgloss.Width(cell)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad+colGap))
}
