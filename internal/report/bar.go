package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// bar renders a horizontal bar for percent in [0, 100], preceded by label
// padded to labelWidth.
func bar(label string, labelWidth int, percent float64, width int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Width(labelWidth).Render(label))
	b.WriteString("  ")

	barWidth := max(width-labelWidth-8, 4)
	filled := min(max(int(float64(barWidth)*percent/100), 0), barWidth)

	b.WriteString(lipgloss.NewStyle().Background(secondary).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(border).Render(strings.Repeat(" ", barWidth-filled)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %3.0f%%", percent)))
	return b.String()
}
