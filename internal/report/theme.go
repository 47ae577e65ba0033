package report

import "charm.land/lipgloss/v2"

var (
	primary   = lipgloss.Color("#8B5CF6")
	secondary = lipgloss.Color("#14B8A6")
	accent    = lipgloss.Color("#F97316")
	success   = lipgloss.Color("#22C55E")
	danger    = lipgloss.Color("#F43F5E")
	text      = lipgloss.Color("#F8FAFC")
	textDim   = lipgloss.Color("#94A3B8")
	border    = lipgloss.Color("#334155")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textDim)

	labelStyle = lipgloss.NewStyle().
			Foreground(text)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)

// levelStyle colors a readiness badge.
func levelStyle(level string) lipgloss.Style {
	c := danger
	switch level {
	case "ready":
		c = success
	case "almost-ready":
		c = accent
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
