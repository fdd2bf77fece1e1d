package cmd

import "charm.land/lipgloss/v2"

// Output styles shared by the listing and drill commands.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	styleCorrect = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)

	styleWrong = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E")).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#14B8A6"))
)
