package renderer

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorAccent    = lipgloss.Color("11")  // bright yellow
	colorDim       = lipgloss.Color("240") // gray

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeading = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	styleMetricValue = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	styleBar = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleCount = lipgloss.NewStyle().
			Foreground(colorDim)
)
