package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	headerBg  = lipgloss.Color("235")
	statusBg  = lipgloss.Color("236")
	dimColor  = lipgloss.Color("8")
	shortFg   = lipgloss.Color("14") // Cyan
	symbolFg  = lipgloss.Color("11") // Yellow
	noMatchFg = lipgloss.Color("9")  // Red

	// Source name colors, assigned in first-seen order
	sourceColorList = []lipgloss.Color{
		lipgloss.Color("10"),  // Green
		lipgloss.Color("13"),  // Magenta
		lipgloss.Color("12"),  // Blue
		lipgloss.Color("208"), // Orange
		lipgloss.Color("159"), // Light blue
	}
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Background(headerBg).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(statusBg).
			Padding(0, 1)

	shortStyle = lipgloss.NewStyle().
			Foreground(shortFg).
			Bold(true)

	symbolStyle = lipgloss.NewStyle().
			Foreground(symbolFg)

	noMatchStyle = lipgloss.NewStyle().
			Foreground(noMatchFg)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	sourceStyles []lipgloss.Style
)

func init() {
	for _, color := range sourceColorList {
		sourceStyles = append(sourceStyles, lipgloss.NewStyle().Foreground(color))
	}
}
