package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)
)

// Operation indicator styles
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	InfoIndicator    = InfoStyle.Render("•")
)

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
