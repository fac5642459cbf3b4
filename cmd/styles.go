package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorError  = lipgloss.Color("#EF4444") // Red
	colorWarn   = lipgloss.Color("#F59E0B") // Amber
	colorResult = lipgloss.Color("#06B6D4") // Cyan
	colorMuted  = lipgloss.Color("#6B7280") // Gray
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	resultStyle = lipgloss.NewStyle().Foreground(colorResult)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// render applies a style unless color output is disabled in the config.
func render(style lipgloss.Style, s string) string {
	if !cfg.Output.Color {
		return s
	}
	return style.Render(s)
}
