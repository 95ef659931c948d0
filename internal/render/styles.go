// Package render formats recipes, comments, and profiles for terminal
// output.
package render

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorGood   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorBad    = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	likeStyle   = lipgloss.NewStyle().Foreground(colorGood)
	errStyle    = lipgloss.NewStyle().Foreground(colorBad)
)

// Error styles an error line for the terminal.
func Error(msg string) string {
	return errStyle.Render("error: " + msg)
}
