package commands

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Colors used by command output.
var (
	colorCyan = lipgloss.Color("#00FFFF")
	colorRed  = lipgloss.Color("#FF0000")
	colorGray = lipgloss.Color("#666666")
)

// Base styles reused by commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	noteStyle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// styled renders s with the given style on a terminal and returns it
// unchanged when output is piped.
func styled(s lipgloss.Style, text string) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return s.Render(text)
	}
	return text
}
