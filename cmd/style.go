package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// useColor reports whether output should be styled.
func useColor() bool {
	if cfg != nil {
		switch strings.ToLower(cfg.Color) {
		case "always":
			return true
		case "never":
			return false
		}
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func styled(s lipgloss.Style, text string) string {
	if !useColor() {
		return text
	}
	return s.Render(text)
}
