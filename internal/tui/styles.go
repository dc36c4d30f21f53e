package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/holdem-tutor/internal/deck"
)

const (
	accentColor = lipgloss.Color("#04B575")
	mutedColor  = lipgloss.Color("#626262")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	HiddenCardStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// renderCards colours cards by suit. A nil slice with hidden set renders as
// face-down cards.
func renderCards(cards []deck.Card, hidden bool) string {
	if hidden {
		return HiddenCardStyle.Render("[?? ??]")
	}
	if len(cards) == 0 {
		return InfoStyle.Render("-")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = RedCardStyle.Render(c.String())
		} else {
			parts[i] = BlackCardStyle.Render(c.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
