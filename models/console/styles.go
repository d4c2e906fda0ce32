package console

import (
	"github.com/charmbracelet/lipgloss"

	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

type Styles struct {
	plain bool

	Title   lipgloss.Style
	Ship    lipgloss.Style
	Hit     lipgloss.Style
	Miss    lipgloss.Style
	Buffer  lipgloss.Style
	Water   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Outcome lipgloss.Style
	Over    lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Ship:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00B4D8")),
		Hit:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F56")),
		Miss:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBD2E")),
		Buffer:  lipgloss.NewStyle().Faint(true),
		Water:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5C7080")),
		Info:    lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBD2E")),
		Outcome: lipgloss.NewStyle().Bold(true),
		Over:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#27C93F")),
	}
}

// Styles that leave text untouched. Used for tests and dumb terminals.
func NewPlainStyles() Styles {
	return Styles{plain: true}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return style.Render(text)
}

func (s Styles) forMessage(kind mb.MessageKind) lipgloss.Style {
	switch kind {
	case mb.MessageKindWarning:
		return s.Warning
	case mb.MessageKindOutcome:
		return s.Outcome
	case mb.MessageKindGameOver:
		return s.Over
	default:
		return s.Info
	}
}
