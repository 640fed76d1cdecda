package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// Button is a styled, non-interactive button label. Screens decide what a
// key press means; the button only reflects whether the action is available.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render(b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow joins buttons horizontally with a gap.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "   ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
