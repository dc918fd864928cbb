package components

import (
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/ui/theme"
)

// Button is a focusable label. Danger buttons draw in the error color.
type Button struct {
	Label  string
	Active bool
	Danger bool
}

// NewButton creates a button, focused when active is true.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Active && b.Danger:
		return theme.ButtonActive.Background(theme.Error).Render("▸ " + b.Label)
	case b.Active:
		return theme.ButtonActive.Render("▸ " + b.Label)
	case b.Danger:
		return theme.ButtonInactive.BorderForeground(theme.Error).Render(b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// Centered renders the button centered in width cells.
func (b Button) Centered(width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(b.View())
}
