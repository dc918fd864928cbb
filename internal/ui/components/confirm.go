package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/ui/theme"
)

// Decision is the outcome of a confirmation key press.
type Decision int

const (
	Undecided Decision = iota
	Confirmed
	Cancelled
)

// Confirm is a yes/no dialog drawn with two buttons.
type Confirm struct {
	Question string
	Detail   string
	Yes      Button
	No       Button
}

// NewConfirm creates a dialog with the "no" button focused.
func NewConfirm(question, detail, yes, no string) Confirm {
	return Confirm{
		Question: question,
		Detail:   detail,
		Yes:      NewButton(yes, false),
		No:       NewButton(no, true),
	}
}

// Update handles y/n, arrows and enter.
func (c Confirm) Update(msg tea.Msg) (Confirm, Decision) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, Undecided
	}
	switch kmsg.String() {
	case "y", "Y", "t", "T":
		return c, Confirmed
	case "n", "N", "esc":
		return c, Cancelled
	case "left", "right", "tab", "h", "l":
		c.Yes.Active, c.No.Active = c.No.Active, c.Yes.Active
	case "enter":
		if c.Yes.Active {
			return c, Confirmed
		}
		return c, Cancelled
	}
	return c, Undecided
}

// View renders the dialog box.
func (c Confirm) View(width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question)
	if c.Detail != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Detail)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, c.Yes.View(), "  ", c.No.View())
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(body + "\n\n" + buttons)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
