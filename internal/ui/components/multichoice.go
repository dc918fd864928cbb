package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/ui/theme"
)

// MultiChoice is an option list for closed exercises. In Multiple mode each
// pick toggles; otherwise a pick replaces the selection.
type MultiChoice struct {
	Options  []string
	Multiple bool
	Cursor   int
	Locked   bool
}

// NewMultiChoice creates an option list.
func NewMultiChoice(options []string, multiple bool) MultiChoice {
	return MultiChoice{
		Options:  options,
		Multiple: multiple,
	}
}

// Update moves the cursor and reports a picked option index, or -1.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	if m.Locked || len(m.Options) == 0 {
		return m, -1
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, -1
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, -1
	case "space", " ":
		return m, m.Cursor
	}

	if idx := optionIndex(key); idx >= 0 && idx < len(m.Options) {
		m.Cursor = idx
		return m, idx
	}
	return m, -1
}

// optionIndex maps "1".."9" to option indices.
func optionIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	return int(key[0] - '1')
}

// Letter returns the option label for index i (A, B, C...).
func Letter(i int) string {
	if i < 0 || i >= 26 {
		return "?"
	}
	return string(rune('A' + i))
}

// View renders the options. selected reports whether option i is chosen.
func (m MultiChoice) View(selected func(i int) bool) string {
	var b strings.Builder
	for i, opt := range m.Options {
		mark := "( )"
		if m.Multiple {
			mark = "[ ]"
		}
		chosen := selected != nil && selected(i)
		if chosen {
			if m.Multiple {
				mark = "[x]"
			} else {
				mark = "(•)"
			}
		}

		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, Letter(i), opt)

		var style lipgloss.Style
		switch {
		case m.Locked && chosen:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case m.Locked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
