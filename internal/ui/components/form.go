package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Form is a vertical stack of text inputs with one focused field.
type Form struct {
	Fields []TextInput
	Names  []string
	Focus  int
}

// NewForm creates a form. names are the keys used by SetErrors, in field order.
func NewForm(names []string, fields ...TextInput) Form {
	return Form{Fields: fields, Names: names}
}

// Init focuses the first field.
func (f *Form) Init() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.focus(0)
}

func (f *Form) focus(i int) tea.Cmd {
	for j := range f.Fields {
		if j != i {
			f.Fields[j].Blur()
		}
	}
	f.Focus = i
	return f.Fields[i].Focus()
}

// Next moves focus down, wrapping around.
func (f *Form) Next() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.focus((f.Focus + 1) % len(f.Fields))
}

// Prev moves focus up, wrapping around.
func (f *Form) Prev() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.focus((f.Focus - 1 + len(f.Fields)) % len(f.Fields))
}

// OnLast reports whether the last field has focus.
func (f Form) OnLast() bool {
	return f.Focus == len(f.Fields)-1
}

// Update handles tab/shift+tab/up/down and forwards the rest to the
// focused field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f.Next()
		case "shift+tab", "up":
			return f.Prev()
		}
	}
	if len(f.Fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.Focus], cmd = f.Fields[f.Focus].Update(msg)
	return cmd
}

// Value returns the value of the named field.
func (f Form) Value(name string) string {
	for i, n := range f.Names {
		if n == name {
			return f.Fields[i].Value()
		}
	}
	return ""
}

// SetErrors attaches messages to fields by name and focuses the first
// field that has one. Unknown names are returned joined.
func (f *Form) SetErrors(errs map[string]string) (tea.Cmd, string) {
	var rest []string
	first := -1
	for name, msg := range errs {
		found := false
		for i, n := range f.Names {
			if n == name {
				f.Fields[i].SetError(msg)
				if first < 0 || i < first {
					first = i
				}
				found = true
				break
			}
		}
		if !found {
			rest = append(rest, msg)
		}
	}
	var cmd tea.Cmd
	if first >= 0 {
		cmd = f.focus(first)
	}
	return cmd, strings.Join(rest, "\n")
}

// View renders the fields separated by a blank line.
func (f Form) View() string {
	parts := make([]string, 0, len(f.Fields))
	for _, fld := range f.Fields {
		parts = append(parts, fld.View())
	}
	return strings.Join(parts, "\n\n")
}
