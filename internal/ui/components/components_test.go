package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoiceNavigationAndPick(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c"}, false)

	m, picked := m.Update(specialKey(tea.KeyDown))
	if picked != -1 || m.Cursor != 1 {
		t.Fatalf("after down: cursor=%d picked=%d", m.Cursor, picked)
	}

	m, picked = m.Update(specialKey(tea.KeyDown))
	m, picked = m.Update(specialKey(tea.KeyDown))
	if m.Cursor != 2 {
		t.Errorf("cursor should stop at last option, got %d", m.Cursor)
	}

	m, picked = m.Update(keyPress('1'))
	if picked != 0 || m.Cursor != 0 {
		t.Errorf("digit pick: cursor=%d picked=%d, want 0/0", m.Cursor, picked)
	}

	_, picked = m.Update(keyPress('9'))
	if picked != -1 {
		t.Errorf("out-of-range digit picked %d", picked)
	}
}

func TestMultiChoiceLockedIgnoresKeys(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"}, true)
	m.Locked = true

	m, picked := m.Update(keyPress('2'))
	if picked != -1 || m.Cursor != 0 {
		t.Errorf("locked list reacted: cursor=%d picked=%d", m.Cursor, picked)
	}
}

func TestMultiChoiceViewMarks(t *testing.T) {
	m := NewMultiChoice([]string{"alfa", "beta"}, true)
	view := m.View(func(i int) bool { return i == 1 })
	if !strings.Contains(view, "[x] B)") || !strings.Contains(view, "[ ] A)") {
		t.Errorf("unexpected marks:\n%s", view)
	}
}

func TestConfirmDecisions(t *testing.T) {
	c := NewConfirm("Koniec?", "", "Tak", "Nie")

	if _, d := c.Update(keyPress('y')); d != Confirmed {
		t.Errorf("y = %v, want Confirmed", d)
	}
	if _, d := c.Update(specialKey(tea.KeyEscape)); d != Cancelled {
		t.Errorf("esc = %v, want Cancelled", d)
	}

	// Enter on the default (no) button cancels.
	if _, d := c.Update(specialKey(tea.KeyEnter)); d != Cancelled {
		t.Errorf("enter on default = %v, want Cancelled", d)
	}

	c, _ = c.Update(specialKey(tea.KeyLeft))
	if !c.Yes.Active {
		t.Fatal("left should focus yes")
	}
	if _, d := c.Update(specialKey(tea.KeyEnter)); d != Confirmed {
		t.Errorf("enter on yes = %v, want Confirmed", d)
	}
}

func TestTextInputNumericOnly(t *testing.T) {
	ti := NewTextInput("", true, 6)
	ti.Init()

	for _, r := range "12a3" {
		ti, _ = ti.Update(keyPress(r))
	}
	if ti.Value() != "123" {
		t.Errorf("value = %q, want 123", ti.Value())
	}
}

func TestTextInputErrorClearsOnKey(t *testing.T) {
	ti := NewTextInput("", false, 0)
	ti.Init()
	ti.SetError("required")
	if !strings.Contains(ti.View(), "required") {
		t.Error("error not rendered")
	}
	ti, _ = ti.Update(keyPress('x'))
	if ti.Error() != "" {
		t.Errorf("error = %q after typing, want empty", ti.Error())
	}
}

func TestProgressBarClamps(t *testing.T) {
	p := NewProgressBar("", 1.5, true, 20)
	if !strings.Contains(p.View(), "150%") {
		t.Errorf("percent label missing: %q", p.View())
	}
}

func TestTextAreaReadOnly(t *testing.T) {
	ta := NewTextArea("", 40, 5)
	ta.Focus()
	ta, _ = ta.Update(keyPress('a'))
	ta.SetReadOnly(true)
	ta, _ = ta.Update(keyPress('b'))
	if ta.Value() != "a" {
		t.Errorf("value = %q, want a", ta.Value())
	}
}

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	ran := ""
	act := func(name string) func() tea.Cmd {
		return func() tea.Cmd { ran = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b", Action: act("b")},
		{Label: "c", Disabled: true},
		{Label: "d", Action: act("d")},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want first enabled (1)", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 1 {
		t.Errorf("down from last = %d, want wrap to 1", m.Selected)
	}

	m.Update(specialKey(tea.KeyEnter))
	if ran != "b" {
		t.Errorf("enter ran %q, want b", ran)
	}
	if d := m.DisabledSet(); !d[0] || !d[2] || d[1] {
		t.Errorf("disabled set = %v", d)
	}
}
