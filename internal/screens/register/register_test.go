package register

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screen/screentest"
)

func fill(s *RegisterScreen, values ...string) tea.Cmd {
	s.Init()
	var sc screen.Screen = s
	var cmd tea.Cmd
	for _, v := range values {
		sc = screentest.Type(sc, v)
		sc, cmd = sc.Update(screentest.Special(tea.KeyEnter))
	}
	return cmd
}

func TestRegisterSuccessReplacesWithVerify(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)

	cmd := fill(s, "ola_k", "ola@example.com", "Mocne#Haslo12", "Mocne#Haslo12")
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	_, cmd = s.Update(cmd())

	replace, ok := screentest.Drain(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", screentest.Drain(cmd))
	}
	if got := replace.Screen.Title(); got != "verify:ola@example.com" {
		t.Errorf("replaced with %q", got)
	}
}

func TestRegisterMismatchedPasswords(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)

	cmd := fill(s, "ola_k", "ola@example.com", "Mocne#Haslo12", "Inne#Haslo12")
	s.Update(cmd())

	if s.form.Fields[3].Error() == "" {
		t.Error("confirm field should carry an error")
	}
	if len(f.Auth.Calls) != 0 {
		t.Errorf("invalid form reached the API: %v", f.Auth.Calls)
	}
}

func TestRegisterWeakPasswordRejected(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)

	cmd := fill(s, "ola_k", "ola@example.com", "abcdefgh", "abcdefgh")
	s.Update(cmd())

	if s.form.Fields[2].Error() == "" {
		t.Error("password field should carry an error")
	}
}

func TestStrengthMeter(t *testing.T) {
	if strengthMeter("") != "" {
		t.Error("empty password should draw no meter")
	}
	weak := strengthMeter("abc")
	strong := strengthMeter("Mocne#Haslo12")
	if weak == "" || strong == "" || weak == strong {
		t.Errorf("meters should differ:\n%s\n%s", weak, strong)
	}
}

func TestRegisterViewShowsMeterOnceTyping(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)
	s.Init()
	s.form.Fields[2].SetValue("Mocne#Haslo12")

	view := s.View(100, 40)
	if !strings.Contains(view, i18n.T("register.strength_very_good")) {
		t.Errorf("strength label missing:\n%s", view)
	}
}
