package login

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screen/screentest"
	"github.com/maturapolski/matura/internal/screens/forgot"
	"github.com/maturapolski/matura/internal/screens/register"
)

func fillAndSubmit(t *testing.T, s *LoginScreen, email, password string) tea.Msg {
	t.Helper()
	s.Init()
	var sc screen.Screen = s
	sc = screentest.Type(sc, email)
	sc, _ = sc.Update(screentest.Special(tea.KeyTab))
	sc = screentest.Type(sc, password)
	_, cmd := sc.Update(screentest.Special(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on the last field should submit")
	}
	if !s.busy {
		t.Error("screen should be busy while the request runs")
	}
	return cmd()
}

func TestLoginSuccessResetsToHome(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)

	msg := fillAndSubmit(t, s, "ola@example.com", "Haslo123!")
	_, cmd := s.Update(msg)

	reset, ok := screentest.Drain(cmd).(router.ResetScreenMsg)
	if !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", screentest.Drain(cmd))
	}
	if reset.Screen.Title() != "home" {
		t.Errorf("reset to %q, want home", reset.Screen.Title())
	}
	if !f.Deps.Auth.Store().LoggedIn() {
		t.Error("credentials were not stored")
	}
}

func TestLoginEnterOnFirstFieldMovesFocus(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)
	s.Init()

	s.Update(screentest.Special(tea.KeyEnter))
	if s.form.Focus != 1 {
		t.Errorf("focus = %d, want 1", s.form.Focus)
	}
	if len(f.Auth.Calls) != 0 {
		t.Errorf("unexpected calls %v", f.Auth.Calls)
	}
}

func TestLoginUnverifiedEmailPushesVerify(t *testing.T) {
	f := screentest.NewFixture(t)
	f.Auth.LoginErr = &api.APIError{Status: 403, Code: api.CodeEmailNotVerified}
	s := New(f.Deps)

	msg := fillAndSubmit(t, s, "ola@example.com", "Haslo123!")
	_, cmd := s.Update(msg)

	push, ok := screentest.Drain(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", screentest.Drain(cmd))
	}
	if got := push.Screen.Title(); got != "verify:ola@example.com" {
		t.Errorf("pushed %q", got)
	}
}

func TestLoginInvalidCredentialsShowsError(t *testing.T) {
	f := screentest.NewFixture(t)
	f.Auth.LoginErr = &api.APIError{Status: 401, Code: api.CodeInvalidCredentials}
	s := New(f.Deps)

	msg := fillAndSubmit(t, s, "ola@example.com", "zle")
	s.Update(msg)

	if s.busy {
		t.Error("busy flag not cleared")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestLoginValidationMarksField(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)

	msg := fillAndSubmit(t, s, "not-an-email", "x")
	s.Update(msg)

	if s.form.Fields[0].Error() == "" {
		t.Error("email field should carry a validation error")
	}
	if s.form.Focus != 0 {
		t.Errorf("focus = %d, want the invalid email field", s.form.Focus)
	}
	if len(f.Auth.Calls) != 0 {
		t.Errorf("invalid form reached the API: %v", f.Auth.Calls)
	}
}

func TestLoginShortcuts(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)
	s.Init()

	_, cmd := s.Update(screentest.Ctrl('r'))
	push, ok := screentest.Drain(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatal("ctrl+r should push a screen")
	}
	if _, ok := push.Screen.(*register.RegisterScreen); !ok {
		t.Errorf("ctrl+r pushed %T", push.Screen)
	}

	_, cmd = s.Update(screentest.Ctrl('f'))
	push, ok = screentest.Drain(cmd).(router.PushScreenMsg)
	if !ok {
		t.Fatal("ctrl+f should push a screen")
	}
	if _, ok := push.Screen.(*forgot.ForgotScreen); !ok {
		t.Errorf("ctrl+f pushed %T", push.Screen)
	}
}
