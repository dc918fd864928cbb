package verify

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen/screentest"
)

func TestVerifyCodeResetsToHome(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, "ola@example.com")
	s.Init()

	screentest.Type(s, "12ab3456")
	if got := s.code.Value(); got != "123456" {
		t.Fatalf("code = %q, want digits only", got)
	}

	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	_, cmd = s.Update(cmd())

	if _, ok := screentest.Drain(cmd).(router.ResetScreenMsg); !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", screentest.Drain(cmd))
	}
	if f.Auth.LastCode != "123456" {
		t.Errorf("sent code %q", f.Auth.LastCode)
	}
}

func TestVerifyShortCodeIsRejectedLocally(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, "ola@example.com")
	s.Init()

	screentest.Type(s, "123")
	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	s.Update(cmd())

	if s.code.Error() == "" {
		t.Error("expected a field error for a short code")
	}
	if len(f.Auth.Calls) != 0 {
		t.Errorf("short code reached the API: %v", f.Auth.Calls)
	}
}

func TestVerifyResend(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, "ola@example.com")
	s.Init()

	_, cmd := s.Update(screentest.Ctrl('r'))
	if cmd == nil {
		t.Fatal("ctrl+r should resend")
	}
	s.Update(cmd())

	if s.notice != i18n.T("verify.resent") {
		t.Errorf("notice = %q", s.notice)
	}
	if f.Auth.LastEmail != "ola@example.com" {
		t.Errorf("resent to %q", f.Auth.LastEmail)
	}
}

func TestVerifyResendRateLimited(t *testing.T) {
	f := screentest.NewFixture(t)
	f.Auth.ResendErr = &api.APIError{Status: 429, Code: api.CodeRateLimit, Message: "Odczekaj minutę"}
	s := New(f.Deps, "ola@example.com")
	s.Init()

	_, cmd := s.Update(screentest.Ctrl('r'))
	s.Update(cmd())

	if !strings.Contains(s.errMsg, "Odczekaj minutę") {
		t.Errorf("errMsg = %q, want the server message", s.errMsg)
	}
}

func TestVerifyWithoutEmailCannotResend(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, "")
	s.Init()

	if _, cmd := s.Update(screentest.Ctrl('r')); cmd != nil {
		t.Error("resend needs an email")
	}
	for _, h := range s.KeyHints() {
		if h.Key == "Ctrl+R" {
			t.Error("resend hint shown without email")
		}
	}
}
