package forgot

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screen/screentest"
)

func TestForgotAlwaysReportsSent(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"accepted", nil},
		{"server error", errors.New("boom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := screentest.NewFixture(t)
			f.Auth.ResetErr = tt.err
			s := New(f.Deps, "ola@example.com")
			s.Init()

			_, cmd := s.Update(screentest.Special(tea.KeyEnter))
			s.Update(cmd())

			if !s.sent {
				t.Error("expected the sent notice")
			}
			if !strings.Contains(s.View(100, 30), i18n.T("forgot.sent")) {
				t.Error("notice not rendered")
			}
		})
	}
}

func TestForgotInvalidEmail(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, "")
	s.Init()
	screentest.Type(s, "zly-adres")

	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	s.Update(cmd())

	if s.sent {
		t.Error("invalid address should not report success")
	}
	if s.email.Error() == "" {
		t.Error("expected a field error")
	}
	if len(f.Auth.Calls) != 0 {
		t.Errorf("invalid email reached the API: %v", f.Auth.Calls)
	}
}
