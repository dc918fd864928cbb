package forgot

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
)

const requestTimeout = 20 * time.Second

type resetDoneMsg struct {
	Err error
}

// ForgotScreen requests a password reset link. Apart from an invalid
// address it always reports success so it cannot be used to enumerate accounts.
type ForgotScreen struct {
	deps  *screen.Deps
	email components.TextInput
	busy  bool
	sent  bool
}

var _ screen.Screen = (*ForgotScreen)(nil)
var _ screen.KeyHintProvider = (*ForgotScreen)(nil)

// New creates a ForgotScreen with email prefilled.
func New(deps *screen.Deps, email string) *ForgotScreen {
	in := components.NewTextInput("jan@example.com", false, 254).WithLabel(i18n.T("auth.email"))
	in.SetValue(email)
	return &ForgotScreen{deps: deps, email: in}
}

func (s *ForgotScreen) Init() tea.Cmd {
	return s.email.Init()
}

func (s *ForgotScreen) Title() string {
	return i18n.T("forgot.title")
}

func (s *ForgotScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T("forgot.submit")},
		{Key: "Esc", Description: i18n.T("hints.back")},
	}
}

func (s *ForgotScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		s.busy = false
		if fields := errtext.Fields(msg.Err); fields != nil {
			s.email.SetError(fields["email"])
			return s, nil
		}
		s.sent = true
		return s, nil

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.email, cmd = s.email.Update(msg)
	return s, cmd
}

func (s *ForgotScreen) submit() tea.Cmd {
	s.busy = true
	s.sent = false
	email := s.email.Value()
	svc := s.deps.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return resetDoneMsg{Err: svc.RequestPasswordReset(ctx, email)}
	}
}

func (s *ForgotScreen) View(width, height int) string {
	var notice string
	if s.sent {
		notice = i18n.T("forgot.sent")
	}
	return components.FormCard(
		i18n.T("forgot.heading"),
		i18n.T("forgot.subtitle"),
		s.email.View(),
		"",
		notice,
		width, height,
	)
}
