package verify

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
)

const (
	requestTimeout = 20 * time.Second
	codeLength     = 6
)

type verifyDoneMsg struct {
	User *api.User
	Err  error
}

type resendDoneMsg struct {
	Err error
}

// VerifyScreen asks for the 6-digit code sent by email.
type VerifyScreen struct {
	deps   *screen.Deps
	email  string
	code   components.TextInput
	busy   bool
	errMsg string
	notice string
}

var _ screen.Screen = (*VerifyScreen)(nil)
var _ screen.KeyHintProvider = (*VerifyScreen)(nil)

// New creates a VerifyScreen for email.
func New(deps *screen.Deps, email string) *VerifyScreen {
	return &VerifyScreen{
		deps:   deps,
		email:  email,
		code:   components.NewTextInput("000000", true, codeLength).WithLabel(i18n.T("verify.code")),
		notice: i18n.T("verify.check_inbox"),
	}
}

func (s *VerifyScreen) Init() tea.Cmd {
	return s.code.Init()
}

func (s *VerifyScreen) Title() string {
	return i18n.T("verify.title")
}

func (s *VerifyScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: i18n.T("verify.submit")}}
	if s.email != "" {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: i18n.T("verify.resend")})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: i18n.T("hints.back")})
}

func (s *VerifyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyDoneMsg:
		s.busy = false
		if msg.Err == nil {
			s.deps.Log.Info().Str("user", msg.User.Username).Msg("email verified")
			home := s.deps.Screens.Home()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: home} }
		}
		if fields := errtext.Fields(msg.Err); fields != nil {
			s.code.SetError(fields["code"])
			return s, nil
		}
		s.errMsg = errtext.Of(msg.Err)
		return s, nil

	case resendDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = errtext.Of(msg.Err)
			return s, nil
		}
		s.notice = i18n.T("verify.resent")
		return s, nil

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "ctrl+r":
			if s.email == "" {
				return s, nil
			}
			return s, s.resend()
		}
		s.errMsg = ""
	}

	var cmd tea.Cmd
	s.code, cmd = s.code.Update(msg)
	return s, cmd
}

func (s *VerifyScreen) submit() tea.Cmd {
	s.busy = true
	s.errMsg = ""
	code := s.code.Value()
	svc := s.deps.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := svc.Verify(ctx, code)
		return verifyDoneMsg{User: user, Err: err}
	}
}

func (s *VerifyScreen) resend() tea.Cmd {
	s.busy = true
	s.errMsg = ""
	s.notice = ""
	email := s.email
	svc := s.deps.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return resendDoneMsg{Err: svc.ResendVerification(ctx, email)}
	}
}

func (s *VerifyScreen) View(width, height int) string {
	subtitle := i18n.T("verify.subtitle")
	if s.email != "" {
		subtitle = i18n.Td("verify.subtitle_email", map[string]any{"Email": s.email})
	}
	body := s.code.View()
	if s.busy {
		body += "\n\n" + i18n.T("verify.busy")
	}
	return components.FormCard(i18n.T("verify.heading"), subtitle, body, s.errMsg, s.notice, width, height)
}
