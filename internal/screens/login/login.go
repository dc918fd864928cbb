package login

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/screens/forgot"
	"github.com/maturapolski/matura/internal/screens/register"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
)

const requestTimeout = 20 * time.Second

type loginDoneMsg struct {
	User *api.User
	Err  error
}

// LoginScreen is the email/password sign-in form.
type LoginScreen struct {
	deps   *screen.Deps
	form   components.Form
	busy   bool
	errMsg string
	notice string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New(deps *screen.Deps) *LoginScreen {
	email := components.NewTextInput("jan@example.com", false, 254).WithLabel(i18n.T("auth.email"))
	password := components.NewPasswordInput("••••••••").WithLabel(i18n.T("auth.password"))
	return &LoginScreen{
		deps: deps,
		form: components.NewForm([]string{"email", "password"}, email, password),
	}
}

// WithNotice shows a success line under the form, e.g. after logout.
func (s *LoginScreen) WithNotice(notice string) *LoginScreen {
	s.notice = notice
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *LoginScreen) Title() string {
	return i18n.T("login.title")
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T("login.submit")},
		{Key: "Tab", Description: i18n.T("hints.next_field")},
		{Key: "Ctrl+R", Description: i18n.T("login.to_register")},
		{Key: "Ctrl+F", Description: i18n.T("login.to_forgot")},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		return s.handleDone(msg)

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			if !s.form.OnLast() {
				return s, s.form.Next()
			}
			return s, s.submit()
		case "ctrl+r":
			next := register.New(s.deps)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		case "ctrl+f":
			next := forgot.New(s.deps, s.form.Value("email"))
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		s.errMsg = ""
	}

	return s, s.form.Update(msg)
}

func (s *LoginScreen) submit() tea.Cmd {
	s.busy = true
	s.errMsg = ""
	s.notice = ""
	form := auth.LoginForm{
		Email:    s.form.Value("email"),
		Password: s.form.Value("password"),
	}
	svc := s.deps.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := svc.Login(ctx, form)
		return loginDoneMsg{User: user, Err: err}
	}
}

func (s *LoginScreen) handleDone(msg loginDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = false

	if msg.Err == nil {
		s.deps.Log.Info().Str("user", msg.User.Username).Msg("signed in from tui")
		home := s.deps.Screens.Home()
		return s, func() tea.Msg { return router.ResetScreenMsg{Screen: home} }
	}

	if apiErr, ok := api.AsAPIError(msg.Err); ok && apiErr.EmailNotVerified() {
		next := s.deps.Screens.Verify(s.form.Value("email"))
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	if fields := errtext.Fields(msg.Err); fields != nil {
		cmd, rest := s.form.SetErrors(fields)
		s.errMsg = rest
		return s, cmd
	}

	s.errMsg = errtext.Of(msg.Err)
	return s, nil
}

func (s *LoginScreen) View(width, height int) string {
	body := s.form.View()
	if s.busy {
		body += "\n\n" + i18n.T("login.busy")
	}
	return components.FormCard(
		i18n.T("login.heading"),
		i18n.T("login.subtitle"),
		body,
		s.errMsg,
		s.notice,
		width, height,
	)
}
