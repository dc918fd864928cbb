package register

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
	"github.com/maturapolski/matura/internal/ui/theme"
)

const requestTimeout = 20 * time.Second

type registerDoneMsg struct {
	Email string
	Err   error
}

// RegisterScreen creates an account and hands over to email verification.
type RegisterScreen struct {
	deps   *screen.Deps
	form   components.Form
	busy   bool
	errMsg string
}

var _ screen.Screen = (*RegisterScreen)(nil)
var _ screen.KeyHintProvider = (*RegisterScreen)(nil)

// New creates a RegisterScreen.
func New(deps *screen.Deps) *RegisterScreen {
	username := components.NewTextInput("jan_kowalski", false, 20).WithLabel(i18n.T("auth.username"))
	email := components.NewTextInput("jan@example.com", false, 254).WithLabel(i18n.T("auth.email"))
	password := components.NewPasswordInput("••••••••").WithLabel(i18n.T("auth.password"))
	confirm := components.NewPasswordInput("••••••••").WithLabel(i18n.T("auth.confirm_password"))
	return &RegisterScreen{
		deps: deps,
		form: components.NewForm(
			[]string{"username", "email", "password", "confirmPassword"},
			username, email, password, confirm,
		),
	}
}

func (s *RegisterScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *RegisterScreen) Title() string {
	return i18n.T("register.title")
}

func (s *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T("register.submit")},
		{Key: "Tab", Description: i18n.T("hints.next_field")},
		{Key: "Esc", Description: i18n.T("hints.back")},
	}
}

func (s *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		s.busy = false
		if msg.Err == nil {
			next := s.deps.Screens.Verify(msg.Email)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		if fields := errtext.Fields(msg.Err); fields != nil {
			cmd, rest := s.form.SetErrors(fields)
			s.errMsg = rest
			return s, cmd
		}
		s.errMsg = errtext.Of(msg.Err)
		return s, nil

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		if msg.String() == "enter" {
			if !s.form.OnLast() {
				return s, s.form.Next()
			}
			return s, s.submit()
		}
		s.errMsg = ""
	}

	return s, s.form.Update(msg)
}

func (s *RegisterScreen) submit() tea.Cmd {
	s.busy = true
	s.errMsg = ""
	form := auth.RegisterForm{
		Username:        s.form.Value("username"),
		Email:           s.form.Value("email"),
		Password:        s.form.Value("password"),
		ConfirmPassword: s.form.Value("confirmPassword"),
	}
	svc := s.deps.Auth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return registerDoneMsg{Email: form.Email, Err: svc.Register(ctx, form)}
	}
}

func (s *RegisterScreen) View(width, height int) string {
	body := s.form.View()

	if pw := s.form.Value("password"); pw != "" {
		body += "\n\n" + strengthMeter(pw)
	}
	if s.busy {
		body += "\n\n" + i18n.T("register.busy")
	}

	return components.FormCard(
		i18n.T("register.heading"),
		i18n.T("register.subtitle"),
		body,
		s.errMsg,
		"",
		width, height,
	)
}

// strengthMeter draws the 0-5 password score as a colored bar.
func strengthMeter(pw string) string {
	score := auth.PasswordStrength(pw)
	bar := components.NewProgressBar(i18n.T("register.strength"), float64(score)/5, false, 30)

	var label string
	switch auth.StrengthOf(pw) {
	case auth.StrengthWeak:
		bar.Fill = theme.Error
		label = i18n.T("register.strength_weak")
	case auth.StrengthMedium:
		bar.Fill = theme.Warning
		label = i18n.T("register.strength_medium")
	case auth.StrengthGood:
		bar.Fill = theme.Secondary
		label = i18n.T("register.strength_good")
	case auth.StrengthVeryGood:
		bar.Fill = theme.Success
		label = i18n.T("register.strength_very_good")
	default:
		return ""
	}
	return bar.View() + "  " + lipgloss.NewStyle().Foreground(bar.Fill).Render(label)
}
