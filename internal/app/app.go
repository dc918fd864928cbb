package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/home"
	"github.com/maturapolski/matura/internal/screens/learn"
	"github.com/maturapolski/matura/internal/screens/login"
	"github.com/maturapolski/matura/internal/screens/verify"
	"github.com/maturapolski/matura/internal/screens/welcome"
	"github.com/maturapolski/matura/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps *screen.Deps
	// SkipWelcome starts directly on home or login.
	SkipWelcome bool
	// StartLearning opens a practice session on top of home when signed in.
	StartLearning bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   *screen.Deps
	streak int
	width  int
	height int
}

// newAppModel fills in the screen factory and picks the first screen.
func newAppModel(opts Options) AppModel {
	deps := opts.Deps
	deps.Screens = screen.Factory{
		Home:   func() screen.Screen { return home.New(deps) },
		Login:  func() screen.Screen { return login.New(deps) },
		Verify: func(email string) screen.Screen { return verify.New(deps, email) },
		Learn:  func() screen.Screen { return learn.New(deps) },
	}

	start := func() screen.Screen {
		if deps.Auth != nil && deps.Auth.Store().LoggedIn() {
			return deps.Screens.Home()
		}
		return deps.Screens.Login()
	}

	loggedIn := deps.Auth != nil && deps.Auth.Store().LoggedIn()
	if opts.StartLearning && loggedIn {
		r := router.New(deps.Screens.Home())
		// Init runs the active screen's Init; home reloads on Resume.
		r.Push(deps.Screens.Learn())
		return AppModel{router: r, deps: deps}
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = start()
	} else {
		first = welcome.New(start)
	}
	return AppModel{
		router: router.New(first),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.ResetScreenMsg:
		// Sign-in state changed; the header follows the new user.
		m.streak = 0
	}

	if sr, ok := msg.(screen.StreakReporter); ok {
		if days, ok := sr.StreakDays(); ok {
			m.streak = days
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) headerInfo() layout.HeaderInfo {
	info := layout.HeaderInfo{Streak: m.streak}
	if u, ok := m.deps.User(); ok {
		info.Username = u.Username
	}
	return info
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerInfo(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: i18n.T("hints.back")},
			{Key: "Ctrl+C", Description: i18n.T("hints.quit")},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: i18n.T("hints.quit")},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. A session still open on exit is
// closed on the server before Run returns.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()

	if ctrl := opts.Deps.Session; ctrl != nil {
		if ctrl.Snapshot().Active() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if endErr := ctrl.EndSession(ctx); endErr != nil {
				opts.Deps.Log.Warn().Err(endErr).Msg("close session on exit")
			}
			cancel()
		}
		ctrl.Close()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
