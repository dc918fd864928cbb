// Package home is the tabbed start screen shown to signed-in users.
package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/screens/filters"
	"github.com/maturapolski/matura/internal/screens/history"
	"github.com/maturapolski/matura/internal/screens/learn"
	"github.com/maturapolski/matura/internal/selfupdate"
	"github.com/maturapolski/matura/internal/store"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
)

const loadTimeout = 15 * time.Second

type tab int

const (
	tabDashboard tab = iota
	tabLearn
	tabProgress
	tabProfile
	tabCount
)

var tabKeys = []string{"home.tab_dashboard", "home.tab_learn", "home.tab_progress", "home.tab_profile"}

type dataLoadedMsg struct {
	Stats    *api.LearningStats
	Progress *api.DifficultyProgress
	Totals   []store.CategoryTotal
	Err      error
}

// StreakDays reports the loaded streak to the app header.
func (m dataLoadedMsg) StreakDays() (int, bool) {
	if m.Stats == nil {
		return 0, false
	}
	return m.Stats.Streak, true
}

type updateCheckedMsg struct {
	Result *selfupdate.CheckResult
}

type loggedOutMsg struct {
	Err error
}

// HomeScreen hosts the dashboard, learn, progress and profile tabs.
type HomeScreen struct {
	deps *screen.Deps
	tab  tab

	menu components.Menu

	stats    *api.LearningStats
	progress *api.DifficultyProgress
	totals   []store.CategoryTotal
	loaded   bool
	errMsg   string
	update   *selfupdate.CheckResult

	confirming bool
	confirm    components.Confirm
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screen.Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	items := []components.MenuItem{
		{Label: i18n.T("home.menu_start"), Action: push(func() screen.Screen { return learn.New(deps) })},
		{Label: i18n.T("home.menu_filters"), Action: push(func() screen.Screen { return filters.New(deps) })},
		{Label: i18n.T("home.menu_history"), Action: push(func() screen.Screen { return history.New(deps) }), Disabled: deps.History == nil},
		{Label: i18n.T("home.menu_quit"), Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.load(), h.checkUpdate())
}

// Resume reloads the counters after a session or history screen closes.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		var msg dataLoadedMsg
		if deps.Stats != nil {
			if msg.Stats, msg.Err = deps.Stats.Stats(ctx); msg.Err != nil {
				return msg
			}
			var err error
			if msg.Progress, err = deps.Stats.DifficultyProgress(ctx); err != nil {
				deps.Log.Warn().Err(err).Msg("load difficulty progress")
			}
		}
		if deps.History != nil {
			var err error
			if msg.Totals, err = deps.History.CategoryTotals(ctx, store.QueryOpts{}); err != nil {
				deps.Log.Warn().Err(err).Msg("load category totals")
			}
		}
		return msg
	}
}

func (h *HomeScreen) checkUpdate() tea.Cmd {
	if h.deps.Updates == nil {
		return nil
	}
	deps := h.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		res, err := deps.Updates.Check(ctx, &selfupdate.CheckInput{Version: deps.Version})
		if err != nil {
			deps.Log.Debug().Err(err).Msg("update check")
			return nil
		}
		return updateCheckedMsg{Result: res}
	}
}

func (h *HomeScreen) Title() string {
	return i18n.T("home.title")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: i18n.T("hints.yes")},
			{Key: "N", Description: i18n.T("hints.no")},
		}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: i18n.T("home.switch_tab")}}
	switch h.tab {
	case tabDashboard:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: i18n.T("home.menu_start")})
	case tabLearn:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: i18n.T("hints.navigate")},
			layout.KeyHint{Key: "Enter", Description: i18n.T("hints.select")},
		)
	case tabProfile:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: i18n.T("profile.logout")})
	}
	return append(hints,
		layout.KeyHint{Key: "R", Description: i18n.T("home.refresh")},
		layout.KeyHint{Key: "Ctrl+C", Description: i18n.T("hints.quit")},
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dataLoadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.deps.Log.Warn().Err(msg.Err).Msg("load stats")
			h.errMsg = errtext.Of(msg.Err)
			return h, nil
		}
		h.errMsg = ""
		h.stats, h.progress, h.totals = msg.Stats, msg.Progress, msg.Totals
		return h, nil

	case updateCheckedMsg:
		h.update = msg.Result
		return h, nil

	case loggedOutMsg:
		if msg.Err != nil {
			h.deps.Log.Warn().Err(msg.Err).Msg("logout")
			h.errMsg = errtext.Of(msg.Err)
			return h, nil
		}
		next := h.deps.Screens.Login()
		return h, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }

	case tea.KeyPressMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if h.confirming {
		var d components.Decision
		h.confirm, d = h.confirm.Update(msg)
		switch d {
		case components.Confirmed:
			h.confirming = false
			return h, h.logout()
		case components.Cancelled:
			h.confirming = false
		}
		return h, nil
	}

	key := msg.String()
	switch key {
	case "tab", "right", "l":
		h.tab = (h.tab + 1) % tabCount
		return h, nil
	case "shift+tab", "left", "h":
		h.tab = (h.tab + tabCount - 1) % tabCount
		return h, nil
	case "1", "2", "3", "4":
		h.tab = tab(key[0] - '1')
		return h, nil
	case "r":
		return h, h.load()
	}

	switch h.tab {
	case tabDashboard:
		if key == "enter" || key == "s" {
			next := learn.New(h.deps)
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	case tabLearn:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	case tabProfile:
		if key == "enter" {
			h.confirming = true
			h.confirm = components.NewConfirm(i18n.T("profile.confirm_logout"), "", i18n.T("profile.logout"), i18n.T("hints.cancel"))
			h.confirm.Yes.Danger = true
		}
	}
	return h, nil
}

func (h *HomeScreen) logout() tea.Cmd {
	svc := h.deps.Auth
	return func() tea.Msg {
		return loggedOutMsg{Err: svc.Logout(context.Background())}
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	if h.confirming {
		return renderCabinetFrame(h.confirm.View(cw), width, height)
	}

	var sections []string
	sections = append(sections, renderTitle(width, cw, compact))

	labels := make([]string, len(tabKeys))
	for i, k := range tabKeys {
		labels[i] = i18n.T(k)
	}
	sections = append(sections, components.TabBar(labels, int(h.tab)))

	switch h.tab {
	case tabDashboard:
		sections = append(sections, h.viewDashboard(cw, compact))
	case tabLearn:
		sections = append(sections, h.viewLearn(cw, compact))
	case tabProgress:
		sections = append(sections, h.viewProgress(cw))
	case tabProfile:
		sections = append(sections, h.viewProfile(cw))
	}

	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}
	if h.update != nil && h.update.UpdateAvailable {
		sections = append(sections, renderUpdateNote(h.update.LatestVersion, cw))
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
