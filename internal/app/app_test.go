package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screen/screentest"
	"github.com/maturapolski/matura/internal/screens/home"
	"github.com/maturapolski/matura/internal/screens/learn"
	"github.com/maturapolski/matura/internal/screens/login"
	"github.com/maturapolski/matura/internal/screens/welcome"
)

type backScreen struct {
	screentest.Stub
	escs int
}

func (b *backScreen) HandlesBack() bool { return true }

func (b *backScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "esc" {
		b.escs++
	}
	return b, nil
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStartsOnWelcome(t *testing.T) {
	f := screentest.NewFixture(t)
	m := newAppModel(Options{Deps: f.Deps})

	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("first screen = %T, want welcome", m.router.Active())
	}
}

func TestSkipWelcomePicksByLogin(t *testing.T) {
	f := screentest.NewFixture(t)
	m := newAppModel(Options{Deps: f.Deps, SkipWelcome: true})
	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Errorf("signed out: first screen = %T, want login", m.router.Active())
	}

	f.SignIn(t)
	m = newAppModel(Options{Deps: f.Deps, SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("signed in: first screen = %T, want home", m.router.Active())
	}
}

func TestStartLearningStacksOnHome(t *testing.T) {
	f := screentest.NewFixture(t)
	m := newAppModel(Options{Deps: f.Deps, StartLearning: true})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("signed out: first screen = %T, want welcome", m.router.Active())
	}

	f.SignIn(t)
	m = newAppModel(Options{Deps: f.Deps, StartLearning: true})
	if _, ok := m.router.Active().(*learn.LearnScreen); !ok {
		t.Fatalf("active = %T, want learn", m.router.Active())
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
}

func TestEscPopsPlainScreens(t *testing.T) {
	f := screentest.NewFixture(t)
	m := newAppModel(Options{Deps: f.Deps, SkipWelcome: true})
	m.router.Push(&screentest.Stub{Name: "history"})

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}

	// At the bottom esc does nothing.
	m.router.Pop()
	if _, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc at the root should be ignored")
	}
}

func TestEscGoesToBackHandler(t *testing.T) {
	f := screentest.NewFixture(t)
	m := newAppModel(Options{Deps: f.Deps, SkipWelcome: true})
	bs := &backScreen{Stub: screentest.Stub{Name: "learn"}}
	m.router.Push(bs)

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("app should not pop a screen that handles back")
	}
	if bs.escs != 1 {
		t.Errorf("screen saw %d escapes, want 1", bs.escs)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
}

type streakMsg int

func (s streakMsg) StreakDays() (int, bool) { return int(s), true }

func TestHeaderShowsUserAndStreak(t *testing.T) {
	f := screentest.NewFixture(t)
	f.SignIn(t)
	m := newAppModel(Options{Deps: f.Deps, SkipWelcome: true})

	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(m, streakMsg(7))

	if m.streak != 7 {
		t.Fatalf("streak = %d, want 7", m.streak)
	}
	info := m.headerInfo()
	if info.Username != "ola" || info.Streak != 7 {
		t.Errorf("header info = %+v", info)
	}

	// A reset (login or logout) forgets the previous user's streak.
	m, _ = update(m, router.ResetScreenMsg{Screen: &screentest.Stub{Name: "login"}})
	if m.streak != 0 {
		t.Errorf("streak after reset = %d, want 0", m.streak)
	}
}
