package home

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen/screentest"
	"github.com/maturapolski/matura/internal/screens/filters"
	"github.com/maturapolski/matura/internal/screens/learn"
	"github.com/maturapolski/matura/internal/selfupdate"
	"github.com/maturapolski/matura/internal/store"
)

type fakeUpdates struct {
	res *selfupdate.CheckResult
}

func (f *fakeUpdates) Check(context.Context, *selfupdate.CheckInput) (*selfupdate.CheckResult, error) {
	return f.res, nil
}

func loadedHome(t *testing.T, f *screentest.Fixture) *HomeScreen {
	t.Helper()
	h := New(f.Deps)
	h.Update(h.load()())
	require.True(t, h.loaded)
	return h
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		key  string
	}{
		{6, "home.greeting_morning"},
		{11, "home.greeting_morning"},
		{12, "home.greeting_day"},
		{17, "home.greeting_day"},
		{18, "home.greeting_evening"},
		{23, "home.greeting_evening"},
	}
	for _, tt := range tests {
		at := time.Date(2026, 5, 4, tt.hour, 30, 0, 0, time.UTC)
		want := i18n.Td(tt.key, map[string]any{"Name": "ola"})
		if got := Greeting(at, "ola"); got != want {
			t.Errorf("Greeting(%02d:30) = %q, want %q", tt.hour, got, want)
		}
	}
}

func TestDashboardShowsStats(t *testing.T) {
	f := screentest.NewFixture(t)
	f.SignIn(t)
	f.Stats.Learning = api.LearningStats{Streak: 6, TodayExercises: 3, CorrectRate: 82}
	f.Stats.MaxLevel = 3

	h := loadedHome(t, f)
	view := h.View(120, 40)

	assert.Contains(t, view, Greeting(f.Deps.Clock(), "ola"))
	assert.Contains(t, view, i18n.Tp("home.streak_days", 6))
	assert.Contains(t, view, "★★★☆☆")
	assert.Equal(t, MascotCelebrating, mascotFor(h.stats))
}

func TestMascotVariants(t *testing.T) {
	assert.Equal(t, MascotIdle, mascotFor(nil))
	assert.Equal(t, MascotAlert, mascotFor(&api.LearningStats{}))
	assert.Equal(t, MascotIdle, mascotFor(&api.LearningStats{TodayExercises: 2, Streak: 1}))
}

func TestStatsErrorIsShown(t *testing.T) {
	f := screentest.NewFixture(t)
	f.Stats.Err = errors.New("connection refused")

	h := loadedHome(t, f)
	assert.NotEmpty(t, h.errMsg)
	assert.Contains(t, h.View(120, 40), h.errMsg)
}

func TestTabSwitching(t *testing.T) {
	f := screentest.NewFixture(t)
	h := loadedHome(t, f)

	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, tabLearn, h.tab)
	h.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	assert.Equal(t, tabProfile, h.tab)
	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, tabDashboard, h.tab, "tab wraps around")
	h.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, tabProfile, h.tab)
}

func TestDashboardEnterStartsSession(t *testing.T) {
	f := screentest.NewFixture(t)
	h := loadedHome(t, f)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, isLearn := msg.Screen.(*learn.LearnScreen)
	assert.True(t, isLearn)
}

func TestLearnTabMenu(t *testing.T) {
	f := screentest.NewFixture(t)
	h := loadedHome(t, f)
	h.Update(tea.KeyPressMsg{Code: '2', Text: "2"})

	view := h.View(120, 40)
	assert.Contains(t, view, i18n.T("filters.none"))

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, isFilters := msg.Screen.(*filters.FiltersScreen)
	assert.True(t, isFilters)
}

func TestProgressTabListsCategories(t *testing.T) {
	f := screentest.NewFixture(t)
	f.Stats.Learning = api.LearningStats{TotalExercises: 120, TotalSessions: 9}
	f.History.Totals = []store.CategoryTotal{
		{Category: "LANGUAGE_USE", Answered: 10, Correct: 8, Points: 8},
	}
	h := loadedHome(t, f)
	h.Update(tea.KeyPressMsg{Code: '3', Text: "3"})

	view := h.View(120, 50)
	assert.Contains(t, view, "120")
	assert.Contains(t, view, "80%")
	assert.Contains(t, view, i18n.Tp("progress.answered", 10))
}

func TestProfileLogout(t *testing.T) {
	f := screentest.NewFixture(t)
	f.SignIn(t)
	h := loadedHome(t, f)
	h.Update(tea.KeyPressMsg{Code: '4', Text: "4"})
	assert.Contains(t, h.View(120, 40), "ola@example.com")

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.True(t, h.confirming)

	_, cmd := h.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	require.NotNil(t, cmd)
	_, cmd = h.Update(cmd())
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ResetScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "login", msg.Screen.Title())
	assert.False(t, f.Deps.Auth.Store().LoggedIn())
}

func TestUpdateNote(t *testing.T) {
	f := screentest.NewFixture(t)
	f.Deps.Updates = &fakeUpdates{res: &selfupdate.CheckResult{LatestVersion: "v1.2.0", UpdateAvailable: true}}
	h := loadedHome(t, f)

	h.Update(h.checkUpdate()())
	assert.True(t, strings.Contains(h.View(120, 40), "v1.2.0"))
}

func TestResumeReloads(t *testing.T) {
	f := screentest.NewFixture(t)
	h := loadedHome(t, f)

	f.Stats.Learning.Streak = 9
	h.Update(h.Resume()())
	assert.Equal(t, 9, h.stats.Streak)
}
