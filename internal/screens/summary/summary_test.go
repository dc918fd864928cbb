package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen/screentest"
	"github.com/maturapolski/matura/internal/session"
)

func testSummary() session.Summary {
	return session.BuildSummary(session.Stats{
		Completed: 20,
		Correct:   19,
		Streak:    12,
		MaxStreak: 12,
		Points:    23.5,
		TimeSpent: 754,
	})
}

func TestSummaryScreen_Title(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, testSummary())
	if s.Title() != i18n.T("summary.title") {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, testSummary())
	view := s.View(100, 40)

	for _, want := range []string{
		i18n.T("summary.grade_excellent"),
		"95%",
		"23.5",
		"12:34",
		i18n.Tp("summary.hot_streak", 12),
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NoHotStreakBelowThreshold(t *testing.T) {
	f := screentest.NewFixture(t)
	sum := session.BuildSummary(session.Stats{Completed: 4, Correct: 2, MaxStreak: 2})
	view := New(f.Deps, sum).View(100, 40)

	if strings.Contains(view, "🔥") {
		t.Error("hot streak shown for a streak of 2")
	}
	if !strings.Contains(view, i18n.T("summary.grade_keep_going")) {
		t.Error("expected keep-going grade for 50%")
	}
}

func TestGradeTitles(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range []session.Grade{session.GradeKeepGoing, session.GradeGood, session.GradeGreat, session.GradeExcellent} {
		seen[GradeTitle(g)] = true
	}
	if len(seen) != 4 {
		t.Errorf("grade titles are not distinct: %v", seen)
	}
}

func TestSummaryScreen_EnterStartsNewSession(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if got := msg.Screen.Title(); got != "learn" {
		t.Errorf("replaced with %q, want learn", got)
	}
}

func TestSummaryScreen_QuitPops(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps, testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected command from q")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg")
	}
}
