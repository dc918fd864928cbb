package history

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screen/screentest"
	"github.com/maturapolski/matura/internal/store"
)

func loaded(t *testing.T, f *screentest.Fixture) *HistoryScreen {
	t.Helper()
	s := New(f.Deps)
	s.Update(s.Init()())
	return s
}

func TestEmptyHistory(t *testing.T) {
	f := screentest.NewFixture(t)
	s := loaded(t, f)

	if !strings.Contains(s.View(100, 30), i18n.T("history.empty")) {
		t.Error("expected empty-state copy")
	}
}

func TestListsSessions(t *testing.T) {
	f := screentest.NewFixture(t)
	end := time.Date(2026, 5, 3, 18, 30, 0, 0, time.Local)
	f.History.Sessions = []store.SessionEntry{
		{SessionID: "s2", Completed: 4, Correct: 3, Points: 5.5, TimeSpent: 125, EndedAt: end},
		{SessionID: "s1", Completed: 2, Correct: 2, Points: 2, TimeSpent: 60, EndedAt: end.Add(-24 * time.Hour)},
	}
	s := loaded(t, f)

	view := s.View(120, 30)
	for _, want := range []string{"2026-05-03 18:30", "2:05", "75%", "5.5", "2026-05-02"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExpandLoadsAnswers(t *testing.T) {
	f := screentest.NewFixture(t)
	f.History.Sessions = []store.SessionEntry{{SessionID: "s1", Completed: 2}, {SessionID: "s2"}}
	f.History.Answers["s2"] = []store.AnswerEntry{
		{SessionID: "s2", ExerciseID: "e1", Kind: "CLOSED_SINGLE", Category: "LANGUAGE_USE", Score: 1, Outcome: "correct"},
		{SessionID: "s2", ExerciseID: "e2", Kind: "ESSAY", Category: "WRITING", Score: 0, Outcome: "incorrect"},
	}
	s := loaded(t, f)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selection moved past the last session")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expanding should load answers")
	}
	s.Update(cmd())

	view := s.View(120, 40)
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("answer marks missing:\n%s", view)
	}

	// Collapse and expand again: answers are cached.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("answers should not be reloaded")
	}
}

func TestNoJournal(t *testing.T) {
	f := screentest.NewFixture(t)
	f.Deps.History = nil
	s := loaded(t, f)

	if !strings.Contains(s.View(100, 30), i18n.T("history.empty")) {
		t.Error("missing journal should read as empty")
	}
}
