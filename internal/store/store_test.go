package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
	"github.com/maturapolski/matura/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenInMemory(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := s.Journal().RecentSessions(context.Background(), QueryOpts{}); err != nil {
		t.Fatalf("query in-memory journal: %v", err)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreated(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"answer_logs", "session_logs", "snapshots", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	err = s.Journal().RecordSession(ctx, session.SessionRecord{SessionID: "s1", EndedAt: time.Now()})
	if err != nil {
		t.Fatalf("record session: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Journal().RecentSessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("sessions after reopen = %d, want 1", len(got))
	}
	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if next != 2 {
		t.Errorf("sequence after reopen = %d, want 2", next)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Errorf("next = %d, want %d", got, want)
		}
	}
}

func TestJournalAnswersAndSessions(t *testing.T) {
	s := openTestStore(t)
	j := s.Journal()
	ctx := context.Background()
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	answers := []session.AnswerRecord{
		{SessionID: "s1", ExerciseID: "e1", Kind: exercise.KindClosedSingle, Category: exercise.CategoryLanguageUse, Score: 1, Outcome: feedback.Correct, At: base},
		{SessionID: "s1", ExerciseID: "e2", Kind: exercise.KindEssay, Category: exercise.CategoryWriting, Score: 0, Outcome: feedback.PartiallyCorrect, At: base.Add(time.Minute)},
		{SessionID: "s2", ExerciseID: "e3", Kind: exercise.KindShortAnswer, Category: exercise.CategoryLanguageUse, Score: 2, Outcome: feedback.Correct, At: base.Add(time.Hour)},
	}
	for _, a := range answers {
		if err := j.RecordAnswer(ctx, a); err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}

	for i, id := range []string{"s1", "s2"} {
		err := j.RecordSession(ctx, session.SessionRecord{
			SessionID: id,
			Stats:     session.Stats{Completed: 2 - i, Correct: 1, MaxStreak: 1, Points: 1 + float64(i), TimeSpent: 60},
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			EndedAt:   base.Add(time.Duration(i)*time.Hour + 10*time.Minute),
		})
		if err != nil {
			t.Fatalf("record session: %v", err)
		}
	}

	got, err := j.RecentSessions(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sessions = %d, want 2", len(got))
	}
	if got[0].SessionID != "s2" {
		t.Errorf("newest session = %q, want s2", got[0].SessionID)
	}
	if !got[1].StartedAt.Equal(base) {
		t.Errorf("started_at = %v, want %v", got[1].StartedAt, base)
	}

	limited, err := j.RecentSessions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("recent sessions limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited sessions = %d, want 1", len(limited))
	}

	s1, err := j.SessionAnswers(ctx, "s1")
	if err != nil {
		t.Fatalf("session answers: %v", err)
	}
	if len(s1) != 2 || s1[0].ExerciseID != "e1" || s1[1].Outcome != "partially_correct" {
		t.Errorf("session answers = %+v", s1)
	}

	totals, err := j.CategoryTotals(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("category totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("totals = %d, want 2", len(totals))
	}
	lang := totals[0]
	if lang.Category != "LANGUAGE_USE" || lang.Answered != 2 || lang.Correct != 2 || lang.Points != 3 {
		t.Errorf("language totals = %+v", lang)
	}
}

func TestRecordSessionTwiceKeepsLatest(t *testing.T) {
	s := openTestStore(t)
	j := s.Journal()
	ctx := context.Background()
	now := time.Now()

	for _, completed := range []int{3, 5} {
		err := j.RecordSession(ctx, session.SessionRecord{
			SessionID: "s1",
			Stats:     session.Stats{Completed: completed},
			EndedAt:   now,
		})
		if err != nil {
			t.Fatalf("record session: %v", err)
		}
	}

	got, err := j.RecentSessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 1 || got[0].Completed != 5 {
		t.Errorf("sessions = %+v, want one with completed=5", got)
	}
	if !got[0].StartedAt.IsZero() {
		t.Errorf("started_at = %v, want zero", got[0].StartedAt)
	}
}

func TestJournalTimeRange(t *testing.T) {
	s := openTestStore(t)
	j := s.Journal()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	days := []struct {
		id  string
		cat exercise.Category
	}{
		{"s1", exercise.CategoryLanguageUse},
		{"s2", exercise.CategoryWriting},
	}
	for i, d := range days {
		at := base.Add(time.Duration(i) * 48 * time.Hour)
		err := j.RecordAnswer(ctx, session.AnswerRecord{
			SessionID: d.id, ExerciseID: "e", Kind: exercise.KindEssay,
			Category: d.cat, Score: 1, Outcome: feedback.Correct, At: at,
		})
		if err != nil {
			t.Fatalf("record answer: %v", err)
		}
		err = j.RecordSession(ctx, session.SessionRecord{SessionID: d.id, EndedAt: at})
		if err != nil {
			t.Fatalf("record session: %v", err)
		}
	}

	opts := QueryOpts{From: base.Add(24 * time.Hour)}
	sessions, err := j.RecentSessions(ctx, opts)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].SessionID != "s2" {
		t.Errorf("sessions from day 2 = %+v, want only s2", sessions)
	}

	totals, err := j.CategoryTotals(ctx, QueryOpts{To: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("category totals: %v", err)
	}
	if len(totals) != 1 || totals[0].Category != string(exercise.CategoryLanguageUse) {
		t.Errorf("totals up to day 1 = %+v, want only language use", totals)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestFiltersRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	empty, err := s.LastFilters(ctx)
	if err != nil {
		t.Fatalf("last filters (empty): %v", err)
	}
	if !empty.IsEmpty() {
		t.Errorf("expected empty filters, got %+v", empty)
	}

	want := session.Filters{Type: exercise.KindEssay, Epoch: "POSITIVISM", Difficulty: []int{3, 4}}
	if err := s.SaveFilters(ctx, want); err != nil {
		t.Fatalf("save filters: %v", err)
	}

	got, err := s.LastFilters(ctx)
	if err != nil {
		t.Fatalf("last filters: %v", err)
	}
	if got.Type != want.Type || got.Epoch != want.Epoch || len(got.Difficulty) != 2 {
		t.Errorf("filters = %+v, want %+v", got, want)
	}
}
