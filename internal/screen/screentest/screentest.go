// Package screentest provides fakes and key helpers for screen tests.
package screentest

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/store"
)

// Key returns a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special returns a non-printable key press such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Ctrl returns ctrl+r for Ctrl('r').
func Ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// Type feeds text into s one rune at a time.
func Type(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(Key(r))
	}
	return s
}

// Stub is a named screen used as a navigation target.
type Stub struct {
	Name string
}

func (s *Stub) Init() tea.Cmd                           { return nil }
func (s *Stub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *Stub) View(int, int) string                    { return s.Name }
func (s *Stub) Title() string                           { return s.Name }

// AuthClient is a scripted auth.Client.
type AuthClient struct {
	mu sync.Mutex

	Calls     []string
	LastEmail string
	LastCode  string

	LoginErr    error
	RegisterErr error
	VerifyErr   error
	ResendErr   error
	ResetErr    error
}

var _ auth.Client = (*AuthClient)(nil)

func (c *AuthClient) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, call)
}

func (c *AuthClient) Login(_ context.Context, email, _ string) (*api.AuthResponse, error) {
	c.record("login")
	c.LastEmail = email
	if c.LoginErr != nil {
		return nil, c.LoginErr
	}
	return &api.AuthResponse{User: api.User{ID: "u1", Email: email, Username: "ola"}, Token: "tok", RefreshToken: "ref"}, nil
}

func (c *AuthClient) Register(_ context.Context, email, _, _ string) error {
	c.record("register")
	c.LastEmail = email
	return c.RegisterErr
}

func (c *AuthClient) VerifyEmail(_ context.Context, code string) (*api.AuthResponse, error) {
	c.record("verify")
	c.LastCode = code
	if c.VerifyErr != nil {
		return nil, c.VerifyErr
	}
	return &api.AuthResponse{User: api.User{ID: "u1", Username: "ola"}, Token: "vtok"}, nil
}

func (c *AuthClient) ResendVerification(_ context.Context, email string) error {
	c.record("resend")
	c.LastEmail = email
	return c.ResendErr
}

func (c *AuthClient) RequestPasswordReset(_ context.Context, email string) error {
	c.record("reset")
	c.LastEmail = email
	return c.ResetErr
}

// Remote serves numbered closed-single exercises and scores submissions
// from Scores, defaulting to 1.
type Remote struct {
	mu sync.Mutex

	Calls   []string
	Closed  []session.CloseRequest
	Pushed  []session.Filters
	Scores  []float64
	Kind    exercise.Kind
	NextErr error

	served int
}

var _ session.RemoteAPI = (*Remote)(nil)

func (r *Remote) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, call)
}

func (r *Remote) ActiveSessions(context.Context) ([]session.ActiveSession, error) {
	r.record("active")
	return nil, nil
}

func (r *Remote) CloseSession(_ context.Context, req session.CloseRequest) error {
	r.record("close")
	r.mu.Lock()
	r.Closed = append(r.Closed, req)
	r.mu.Unlock()
	return nil
}

func (r *Remote) StartSession(context.Context) (string, error) {
	r.record("start")
	return "sess-1", nil
}

func (r *Remote) PushFilters(_ context.Context, f session.Filters) error {
	r.record("filters")
	r.mu.Lock()
	r.Pushed = append(r.Pushed, f)
	r.mu.Unlock()
	return nil
}

func (r *Remote) NextExercise(context.Context, string) (*exercise.Exercise, error) {
	r.record("next")
	if r.NextErr != nil {
		return nil, r.NextErr
	}
	r.mu.Lock()
	r.served++
	n := r.served
	r.mu.Unlock()
	return NewExercise(fmt.Sprintf("ex-%d", n), r.Kind), nil
}

func (r *Remote) SubmitAnswer(context.Context, string, exercise.Answer) (*feedback.Result, error) {
	r.record("submit")
	r.mu.Lock()
	defer r.mu.Unlock()
	score := 1.0
	if len(r.Scores) > 0 {
		score, r.Scores = r.Scores[0], r.Scores[1:]
	}
	res := &feedback.Result{Score: score}
	if score == 0 {
		res.Feedback = &feedback.Feedback{CorrectAnswerText: "B", Explanation: "Bo tak."}
	}
	return res, nil
}

func (r *Remote) RecordCompletion(context.Context, string, string, float64) error {
	r.record("record")
	return nil
}

// NewExercise builds an exercise of kind with content filled in.
func NewExercise(id string, kind exercise.Kind) *exercise.Exercise {
	if kind == "" {
		kind = exercise.KindClosedSingle
	}
	ex := &exercise.Exercise{
		ID:         id,
		Kind:       kind,
		Category:   exercise.CategoryLanguageUse,
		Difficulty: 2,
		Points:     1,
		Question:   "Pytanie " + id,
	}
	switch kind {
	case exercise.KindClosedSingle, exercise.KindClosedMultiple:
		ex.Content = exercise.ChoiceContent{Options: []string{"alfa", "beta", "gamma"}}
	case exercise.KindShortAnswer, exercise.KindSynthesisNote:
		ex.Content = exercise.TextContent{Instruction: "Wyjaśnij."}
	case exercise.KindEssay:
		ex.Category = exercise.CategoryWriting
		ex.Points = 35
		ex.Content = exercise.EssayContent{
			Thesis:    "Czy warto być wiernym sobie?",
			WordLimit: &exercise.WordLimit{Min: 3, Max: 300},
		}
	}
	return ex
}

// Stats is a fixed StatsSource.
type Stats struct {
	Learning api.LearningStats
	MaxLevel int
	Err      error
}

func (s *Stats) Stats(context.Context) (*api.LearningStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := s.Learning
	return &out, nil
}

func (s *Stats) DifficultyProgress(context.Context) (*api.DifficultyProgress, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &api.DifficultyProgress{CurrentMaxDifficulty: s.MaxLevel}, nil
}

// History is an in-memory journal.
type History struct {
	Sessions []store.SessionEntry
	Answers  map[string][]store.AnswerEntry
	Totals   []store.CategoryTotal
}

func (h *History) RecentSessions(_ context.Context, opts store.QueryOpts) ([]store.SessionEntry, error) {
	if opts.Limit > 0 && len(h.Sessions) > opts.Limit {
		return h.Sessions[:opts.Limit], nil
	}
	return h.Sessions, nil
}

func (h *History) SessionAnswers(_ context.Context, id string) ([]store.AnswerEntry, error) {
	return h.Answers[id], nil
}

func (h *History) CategoryTotals(context.Context, store.QueryOpts) ([]store.CategoryTotal, error) {
	return h.Totals, nil
}

// Filters is an in-memory FilterStore.
type Filters struct {
	mu    sync.Mutex
	Saved []session.Filters
	Last  session.Filters
}

func (f *Filters) SaveFilters(_ context.Context, fl session.Filters) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Saved = append(f.Saved, fl)
	f.Last = fl
	return nil
}

func (f *Filters) LastFilters(context.Context) (session.Filters, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Last, nil
}

// Fixture bundles Deps with the fakes behind it.
type Fixture struct {
	Deps    *screen.Deps
	Auth    *AuthClient
	Remote  *Remote
	Stats   *Stats
	History *History
	Filters *Filters
}

// NewFixture builds Deps over fakes with a credential file in a temp dir.
// Factory screens are Stubs named "home", "login", "learn" and
// "verify:<email>".
func NewFixture(t testing.TB) *Fixture {
	t.Helper()

	creds := auth.NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	if err := creds.Init(); err != nil {
		t.Fatalf("init credential store: %v", err)
	}

	f := &Fixture{
		Auth:    &AuthClient{},
		Remote:  &Remote{},
		Stats:   &Stats{},
		History: &History{Answers: map[string][]store.AnswerEntry{}},
		Filters: &Filters{},
	}
	ctrl := session.NewController(f.Remote, creds, session.WithTickInterval(time.Hour))
	t.Cleanup(ctrl.Close)

	f.Deps = &screen.Deps{
		Auth:    auth.NewService(f.Auth, creds, zerolog.Nop()),
		Stats:   f.Stats,
		Session: ctrl,
		History: f.History,
		Filters: f.Filters,
		Log:     zerolog.Nop(),
		Now:     func() time.Time { return time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC) },
		Version: "v1.0.0-test",
		Screens: screen.Factory{
			Home:   func() screen.Screen { return &Stub{Name: "home"} },
			Login:  func() screen.Screen { return &Stub{Name: "login"} },
			Verify: func(email string) screen.Screen { return &Stub{Name: "verify:" + email} },
			Learn:  func() screen.Screen { return &Stub{Name: "learn"} },
		},
	}
	return f
}

// SignIn stores credentials so the controller has a token.
func (f *Fixture) SignIn(t testing.TB) {
	t.Helper()
	err := f.Deps.Auth.Store().Set(context.Background(), auth.Credentials{
		User:  api.User{ID: "u1", Username: "ola", Email: "ola@example.com"},
		Token: "tok",
	})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
}

// Drain runs cmd and returns its message, or nil.
func Drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
