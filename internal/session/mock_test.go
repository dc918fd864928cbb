package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
)

type staticToken string

func (t staticToken) Token(context.Context) (string, error) { return string(t), nil }

type failingToken struct{ err error }

func (t failingToken) Token(context.Context) (string, error) { return "", t.err }

// fakeRemote serves numbered closed-single exercises and scores submissions
// from a queue. Calls are recorded in order.
type fakeRemote struct {
	mu sync.Mutex

	calls    []string
	excludes []string
	pushed   []Filters
	closed   []CloseRequest
	recorded []CompletedExercise

	active []ActiveSession
	scores []float64
	served int

	activeErr error
	closeErr  error
	startErr  error
	pushErr   error
	nextErr   error
	submitErr error
	recordErr error

	// block, when set, holds NextExercise until released.
	block chan struct{}
}

func (f *fakeRemote) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRemote) ActiveSessions(context.Context) ([]ActiveSession, error) {
	f.record("active")
	return f.active, f.activeErr
}

func (f *fakeRemote) CloseSession(_ context.Context, req CloseRequest) error {
	f.record("close")
	if f.closeErr != nil {
		return f.closeErr
	}
	f.mu.Lock()
	f.closed = append(f.closed, req)
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) StartSession(context.Context) (string, error) {
	f.record("start")
	if f.startErr != nil {
		return "", f.startErr
	}
	return "sess-1", nil
}

func (f *fakeRemote) PushFilters(_ context.Context, fl Filters) error {
	f.record("filters")
	f.mu.Lock()
	f.pushed = append(f.pushed, fl)
	f.mu.Unlock()
	return f.pushErr
}

func (f *fakeRemote) NextExercise(_ context.Context, excludeID string) (*exercise.Exercise, error) {
	f.record("next")
	if f.block != nil {
		<-f.block
	}
	if f.nextErr != nil {
		return nil, f.nextErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.excludes = append(f.excludes, excludeID)
	f.served++
	return &exercise.Exercise{
		ID:         fmt.Sprintf("ex-%d", f.served),
		Kind:       exercise.KindClosedSingle,
		Difficulty: 1,
		Points:     10,
		Content:    exercise.ChoiceContent{Options: []string{"A", "B"}},
	}, nil
}

func (f *fakeRemote) SubmitAnswer(_ context.Context, exerciseID string, _ exercise.Answer) (*feedback.Result, error) {
	f.record("submit")
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	score := 10.0
	if len(f.scores) > 0 {
		score, f.scores = f.scores[0], f.scores[1:]
	}
	return &feedback.Result{Score: score}, nil
}

func (f *fakeRemote) RecordCompletion(_ context.Context, _ string, exerciseID string, score float64) error {
	f.record("record")
	if f.recordErr != nil {
		return f.recordErr
	}
	f.mu.Lock()
	f.recorded = append(f.recorded, CompletedExercise{ID: exerciseID, Score: score})
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type memRecorder struct {
	mu       sync.Mutex
	answers  []AnswerRecord
	sessions []SessionRecord
	err      error
}

func (m *memRecorder) RecordAnswer(_ context.Context, rec AnswerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, rec)
	return m.err
}

func (m *memRecorder) RecordSession(_ context.Context, rec SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, rec)
	return m.err
}

var errBoom = errors.New("boom")
