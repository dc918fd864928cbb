package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
)

// RemoteAPI is the subset of the learning API the controller drives.
type RemoteAPI interface {
	ActiveSessions(ctx context.Context) ([]ActiveSession, error)
	CloseSession(ctx context.Context, req CloseRequest) error
	StartSession(ctx context.Context) (string, error)
	PushFilters(ctx context.Context, f Filters) error
	NextExercise(ctx context.Context, excludeID string) (*exercise.Exercise, error)
	SubmitAnswer(ctx context.Context, exerciseID string, answer exercise.Answer) (*feedback.Result, error)
	RecordCompletion(ctx context.Context, sessionID, exerciseID string, score float64) error
}

// TokenProvider yields the current bearer credential. An empty token with a
// nil error also counts as missing.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Recorder receives a local journal of answers and finished sessions.
type Recorder interface {
	RecordAnswer(ctx context.Context, rec AnswerRecord) error
	RecordSession(ctx context.Context, rec SessionRecord) error
}

// AnswerRecord is journaled after each submission.
type AnswerRecord struct {
	SessionID  string
	ExerciseID string
	Kind       exercise.Kind
	Category   exercise.Category
	Score      float64
	Outcome    feedback.Outcome
	At         time.Time
}

// SessionRecord is journaled when a session is closed on the server.
type SessionRecord struct {
	SessionID string
	Stats     Stats
	StartedAt time.Time
	EndedAt   time.Time
}

// Phase is the controller's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	default:
		return "idle"
	}
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	SessionID    string
	Phase        Phase
	Exercise     *exercise.Exercise
	Answer       exercise.Answer
	ShowFeedback bool
	Result       *feedback.Result
	Stats        Stats
	Filters      Filters
	Completed    []CompletedExercise
	Loading      bool
}

// Active is true while a session id is held, including after completion.
func (s Snapshot) Active() bool { return s.SessionID != "" }

// Complete is true once the session limit was reached.
func (s Snapshot) Complete() bool { return s.Phase == PhaseComplete }

// CanSubmit mirrors Controller.CanSubmit on the copied state.
func (s Snapshot) CanSubmit() bool {
	return !s.Loading && s.Phase == PhaseActive && !s.ShowFeedback &&
		exercise.CanSubmit(s.Exercise, s.Answer)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithTickInterval overrides the one second elapsed-time tick.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tickInterval = d
		}
	}
}

// WithRecorder journals answers and finished sessions.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithClock replaces time.Now for journal timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller owns one learning session at a time. All methods are safe for
// concurrent use; at most one remote operation runs at once.
type Controller struct {
	remote       RemoteAPI
	tokens       TokenProvider
	recorder     Recorder
	log          zerolog.Logger
	tickInterval time.Duration
	now          func() time.Time

	mu sync.Mutex

	// epoch changes whenever the session is replaced or reset. Remote results
	// carry the epoch they were issued under and are dropped on mismatch.
	epoch uint64
	busy  bool

	sessionID    string
	phase        Phase
	current      *exercise.Exercise
	answer       exercise.Answer
	showFeedback bool
	result       *feedback.Result
	stats        Stats
	filters      Filters
	ledger       []CompletedExercise
	startedAt    time.Time

	stopTimer chan struct{}
}

// NewController creates an idle controller.
func NewController(remote RemoteAPI, tokens TokenProvider, opts ...Option) *Controller {
	c := &Controller{
		remote:       remote,
		tokens:       tokens,
		log:          zerolog.Nop(),
		tickInterval: time.Second,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		SessionID:    c.sessionID,
		Phase:        c.phase,
		Exercise:     c.current,
		Answer:       c.answer,
		ShowFeedback: c.showFeedback,
		Result:       c.result,
		Stats:        c.stats,
		Filters:      c.filters,
		Loading:      c.busy,
	}
	s.Filters.Difficulty = append([]int(nil), c.filters.Difficulty...)
	s.Completed = append([]CompletedExercise(nil), c.ledger...)
	return s
}

// Stats returns the running counters.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// SetAnswer replaces the answer buffer for the current exercise.
func (c *Controller) SetAnswer(a exercise.Answer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNoSession
	}
	if c.showFeedback {
		return ErrAnswerLocked
	}
	c.answer = a
	return nil
}

// SetFilters replaces the filters pushed before the next fetch.
func (c *Controller) SetFilters(f Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f.Difficulty = append([]int(nil), f.Difficulty...)
	c.filters = f
}

// CanSubmit reports whether SubmitAnswer would send the current answer.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.busy && c.phase == PhaseActive && !c.showFeedback &&
		exercise.CanSubmit(c.current, c.answer)
}

// Close stops the timer. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

// acquire claims the in-flight slot and returns the current epoch.
func (c *Controller) acquire() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return 0, ErrBusy
	}
	c.busy = true
	return c.epoch, nil
}

// release frees the slot unless a reset already did.
func (c *Controller) release(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch == epoch {
		c.busy = false
	}
}

// resetLocked returns to the idle defaults of a fresh controller.
func (c *Controller) resetLocked() {
	c.stopTimerLocked()
	c.epoch++
	c.busy = false
	c.sessionID = ""
	c.phase = PhaseIdle
	c.current = nil
	c.answer = nil
	c.showFeedback = false
	c.result = nil
	c.stats = Stats{}
	c.filters = Filters{}
	c.ledger = nil
	c.startedAt = time.Time{}
}
