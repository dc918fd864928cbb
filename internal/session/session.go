package session

import (
	"context"
	"fmt"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
)

// StartSession closes stale sessions, opens a new one and fetches the first
// exercise. A failed first fetch leaves the new session open so it can be
// retried with FetchNextExercise or closed with EndSession.
func (c *Controller) StartSession(ctx context.Context) error {
	epoch, err := c.acquire()
	if err != nil {
		return err
	}
	defer func() { c.release(epoch) }()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthMissing, err)
	}
	if token == "" {
		return ErrAuthMissing
	}

	c.closeStale(ctx)

	id, err := c.remote.StartSession(ctx)
	if err != nil {
		return remote("start session", err)
	}

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		return ErrStale
	}
	c.stopTimerLocked()
	c.epoch++
	epoch = c.epoch
	c.sessionID = id
	c.phase = PhaseActive
	c.current = nil
	c.answer = nil
	c.showFeedback = false
	c.result = nil
	c.stats = Stats{}
	c.ledger = nil
	c.startedAt = c.now()
	c.startTimerLocked()
	c.mu.Unlock()

	c.log.Info().Str("session_id", id).Msg("session started")

	return c.fetchNext(ctx, epoch, "")
}

// closeStale best-effort closes sessions the server still holds open. The
// first failure stops the sweep and is only logged.
func (c *Controller) closeStale(ctx context.Context) {
	open, err := c.remote.ActiveSessions(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("list active sessions")
		return
	}

	for _, s := range open {
		req := CloseRequest{
			SessionID: s.ID,
			Stats: Stats{
				Completed: s.Completed,
				Correct:   s.Correct,
				MaxStreak: s.MaxStreak,
				Points:    s.Points,
			},
			CompletedExercises: s.CompletedExercises,
		}
		if req.CompletedExercises == nil {
			req.CompletedExercises = []CompletedExercise{}
		}
		if err := c.remote.CloseSession(ctx, req); err != nil {
			c.log.Warn().Err(err).Str("session_id", s.ID).Msg("close stale session")
			return
		}
		c.log.Debug().Str("session_id", s.ID).Msg("closed stale session")
	}
}

// FetchNextExercise loads the next exercise, skipping excludeID when set.
func (c *Controller) FetchNextExercise(ctx context.Context, excludeID string) error {
	epoch, err := c.acquire()
	if err != nil {
		return err
	}
	defer c.release(epoch)

	c.mu.Lock()
	sessionID, phase := c.sessionID, c.phase
	c.mu.Unlock()

	if sessionID == "" {
		return ErrNoSession
	}
	if phase == PhaseComplete {
		return nil
	}
	return c.fetchNext(ctx, epoch, excludeID)
}

func (c *Controller) fetchNext(ctx context.Context, epoch uint64, excludeID string) error {
	c.mu.Lock()
	filters := c.filters
	c.mu.Unlock()

	if !filters.IsEmpty() {
		if err := c.remote.PushFilters(ctx, filters); err != nil {
			c.log.Warn().Err(err).Msg("push session filters")
		}
	}

	ex, err := c.remote.NextExercise(ctx, excludeID)
	if err != nil {
		return remote("next exercise", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		c.log.Debug().Str("exercise_id", ex.ID).Msg("discarding exercise for reset session")
		return ErrStale
	}
	c.current = ex
	c.answer = nil
	c.showFeedback = false
	c.result = nil

	c.log.Debug().Str("exercise_id", ex.ID).Str("type", string(ex.Kind)).Msg("exercise fetched")
	return nil
}

// SubmitAnswer sends the buffered answer, updates the stats and shows
// feedback. The local bookkeeping stays in place when the follow-up
// completion record fails; that error is still returned.
func (c *Controller) SubmitAnswer(ctx context.Context) error {
	epoch, err := c.acquire()
	if err != nil {
		return err
	}
	defer c.release(epoch)

	c.mu.Lock()
	ex, answer, sessionID := c.current, c.answer, c.sessionID
	if ex == nil || sessionID == "" || c.showFeedback || c.phase != PhaseActive {
		c.mu.Unlock()
		return nil
	}
	if !exercise.CanSubmit(ex, answer) {
		c.mu.Unlock()
		return ErrAnswerIncomplete
	}
	c.mu.Unlock()

	res, err := c.remote.SubmitAnswer(ctx, ex.ID, answer)
	if err != nil {
		return remote("submit answer", err)
	}
	if res == nil {
		res = &feedback.Result{}
	}

	c.mu.Lock()
	if c.epoch != epoch {
		c.mu.Unlock()
		c.log.Debug().Str("exercise_id", ex.ID).Msg("discarding result for reset session")
		return ErrStale
	}
	c.result = res
	c.ledger = append(c.ledger, CompletedExercise{ID: ex.ID, Score: res.Score})
	c.stats = c.stats.Apply(res.Score)
	c.showFeedback = true
	completed := c.stats.Completed >= SessionLimit
	if completed {
		c.phase = PhaseComplete
		c.stopTimerLocked()
	}
	c.mu.Unlock()

	c.log.Info().
		Str("exercise_id", ex.ID).
		Float64("score", res.Score).
		Bool("complete", completed).
		Msg("answer submitted")

	c.journalAnswer(ctx, sessionID, ex, res)

	// A graded answer stays counted even when recording it fails.
	if err := c.remote.RecordCompletion(ctx, sessionID, ex.ID, res.Score); err != nil {
		return remote("record completion", err)
	}
	return nil
}

// SkipExercise fetches a different exercise without touching the stats.
func (c *Controller) SkipExercise(ctx context.Context) error {
	epoch, err := c.acquire()
	if err != nil {
		return err
	}
	defer c.release(epoch)

	c.mu.Lock()
	ex, phase := c.current, c.phase
	c.mu.Unlock()

	if ex == nil || phase == PhaseComplete {
		return nil
	}
	return c.fetchNext(ctx, epoch, ex.ID)
}

// NextExercise advances after feedback, or completes the session when the
// limit has been reached.
func (c *Controller) NextExercise(ctx context.Context) error {
	epoch, err := c.acquire()
	if err != nil {
		return err
	}
	defer c.release(epoch)

	c.mu.Lock()
	if c.sessionID == "" {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.phase == PhaseComplete {
		c.mu.Unlock()
		return nil
	}
	if c.stats.Completed >= SessionLimit {
		c.phase = PhaseComplete
		c.stopTimerLocked()
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	return c.fetchNext(ctx, epoch, "")
}

// EndSession closes the session on the server and resets to idle. It does not
// wait for the in-flight slot. On failure the state is left untouched.
func (c *Controller) EndSession(ctx context.Context) error {
	c.mu.Lock()
	if c.sessionID == "" {
		c.mu.Unlock()
		return nil
	}
	epoch := c.epoch
	req := CloseRequest{
		SessionID:          c.sessionID,
		Stats:              c.stats,
		CompletedExercises: append([]CompletedExercise{}, c.ledger...),
	}
	startedAt := c.startedAt
	c.mu.Unlock()

	if err := c.remote.CloseSession(ctx, req); err != nil {
		return remote("close session", err)
	}

	c.mu.Lock()
	if c.epoch == epoch {
		c.resetLocked()
	}
	c.mu.Unlock()

	c.log.Info().
		Str("session_id", req.SessionID).
		Int("completed", req.Stats.Completed).
		Int("correct", req.Stats.Correct).
		Msg("session ended")

	c.journalSession(ctx, SessionRecord{
		SessionID: req.SessionID,
		Stats:     req.Stats,
		StartedAt: startedAt,
		EndedAt:   c.now(),
	})
	return nil
}

func (c *Controller) journalAnswer(ctx context.Context, sessionID string, ex *exercise.Exercise, res *feedback.Result) {
	if c.recorder == nil {
		return
	}
	rec := AnswerRecord{
		SessionID:  sessionID,
		ExerciseID: ex.ID,
		Kind:       ex.Kind,
		Category:   ex.Category,
		Score:      res.Score,
		Outcome:    feedback.Classify(ex, res),
		At:         c.now(),
	}
	if err := c.recorder.RecordAnswer(ctx, rec); err != nil {
		c.log.Warn().Err(err).Msg("journal answer")
	}
}

func (c *Controller) journalSession(ctx context.Context, rec SessionRecord) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordSession(ctx, rec); err != nil {
		c.log.Warn().Err(err).Msg("journal session")
	}
}
