package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
)

// newTestController uses a long tick so the timer never fires unless a test
// asks for it.
func newTestController(t *testing.T, r *fakeRemote, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{WithTickInterval(time.Hour)}, opts...)
	c := NewController(r, staticToken("tok"), opts...)
	t.Cleanup(c.Close)
	return c
}

func answerAndSubmit(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.SetAnswer(exercise.ChoiceAnswer{Index: 0}))
	require.NoError(t, c.SubmitAnswer(context.Background()))
}

func TestStartSession(t *testing.T) {
	r := &fakeRemote{active: []ActiveSession{{ID: "old", Completed: 3, Correct: 2, MaxStreak: 2, Points: 20}}}
	c := newTestController(t, r)

	require.NoError(t, c.StartSession(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, "sess-1", snap.SessionID)
	assert.Equal(t, PhaseActive, snap.Phase)
	require.NotNil(t, snap.Exercise)
	assert.Equal(t, "ex-1", snap.Exercise.ID)
	assert.Equal(t, Stats{}, snap.Stats)
	assert.False(t, snap.Loading)

	assert.Equal(t, []string{"active", "close", "start", "next"}, r.callLog())
	require.Len(t, r.closed, 1)
	assert.Equal(t, "old", r.closed[0].SessionID)
	assert.Equal(t, Stats{Completed: 3, Correct: 2, MaxStreak: 2, Points: 20}, r.closed[0].Stats)
	assert.NotNil(t, r.closed[0].CompletedExercises)
}

func TestStartSession_AuthMissing(t *testing.T) {
	r := &fakeRemote{}

	c := NewController(r, staticToken(""))
	err := c.StartSession(context.Background())
	assert.ErrorIs(t, err, ErrAuthMissing)

	c = NewController(r, failingToken{err: errBoom})
	err = c.StartSession(context.Background())
	assert.ErrorIs(t, err, ErrAuthMissing)
	assert.ErrorIs(t, err, errBoom)

	assert.Empty(t, r.callLog(), "no remote call without a credential")
	assert.Equal(t, PhaseIdle, c.Snapshot().Phase)
}

func TestStartSession_CleanupFailureIsSoft(t *testing.T) {
	t.Run("listing fails", func(t *testing.T) {
		r := &fakeRemote{activeErr: errBoom}
		c := newTestController(t, r)
		require.NoError(t, c.StartSession(context.Background()))
		assert.Equal(t, []string{"active", "start", "next"}, r.callLog())
	})
	t.Run("close fails and stops the sweep", func(t *testing.T) {
		r := &fakeRemote{
			active:   []ActiveSession{{ID: "a"}, {ID: "b"}},
			closeErr: errBoom,
		}
		c := newTestController(t, r)
		require.NoError(t, c.StartSession(context.Background()))
		assert.Equal(t, []string{"active", "close", "start", "next"}, r.callLog())
	})
}

func TestStartSession_RemoteFailures(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		r := &fakeRemote{startErr: errBoom}
		c := newTestController(t, r)
		err := c.StartSession(context.Background())

		var re *RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "start session", re.Op)
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, PhaseIdle, c.Snapshot().Phase)
	})
	t.Run("first fetch", func(t *testing.T) {
		r := &fakeRemote{nextErr: errBoom}
		c := newTestController(t, r)
		err := c.StartSession(context.Background())
		assert.ErrorIs(t, err, errBoom)

		snap := c.Snapshot()
		assert.Equal(t, "sess-1", snap.SessionID, "session stays open for a retry")
		assert.Nil(t, snap.Exercise)
	})
}

func TestSubmitAnswer_Bookkeeping(t *testing.T) {
	r := &fakeRemote{scores: []float64{7}}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))

	answerAndSubmit(t, c)

	snap := c.Snapshot()
	assert.True(t, snap.ShowFeedback)
	require.NotNil(t, snap.Result)
	assert.Equal(t, 7.0, snap.Result.Score)
	assert.Equal(t, []CompletedExercise{{ID: "ex-1", Score: 7}}, snap.Completed)
	assert.Equal(t, Stats{Completed: 1, Correct: 1, Streak: 1, MaxStreak: 1, Points: 7}, snap.Stats)
	assert.Equal(t, []CompletedExercise{{ID: "ex-1", Score: 7}}, r.recorded)
}

func TestSubmitAnswer_Gating(t *testing.T) {
	r := &fakeRemote{}
	c := newTestController(t, r)

	// No session: no-op.
	require.NoError(t, c.SubmitAnswer(context.Background()))
	assert.Empty(t, r.callLog())

	require.NoError(t, c.StartSession(context.Background()))
	assert.False(t, c.CanSubmit())
	assert.ErrorIs(t, c.SubmitAnswer(context.Background()), ErrAnswerIncomplete)

	answerAndSubmit(t, c)
	assert.False(t, c.CanSubmit())
	assert.ErrorIs(t, c.SetAnswer(exercise.ChoiceAnswer{Index: 1}), ErrAnswerLocked)

	// Second submit while feedback is shown is ignored.
	require.NoError(t, c.SubmitAnswer(context.Background()))
	assert.Equal(t, 1, c.Stats().Completed)
}

func TestSubmitAnswer_RemoteFailure(t *testing.T) {
	r := &fakeRemote{submitErr: errBoom}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))
	require.NoError(t, c.SetAnswer(exercise.ChoiceAnswer{Index: 1}))

	err := c.SubmitAnswer(context.Background())
	assert.ErrorIs(t, err, errBoom)

	snap := c.Snapshot()
	assert.False(t, snap.ShowFeedback)
	assert.Equal(t, exercise.ChoiceAnswer{Index: 1}, snap.Answer, "answer survives a failed submit")
	assert.Equal(t, Stats{}, snap.Stats)
}

func TestSubmitAnswer_RecordFailureKeepsProgress(t *testing.T) {
	r := &fakeRemote{recordErr: errBoom}
	rec := &memRecorder{}
	c := newTestController(t, r, WithRecorder(rec))
	require.NoError(t, c.StartSession(context.Background()))
	require.NoError(t, c.SetAnswer(exercise.ChoiceAnswer{Index: 0}))

	err := c.SubmitAnswer(context.Background())
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "record completion", re.Op)

	snap := c.Snapshot()
	assert.True(t, snap.ShowFeedback)
	assert.NotNil(t, snap.Result)
	assert.Equal(t, 1, snap.Stats.Completed)
	assert.Len(t, snap.Completed, 1)
	assert.Len(t, rec.answers, 1)
}

func TestStreakScenario(t *testing.T) {
	r := &fakeRemote{scores: []float64{10, 10, 10, 0}}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))

	for i := 0; i < 4; i++ {
		answerAndSubmit(t, c)
		if i < 3 {
			require.NoError(t, c.NextExercise(context.Background()))
		}
	}

	assert.Equal(t, Stats{Completed: 4, Correct: 3, Streak: 0, MaxStreak: 3, Points: 30}, c.Stats())
}

func TestFullSession(t *testing.T) {
	r := &fakeRemote{}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))

	for i := 0; i < SessionLimit; i++ {
		answerAndSubmit(t, c)
		if i < SessionLimit-1 {
			require.NoError(t, c.NextExercise(context.Background()))
		}
	}

	snap := c.Snapshot()
	assert.Equal(t, PhaseComplete, snap.Phase)
	assert.Equal(t, Stats{Completed: 20, Correct: 20, Streak: 20, MaxStreak: 20, Points: 200}, snap.Stats)

	// Nothing moves past the limit.
	calls := len(r.callLog())
	require.NoError(t, c.NextExercise(context.Background()))
	require.NoError(t, c.SkipExercise(context.Background()))
	require.NoError(t, c.SubmitAnswer(context.Background()))
	assert.Len(t, r.callLog(), calls)
	assert.Equal(t, 20, c.Stats().Completed)
}

func TestSkipExercise(t *testing.T) {
	r := &fakeRemote{scores: []float64{10, 0}}
	c := newTestController(t, r)

	// No exercise: no-op.
	require.NoError(t, c.SkipExercise(context.Background()))

	require.NoError(t, c.StartSession(context.Background()))
	answerAndSubmit(t, c)
	require.NoError(t, c.NextExercise(context.Background()))

	before := c.Stats()
	require.NoError(t, c.SetAnswer(exercise.ChoiceAnswer{Index: 1}))
	require.NoError(t, c.SkipExercise(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, before, snap.Stats)
	assert.Len(t, snap.Completed, 1)
	assert.Equal(t, "ex-3", snap.Exercise.ID)
	assert.Nil(t, snap.Answer)
	assert.False(t, snap.ShowFeedback)
	assert.Nil(t, snap.Result)
	assert.Equal(t, []string{"", "", "ex-2"}, r.excludes)
}

func TestFiltersPushedBeforeFetch(t *testing.T) {
	r := &fakeRemote{}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))

	f := Filters{Category: exercise.CategoryHistoricalLiterary, Difficulty: []int{2, 3}}
	c.SetFilters(f)
	answerAndSubmit(t, c)
	require.NoError(t, c.NextExercise(context.Background()))

	calls := r.callLog()
	assert.Equal(t, []string{"filters", "next"}, calls[len(calls)-2:])
	assert.Equal(t, []Filters{f}, r.pushed)
}

func TestFiltersPushFailureIsSoft(t *testing.T) {
	r := &fakeRemote{pushErr: errBoom}
	c := newTestController(t, r)
	c.SetFilters(Filters{Type: exercise.KindEssay})

	require.NoError(t, c.StartSession(context.Background()))
	assert.NotNil(t, c.Snapshot().Exercise)
}

func TestEndSession(t *testing.T) {
	rec := &memRecorder{}
	r := &fakeRemote{scores: []float64{10, 0}}
	c := newTestController(t, r, WithRecorder(rec))

	// No session: no-op.
	require.NoError(t, c.EndSession(context.Background()))
	assert.Empty(t, r.callLog())

	require.NoError(t, c.StartSession(context.Background()))
	c.SetFilters(Filters{Epoch: "ROMANTICISM"})
	answerAndSubmit(t, c)
	require.NoError(t, c.NextExercise(context.Background()))
	answerAndSubmit(t, c)

	require.NoError(t, c.EndSession(context.Background()))

	require.Len(t, r.closed, 1)
	closed := r.closed[0]
	assert.Equal(t, "sess-1", closed.SessionID)
	assert.Equal(t, Stats{Completed: 2, Correct: 1, Streak: 0, MaxStreak: 1, Points: 10}, closed.Stats)
	assert.Equal(t, []CompletedExercise{{ID: "ex-1", Score: 10}, {ID: "ex-2", Score: 0}}, closed.CompletedExercises)

	fresh := NewController(r, staticToken("tok"))
	assert.Equal(t, fresh.Snapshot(), c.Snapshot())

	require.Len(t, rec.answers, 2)
	assert.Equal(t, feedback.Correct, rec.answers[0].Outcome)
	assert.Equal(t, feedback.Incorrect, rec.answers[1].Outcome)
	require.Len(t, rec.sessions, 1)
	assert.Equal(t, 2, rec.sessions[0].Stats.Completed)
}

func TestEndSession_FailureKeepsState(t *testing.T) {
	r := &fakeRemote{}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))
	answerAndSubmit(t, c)

	r.closeErr = errBoom
	err := c.EndSession(context.Background())
	assert.ErrorIs(t, err, errBoom)

	snap := c.Snapshot()
	assert.Equal(t, "sess-1", snap.SessionID)
	assert.Equal(t, 1, snap.Stats.Completed)
}

func TestInFlightGuard(t *testing.T) {
	r := &fakeRemote{}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))

	r.block = make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- c.SkipExercise(context.Background()) }()

	require.Eventually(t, func() bool { return c.Snapshot().Loading }, time.Second, time.Millisecond)
	assert.ErrorIs(t, c.NextExercise(context.Background()), ErrBusy)
	assert.ErrorIs(t, c.SubmitAnswer(context.Background()), ErrBusy)
	assert.False(t, c.CanSubmit())

	close(r.block)
	require.NoError(t, <-done)
	assert.False(t, c.Snapshot().Loading)
}

func TestLateCompletionDiscarded(t *testing.T) {
	r := &fakeRemote{}
	c := newTestController(t, r)
	require.NoError(t, c.StartSession(context.Background()))

	r.block = make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- c.SkipExercise(context.Background()) }()
	require.Eventually(t, func() bool { return c.Snapshot().Loading }, time.Second, time.Millisecond)

	require.NoError(t, c.EndSession(context.Background()))
	close(r.block)

	assert.True(t, errors.Is(<-done, ErrStale))
	snap := c.Snapshot()
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Nil(t, snap.Exercise)
	assert.False(t, snap.Loading)
}

func TestTimer(t *testing.T) {
	r := &fakeRemote{}
	c := NewController(r, staticToken("tok"), WithTickInterval(5*time.Millisecond))
	t.Cleanup(c.Close)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, c.Stats().TimeSpent, "idle controller does not tick")

	require.NoError(t, c.StartSession(context.Background()))
	require.Eventually(t, func() bool { return c.Stats().TimeSpent >= 2 }, time.Second, time.Millisecond)

	require.NoError(t, c.EndSession(context.Background()))
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, c.Stats().TimeSpent)
}

func TestTimerStopsOnComplete(t *testing.T) {
	r := &fakeRemote{}
	c := NewController(r, staticToken("tok"), WithTickInterval(time.Millisecond))
	t.Cleanup(c.Close)
	require.NoError(t, c.StartSession(context.Background()))

	for i := 0; i < SessionLimit; i++ {
		answerAndSubmit(t, c)
		if i < SessionLimit-1 {
			require.NoError(t, c.NextExercise(context.Background()))
		}
	}
	require.True(t, c.Snapshot().Complete())

	frozen := c.Stats().TimeSpent
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, c.Stats().TimeSpent)
}
