package learn

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen/screentest"
	"github.com/maturapolski/matura/internal/session"
)

// step runs cmd and feeds its message back into s.
func step(t *testing.T, s *LearnScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	_, next := s.Update(cmd())
	return next
}

func started(t *testing.T, kind exercise.Kind) (*screentest.Fixture, *LearnScreen) {
	t.Helper()
	f := screentest.NewFixture(t)
	f.Remote.Kind = kind
	f.SignIn(t)

	s := New(f.Deps)
	step(t, s, s.run(opStart))
	require.NotNil(t, s.snap.Exercise)
	return f, s
}

func press(s *LearnScreen, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := s.Update(msg)
	return cmd
}

func TestStartShowsFirstExercise(t *testing.T) {
	_, s := started(t, exercise.KindClosedSingle)

	assert.True(t, s.snap.Active())
	assert.False(t, s.pending)
	view := s.View(100, 40)
	assert.Contains(t, view, "Pytanie ex-1")
	assert.Contains(t, view, "alfa")
}

func TestStartWithoutTokenShowsError(t *testing.T) {
	f := screentest.NewFixture(t)
	s := New(f.Deps)
	step(t, s, s.run(opStart))

	assert.Nil(t, s.snap.Exercise)
	assert.Equal(t, i18n.T("errors.auth_missing"), s.errMsg)
	assert.Contains(t, s.View(100, 40), s.errMsg)
}

func TestFetchFailureCanBeRetried(t *testing.T) {
	f := screentest.NewFixture(t)
	f.SignIn(t)
	f.Remote.NextErr = errors.New("boom")

	s := New(f.Deps)
	step(t, s, s.run(opStart))
	require.NotEmpty(t, s.errMsg)
	require.True(t, s.snap.Active())

	f.Remote.NextErr = nil
	step(t, s, press(s, screentest.Special(tea.KeyEnter)))
	assert.Empty(t, s.errMsg)
	require.NotNil(t, s.snap.Exercise)
}

func TestEnterWithoutAnswerDoesNothing(t *testing.T) {
	_, s := started(t, exercise.KindClosedSingle)
	assert.Nil(t, press(s, screentest.Special(tea.KeyEnter)))
}

func TestPickAndSubmitShowsFeedback(t *testing.T) {
	_, s := started(t, exercise.KindClosedSingle)

	press(s, screentest.Key('2'))
	assert.Equal(t, exercise.ChoiceAnswer{Index: 1}, s.snap.Answer)

	step(t, s, press(s, screentest.Special(tea.KeyEnter)))

	require.True(t, s.snap.ShowFeedback)
	assert.Equal(t, 1, s.snap.Stats.Completed)
	assert.Equal(t, 1, s.snap.Stats.Correct)
	assert.True(t, s.choices.Locked)
	assert.Contains(t, s.View(100, 40), i18n.T("feedback.correct"))

	// Locked: digits no longer change the answer.
	press(s, screentest.Key('3'))
	assert.Equal(t, exercise.ChoiceAnswer{Index: 1}, s.snap.Answer)
}

func TestIncorrectAnswerShowsExplanation(t *testing.T) {
	f, s := started(t, exercise.KindClosedSingle)
	f.Remote.Scores = []float64{0}

	press(s, screentest.Key('1'))
	step(t, s, press(s, screentest.Special(tea.KeyEnter)))

	view := s.View(100, 40)
	assert.Contains(t, view, i18n.T("feedback.incorrect"))
	assert.Contains(t, view, "Bo tak.")
	assert.Equal(t, 0, s.snap.Stats.Streak)
}

func TestMultipleChoiceToggles(t *testing.T) {
	_, s := started(t, exercise.KindClosedMultiple)

	press(s, screentest.Key('1'))
	press(s, screentest.Key('3'))
	assert.Equal(t, []int{0, 2}, s.snap.Answer.(exercise.MultiChoiceAnswer).Indices)

	press(s, screentest.Key('1'))
	assert.Equal(t, []int{2}, s.snap.Answer.(exercise.MultiChoiceAnswer).Indices)
}

func TestNextAfterFeedback(t *testing.T) {
	_, s := started(t, exercise.KindClosedSingle)

	press(s, screentest.Key('1'))
	step(t, s, press(s, screentest.Special(tea.KeyEnter)))
	step(t, s, press(s, screentest.Special(tea.KeyEnter)))

	require.NotNil(t, s.snap.Exercise)
	assert.Equal(t, "ex-2", s.snap.Exercise.ID)
	assert.False(t, s.snap.ShowFeedback)
	assert.False(t, s.choices.Locked)
	assert.Nil(t, s.snap.Answer)
}

func TestSkipAsksFirst(t *testing.T) {
	_, s := started(t, exercise.KindClosedSingle)

	assert.Nil(t, press(s, screentest.Ctrl('n')))
	assert.Equal(t, confirmSkip, s.confirming)

	// Cancel keeps the exercise.
	press(s, screentest.Key('n'))
	assert.Equal(t, confirmNone, s.confirming)
	assert.Equal(t, "ex-1", s.snap.Exercise.ID)

	press(s, screentest.Ctrl('n'))
	step(t, s, press(s, screentest.Key('y')))
	assert.Equal(t, "ex-2", s.snap.Exercise.ID)
	assert.Equal(t, 0, s.snap.Stats.Completed)
}

func TestEndAfterAnswersShowsSummary(t *testing.T) {
	f, s := started(t, exercise.KindClosedSingle)

	press(s, screentest.Key('1'))
	step(t, s, press(s, screentest.Special(tea.KeyEnter)))

	press(s, screentest.Special(tea.KeyEscape))
	require.Equal(t, confirmEnd, s.confirming)

	next := step(t, s, press(s, screentest.Key('y')))
	require.NotNil(t, next)
	msg, ok := next().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	assert.Contains(t, msg.Screen.View(100, 40), i18n.T("summary.title"))

	require.Len(t, f.Remote.Closed, 1)
	assert.Equal(t, 1, f.Remote.Closed[0].Stats.Completed)
	assert.False(t, f.Deps.Session.Snapshot().Active())
}

func TestEndWithoutAnswersPops(t *testing.T) {
	_, s := started(t, exercise.KindClosedSingle)

	press(s, screentest.Special(tea.KeyEscape))
	next := step(t, s, press(s, screentest.Key('y')))
	require.NotNil(t, next)
	_, ok := next().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestSessionCompletesAtLimit(t *testing.T) {
	f, s := started(t, exercise.KindClosedSingle)

	for i := 0; i < session.SessionLimit; i++ {
		press(s, screentest.Key('1'))
		step(t, s, press(s, screentest.Special(tea.KeyEnter)))
		require.True(t, s.snap.ShowFeedback, "answer %d", i+1)
		if i < session.SessionLimit-1 {
			step(t, s, press(s, screentest.Special(tea.KeyEnter)))
		}
	}

	require.True(t, s.snap.Complete())
	assert.Contains(t, s.KeyHints()[0].Description, i18n.T("learn.finish"))

	next := step(t, s, press(s, screentest.Special(tea.KeyEnter)))
	_, ok := next().(router.ReplaceScreenMsg)
	assert.True(t, ok)
	require.Len(t, f.Remote.Closed, 1)
	assert.Equal(t, session.SessionLimit, f.Remote.Closed[0].Stats.Completed)
}

func TestEssayNeedsMinimumWords(t *testing.T) {
	_, s := started(t, exercise.KindEssay)

	screentest.Type(s, "jeden dwa")
	assert.Nil(t, press(s, screentest.Ctrl('s')))
	assert.Contains(t, s.View(100, 60), i18n.Tp("learn.words_to_minimum", 1))

	// Enter is a newline in the essay editor, not a submit.
	press(s, screentest.Special(tea.KeyEnter))
	assert.False(t, s.pending)

	screentest.Type(s, "trzy")
	step(t, s, press(s, screentest.Ctrl('s')))
	assert.True(t, s.snap.ShowFeedback)
}

func TestShortAnswerSubmitsOnEnter(t *testing.T) {
	_, s := started(t, exercise.KindShortAnswer)

	screentest.Type(s, "metafora")
	assert.Equal(t, exercise.TextAnswer{Text: "metafora"}, s.snap.Answer)
	step(t, s, press(s, screentest.Special(tea.KeyEnter)))
	assert.True(t, s.snap.ShowFeedback)
}

func TestFilterEditorAppliesToController(t *testing.T) {
	f, s := started(t, exercise.KindClosedSingle)

	press(s, screentest.Ctrl('f'))
	require.True(t, s.editing)
	assert.Contains(t, s.View(100, 40), i18n.T("filters.title"))

	press(s, screentest.Special(tea.KeyRight))
	cmd := press(s, screentest.Special(tea.KeyEnter))
	assert.False(t, s.editing)
	screentest.Drain(cmd)

	want := session.Filters{Type: exercise.AllKinds[0]}
	assert.Equal(t, want, f.Deps.Session.Snapshot().Filters)
	require.Len(t, f.Filters.Saved, 1)
	assert.Equal(t, want, f.Filters.Saved[0])
}

func TestFilterEditorEscDiscards(t *testing.T) {
	f, s := started(t, exercise.KindClosedSingle)

	press(s, screentest.Ctrl('f'))
	press(s, screentest.Special(tea.KeyRight))
	press(s, screentest.Special(tea.KeyEscape))

	assert.False(t, s.editing)
	assert.True(t, s.snap.Active(), "esc in the editor must not end the session")
	assert.True(t, f.Deps.Session.Snapshot().Filters.IsEmpty())
}

func TestHintsFollowState(t *testing.T) {
	_, s := started(t, exercise.KindEssay)
	assert.Equal(t, "Ctrl+S", s.KeyHints()[0].Key)

	hints := make([]string, 0)
	for _, h := range s.KeyHints() {
		hints = append(hints, h.Key)
	}
	assert.NotContains(t, strings.Join(hints, " "), "1-9")
}
