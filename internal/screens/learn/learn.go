package learn

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/screens/filters"
	"github.com/maturapolski/matura/internal/screens/summary"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
)

const requestTimeout = 60 * time.Second

type pendingConfirm int

const (
	confirmNone pendingConfirm = iota
	confirmSkip
	confirmEnd
)

// LearnScreen drives one learning session through the controller.
type LearnScreen struct {
	deps *screen.Deps
	ctrl *session.Controller
	snap session.Snapshot

	// Widgets bound to boundID; rebuilt when the exercise changes.
	boundID string
	choices components.MultiChoice
	input   components.TextInput
	area    components.TextArea

	pending    bool
	ending     bool
	errMsg     string
	confirm    components.Confirm
	confirming pendingConfirm
	editing    bool
	editor     filters.Editor
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.BackHandler = (*LearnScreen)(nil)

// New creates a LearnScreen over deps.Session.
func New(deps *screen.Deps) *LearnScreen {
	return &LearnScreen{
		deps: deps,
		ctrl: deps.Session,
		snap: deps.Session.Snapshot(),
	}
}

// Init starts a session unless one is already running, and starts the
// one second refresh.
func (s *LearnScreen) Init() tea.Cmd {
	if s.snap.Active() && s.snap.Exercise != nil {
		s.bind()
		return tickCmd()
	}
	if s.snap.Active() {
		return tea.Batch(s.run(opFetch), tickCmd())
	}
	return tea.Batch(s.run(opStart), tickCmd())
}

func (s *LearnScreen) Title() string {
	return i18n.T("learn.title")
}

func (s *LearnScreen) HandlesBack() bool { return true }

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirming != confirmNone:
		return []layout.KeyHint{
			{Key: "Y", Description: i18n.T("hints.yes")},
			{Key: "N", Description: i18n.T("hints.no")},
		}
	case s.editing:
		return filters.Hints()
	case s.snap.Exercise == nil:
		if s.errMsg != "" {
			return []layout.KeyHint{
				{Key: "Enter", Description: i18n.T("hints.retry")},
				{Key: "Esc", Description: i18n.T("learn.end")},
			}
		}
		return []layout.KeyHint{{Key: "Esc", Description: i18n.T("learn.end")}}
	case s.snap.ShowFeedback:
		label := i18n.T("learn.next")
		if s.snap.Complete() {
			label = i18n.T("learn.finish")
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: label},
			{Key: "Esc", Description: i18n.T("learn.end")},
		}
	}

	hints := []layout.KeyHint{{Key: submitKeyLabel(s.snap.Exercise.Kind), Description: i18n.T("learn.check")}}
	if s.snap.Exercise.Kind.IsClosed() {
		hints = append(hints, layout.KeyHint{Key: "1-9", Description: i18n.T("learn.pick")})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+N", Description: i18n.T("learn.skip")},
		layout.KeyHint{Key: "Ctrl+F", Description: i18n.T("filters.title")},
		layout.KeyHint{Key: "Esc", Description: i18n.T("learn.end")},
	)
}

// usesTextArea reports whether kind is answered in the multi-line editor,
// where Enter inserts a newline.
func usesTextArea(kind exercise.Kind) bool {
	return kind == exercise.KindSynthesisNote || kind == exercise.KindEssay
}

func submitKeyLabel(kind exercise.Kind) string {
	if usesTextArea(kind) {
		return "Ctrl+S"
	}
	return "Enter"
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		return s.handleOpDone(msg)

	case sessionEndedMsg:
		return s.handleEnded(msg)

	case timerTickMsg:
		if s.ending {
			return s, nil
		}
		s.snap = s.ctrl.Snapshot()
		return s, tickCmd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.editing {
		var cmd tea.Cmd
		s.editor, _, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, s.forwardToInput(msg)
}

// run issues a controller call off the UI goroutine.
func (s *LearnScreen) run(o op) tea.Cmd {
	s.pending = true
	s.errMsg = ""
	ctrl := s.ctrl
	var excludeID string
	if o == opFetch && s.snap.Exercise != nil {
		excludeID = s.snap.Exercise.ID
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		switch o {
		case opStart:
			err = ctrl.StartSession(ctx)
		case opFetch:
			err = ctrl.FetchNextExercise(ctx, excludeID)
		case opSubmit:
			err = ctrl.SubmitAnswer(ctx)
		case opSkip:
			err = ctrl.SkipExercise(ctx)
		case opNext:
			err = ctrl.NextExercise(ctx)
		}
		return opDoneMsg{Op: o, Err: err}
	}
}

func (s *LearnScreen) handleOpDone(msg opDoneMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	s.snap = s.ctrl.Snapshot()

	switch {
	case msg.Err == nil:
	case errors.Is(msg.Err, session.ErrStale), errors.Is(msg.Err, session.ErrBusy):
		// A newer call owns the state; nothing to show.
	default:
		s.deps.Log.Warn().Err(msg.Err).Int("op", int(msg.Op)).Msg("session call failed")
		s.errMsg = errtext.Of(msg.Err)
	}

	if msg.Op == opNext && msg.Err == nil && s.snap.Complete() {
		return s, s.end()
	}

	s.bind()
	return s, nil
}

// bind rebuilds the answer widgets when the exercise changed and locks them
// while feedback is shown.
func (s *LearnScreen) bind() {
	ex := s.snap.Exercise
	if ex == nil {
		s.boundID = ""
		return
	}
	if ex.ID != s.boundID {
		s.boundID = ex.ID
		switch {
		case ex.Kind.IsClosed():
			s.choices = components.NewMultiChoice(ex.Options(), ex.Kind == exercise.KindClosedMultiple)
		case usesTextArea(ex.Kind):
			placeholder := i18n.T("learn.note_placeholder")
			if ex.Kind == exercise.KindEssay {
				placeholder = i18n.T("learn.essay_placeholder")
			}
			s.area = components.NewTextArea(placeholder, 70, 8)
			s.area.Focus()
		default:
			s.input = components.NewTextInput(i18n.T("learn.answer_placeholder"), false, 500)
			s.input.Focus()
		}
	}

	locked := s.snap.ShowFeedback
	switch {
	case ex.Kind.IsClosed():
		s.choices.Locked = locked
	case usesTextArea(ex.Kind):
		s.area.SetReadOnly(locked)
	case locked:
		s.input.Blur()
	}
}

func (s *LearnScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.ending {
		return s, nil
	}

	if s.confirming != confirmNone {
		var d components.Decision
		s.confirm, d = s.confirm.Update(msg)
		switch d {
		case components.Confirmed:
			what := s.confirming
			s.confirming = confirmNone
			if what == confirmEnd {
				return s, s.end()
			}
			return s, s.run(opSkip)
		case components.Cancelled:
			s.confirming = confirmNone
		}
		return s, nil
	}

	if s.editing {
		var (
			res filters.Result
			cmd tea.Cmd
		)
		s.editor, res, cmd = s.editor.Update(msg)
		switch res {
		case filters.Saved:
			s.editing = false
			return s, filters.Apply(s.deps, s.editor.Value())
		case filters.Discarded:
			s.editing = false
		}
		return s, cmd
	}

	switch key {
	case "esc":
		if !s.snap.Active() {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.confirming = confirmEnd
		s.confirm = components.NewConfirm(
			i18n.T("learn.confirm_end"),
			i18n.Tp("learn.confirm_end_detail", s.snap.Stats.Completed),
			i18n.T("learn.end"), i18n.T("hints.cancel"),
		)
		return s, nil
	case "ctrl+f":
		s.editing = true
		s.editor = filters.NewEditor(s.snap.Filters)
		return s, nil
	}

	if s.pending {
		return s, nil
	}

	ex := s.snap.Exercise
	if ex == nil {
		if key == "enter" && s.errMsg != "" {
			if s.snap.Active() {
				return s, s.run(opFetch)
			}
			return s, s.run(opStart)
		}
		return s, nil
	}

	if s.snap.ShowFeedback {
		if key == "enter" || key == "space" || key == " " {
			if s.snap.Complete() {
				return s, s.end()
			}
			return s, s.run(opNext)
		}
		return s, nil
	}

	switch key {
	case "ctrl+n":
		s.confirming = confirmSkip
		s.confirm = components.NewConfirm(i18n.T("learn.confirm_skip"), "", i18n.T("learn.skip"), i18n.T("hints.cancel"))
		return s, nil
	case "ctrl+s":
		return s, s.submit()
	case "enter":
		if !usesTextArea(ex.Kind) {
			return s, s.submit()
		}
	}

	return s, s.forwardToInput(msg)
}

// forwardToInput routes msg to the widget of the current kind and mirrors
// its value into the controller's answer buffer.
func (s *LearnScreen) forwardToInput(msg tea.Msg) tea.Cmd {
	ex := s.snap.Exercise
	if ex == nil || s.snap.ShowFeedback {
		return nil
	}

	var cmd tea.Cmd
	var answer exercise.Answer
	switch {
	case ex.Kind.IsClosed():
		var picked int
		s.choices, picked = s.choices.Update(msg)
		if picked < 0 {
			return nil
		}
		if ex.Kind == exercise.KindClosedMultiple {
			cur, _ := s.snap.Answer.(exercise.MultiChoiceAnswer)
			answer = cur.Toggle(picked)
		} else {
			answer = exercise.ChoiceAnswer{Index: picked}
		}
	case usesTextArea(ex.Kind):
		s.area, cmd = s.area.Update(msg)
		answer = exercise.TextAnswer{Text: s.area.Value()}
	default:
		s.input, cmd = s.input.Update(msg)
		answer = exercise.TextAnswer{Text: s.input.Value()}
	}

	if err := s.ctrl.SetAnswer(answer); err != nil {
		s.deps.Log.Debug().Err(err).Msg("answer not buffered")
	}
	s.snap = s.ctrl.Snapshot()
	return cmd
}

func (s *LearnScreen) submit() tea.Cmd {
	if !s.snap.CanSubmit() {
		return nil
	}
	return s.run(opSubmit)
}

// end closes the session and swaps this screen for the summary. Sessions
// ended before any answer just return to the previous screen.
func (s *LearnScreen) end() tea.Cmd {
	s.ending = true
	sum := session.BuildSummary(s.ctrl.Stats())
	ctrl := s.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return sessionEndedMsg{Summary: sum, Err: ctrl.EndSession(ctx)}
	}
}

func (s *LearnScreen) handleEnded(msg sessionEndedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.ending = false
		s.errMsg = errtext.Of(msg.Err)
		s.snap = s.ctrl.Snapshot()
		return s, tickCmd()
	}

	if msg.Summary.Stats.Completed == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	next := summary.New(s.deps, msg.Summary)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
