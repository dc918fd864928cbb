// Package history lists past sessions from the local journal.
package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/screens/errtext"
	"github.com/maturapolski/matura/internal/screens/filters"
	"github.com/maturapolski/matura/internal/store"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
	"github.com/maturapolski/matura/internal/ui/theme"
)

// Limit is how many sessions the list loads.
const Limit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionEntry
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerEntry
	Err       error
}

// HistoryScreen displays past sessions; Enter expands one into its answers.
type HistoryScreen struct {
	deps     *screen.Deps
	sessions []store.SessionEntry
	answers  map[string][]store.AnswerEntry
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(deps *screen.Deps) *HistoryScreen {
	return &HistoryScreen{
		deps:     deps,
		answers:  make(map[string][]store.AnswerEntry),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	hist := s.deps.History
	if hist == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	return func() tea.Msg {
		sessions, err := hist.RecentSessions(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return i18n.T("history.title")
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T("history.details")},
		{Key: "↑↓", Description: i18n.T("hints.navigate")},
		{Key: "Esc", Description: i18n.T("hints.back")},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.deps.Log.Warn().Err(msg.Err).Msg("load history")
			s.errMsg = errtext.Of(msg.Err)
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.deps.Log.Warn().Err(msg.Err).Str("session_id", msg.SessionID).Msg("load session answers")
			return s, nil
		}
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			return s, s.toggle()
		}
	}
	return s, nil
}

// toggle expands the selected session, loading its answers the first time.
func (s *HistoryScreen) toggle() tea.Cmd {
	if s.selected >= len(s.sessions) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]
	id := s.sessions[s.selected].SessionID
	if !s.expanded[s.selected] || s.answers[id] != nil || s.deps.History == nil {
		return nil
	}
	hist := s.deps.History
	return func() tea.Msg {
		answers, err := hist.SessionAnswers(context.Background(), id)
		if answers == nil && err == nil {
			answers = []store.AnswerEntry{}
		}
		return answersLoadedMsg{SessionID: id, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}
	if s.errMsg != "" {
		return center(lipgloss.NewStyle().Foreground(theme.Error), "\n\n"+s.errMsg)
	}
	if !s.loaded {
		return center(lipgloss.NewStyle().Foreground(theme.TextDim), "\n\n"+i18n.T("history.loading"))
	}
	if len(s.sessions) == 0 {
		return center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true), "\n\n"+i18n.T("history.empty"))
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		acc := 0
		if sess.Completed > 0 {
			acc = int(float64(sess.Correct)/float64(sess.Completed)*100 + 0.5)
		}
		line := fmt.Sprintf("%s%s  %s  %s  %d%%  %s",
			prefix,
			sess.EndedAt.Local().Format("2006-01-02 15:04"),
			layout.Clock(sess.TimeSpent),
			i18n.Tp("history.exercises", sess.Completed),
			acc,
			i18n.Td("history.points", map[string]any{"Points": strconv.FormatFloat(sess.Points, 'f', -1, 64)}),
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers, ok := s.answers[sessionID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	switch {
	case !ok:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(i18n.T("history.loading"))) + "\n"
	case len(answers) == 0:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(i18n.T("history.no_answers"))) + "\n"
	}

	var rows []string
	for _, a := range answers {
		mark, st := "✗", theme.Incorrect
		switch a.Outcome {
		case "correct":
			mark, st = "✓", theme.Correct
		case "partially_correct":
			mark, st = "~", theme.Partial
		}
		rows = append(rows, fmt.Sprintf("%s %-22s %-26s %s",
			st.Render(mark),
			filters.KindLabel(exercise.Kind(a.Kind)),
			filters.CategoryLabel(exercise.Category(a.Category)),
			strconv.FormatFloat(a.Score, 'f', -1, 64),
		))
	}
	cw := components.ContentWidth(width)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(strings.Join(rows, "\n"), cw)) + "\n"
}
