package summary

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/router"
	"github.com/maturapolski/matura/internal/screen"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
	"github.com/maturapolski/matura/internal/ui/theme"
)

// SummaryScreen shows the results of a finished session.
type SummaryScreen struct {
	deps    *screen.Deps
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for sum.
func New(deps *screen.Deps, sum session.Summary) *SummaryScreen {
	return &SummaryScreen{deps: deps, summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return i18n.T("summary.title")
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.deps.Screens.Learn != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: i18n.T("summary.new_session")})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: i18n.T("summary.home")})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.deps.Screens.Learn == nil {
				return s, pop
			}
			next := s.deps.Screens.Learn()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "q":
			return s, pop
		}
	}
	return s, nil
}

func pop() tea.Msg { return router.PopScreenMsg{} }

// GradeTitle is the headline for a grade band.
func GradeTitle(g session.Grade) string {
	switch g {
	case session.GradeExcellent:
		return i18n.T("summary.grade_excellent")
	case session.GradeGreat:
		return i18n.T("summary.grade_great")
	case session.GradeGood:
		return i18n.T("summary.grade_good")
	}
	return i18n.T("summary.grade_keep_going")
}

func gradeEmoji(g session.Grade) string {
	switch g {
	case session.GradeExcellent:
		return "🏆"
	case session.GradeGreat:
		return "🌟"
	case session.GradeGood:
		return "👍"
	}
	return "💪"
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	st := sum.Stats
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render(i18n.T("summary.title")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(gradeColor(sum.Grade)).
		Bold(true).
		Render(gradeEmoji(sum.Grade) + "  " + GradeTitle(sum.Grade)))
	b.WriteString("\n\n")

	b.WriteString(components.StatRow(cw,
		[2]string{i18n.T("stats.completed"), fmt.Sprintf("%d", st.Completed)},
		[2]string{i18n.T("stats.correct"), fmt.Sprintf("%d", st.Correct)},
		[2]string{i18n.T("stats.accuracy"), fmt.Sprintf("%d%%", sum.Accuracy)},
	))
	b.WriteString("\n")
	b.WriteString(components.StatRow(cw,
		[2]string{i18n.T("stats.points"), strconv.FormatFloat(st.Points, 'f', -1, 64)},
		[2]string{i18n.T("stats.max_streak"), fmt.Sprintf("%d", st.MaxStreak)},
		[2]string{i18n.T("stats.time"), layout.Clock(st.TimeSpent)},
	))
	b.WriteString("\n\n")

	bar := components.NewProgressBar(i18n.T("stats.accuracy"), float64(sum.Accuracy)/100, true, cw)
	bar.Fill = gradeColor(sum.Grade)
	b.WriteString(bar.View())

	if sum.HotStreak {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("🔥 " + i18n.Tp("summary.hot_streak", st.MaxStreak)))
	}

	return layout.Centered(components.Card(b.String(), cw), width, height)
}

func gradeColor(g session.Grade) color.Color {
	switch g {
	case session.GradeExcellent, session.GradeGreat:
		return theme.Success
	case session.GradeGood:
		return theme.Secondary
	}
	return theme.Warning
}
