package learn

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screens/filters"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/layout"
	"github.com/maturapolski/matura/internal/ui/theme"
)

func (s *LearnScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.confirming != confirmNone {
		return layout.Centered(s.confirm.View(cw), width, height)
	}
	if s.editing {
		card := components.TitledCard(i18n.T("filters.title"), "\n"+s.editor.View(cw-4), cw, theme.Title)
		return layout.Centered(card, width, height)
	}

	var sections []string
	sections = append(sections, renderHeader(s.snap.Stats, cw))

	switch {
	case s.ending:
		sections = append(sections, theme.Hint.Render(i18n.T("learn.ending")))
	case s.snap.Exercise == nil && s.errMsg != "":
		sections = append(sections, theme.ErrorText.Width(cw).Render(s.errMsg))
	case s.snap.Exercise == nil:
		sections = append(sections, theme.Hint.Render(i18n.T("learn.loading")))
	default:
		sections = append(sections, s.renderExercise(cw))
		if s.snap.ShowFeedback {
			sections = append(sections, renderFeedback(s.snap.Exercise, s.snap.Result, cw))
		}
		if s.errMsg != "" {
			sections = append(sections, theme.ErrorText.Width(cw).Render(s.errMsg))
		}
		if s.pending {
			sections = append(sections, theme.Hint.Render(i18n.T("learn.sending")))
		}
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// renderHeader shows the running counters and the progress to the limit.
func renderHeader(st session.Stats, cw int) string {
	streak := fmt.Sprintf("%d", st.Streak)
	if st.Streak >= session.HotStreak {
		streak = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🔥 " + streak)
	}
	row := components.StatRow(cw,
		[2]string{i18n.T("stats.completed"), fmt.Sprintf("%d/%d", st.Completed, session.SessionLimit)},
		[2]string{i18n.T("stats.correct"), fmt.Sprintf("%d/%d", st.Correct, st.Completed)},
		[2]string{i18n.T("stats.streak"), streak},
		[2]string{i18n.T("stats.points"), points(st.Points)},
		[2]string{i18n.T("stats.time"), layout.Clock(st.TimeSpent)},
	)
	bar := components.NewProgressBar("", float64(st.Completed)/session.SessionLimit, false, cw)
	return row + "\n" + bar.View()
}

func (s *LearnScreen) renderExercise(cw int) string {
	ex := s.snap.Exercise

	badges := []string{
		theme.Badge.Render(filters.CategoryLabel(ex.Category)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(ex.DifficultyStars()),
		theme.Badge.Render(i18n.Tp("learn.points", ex.Points)),
	}
	if ex.Epoch != "" {
		badges = append(badges, theme.Badge.Render(ex.Epoch))
	}

	var b strings.Builder
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 4).Render(ex.Question))
	b.WriteString("\n\n")

	switch {
	case ex.Kind.IsClosed():
		b.WriteString(s.renderChoices(ex))
	case ex.Kind == exercise.KindEssay:
		b.WriteString(s.renderEssay(ex, cw))
	default:
		b.WriteString(s.renderShortAnswer(ex, cw))
	}

	return components.Card(b.String(), cw)
}

func (s *LearnScreen) renderChoices(ex *exercise.Exercise) string {
	var selected func(int) bool
	switch a := s.snap.Answer.(type) {
	case exercise.ChoiceAnswer:
		selected = func(i int) bool { return i == a.Index }
	case exercise.MultiChoiceAnswer:
		selected = a.Has
	}
	out := s.choices.View(selected)
	if ex.Kind == exercise.KindClosedMultiple && !s.snap.ShowFeedback {
		out += "\n" + theme.Hint.Render(i18n.T("learn.multi_hint"))
	}
	return out
}

func (s *LearnScreen) renderShortAnswer(ex *exercise.Exercise, cw int) string {
	var b strings.Builder
	if c, ok := ex.Content.(exercise.TextContent); ok {
		field := func(key, val string) {
			if val == "" {
				return
			}
			b.WriteString(theme.Label.Render(i18n.T(key)) + " ")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8).Render(val))
			b.WriteString("\n")
		}
		field("learn.instruction", c.Instruction)
		field("learn.phrase", c.Phrase)
		field("learn.work", c.Work)
		b.WriteString("\n")
	}
	if usesTextArea(ex.Kind) {
		s.area.SetSize(cw-6, 6)
		b.WriteString(s.area.View())
	} else {
		b.WriteString(s.input.View())
	}
	return b.String()
}

func (s *LearnScreen) renderEssay(ex *exercise.Exercise, cw int) string {
	c := ex.Essay()
	var b strings.Builder

	if c.Thesis != "" {
		b.WriteString(theme.Label.Render(i18n.T("learn.essay_topic")) + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Width(cw - 6).Render(c.Thesis))
		b.WriteString("\n\n")
	}
	if st := c.Structure; st != nil {
		b.WriteString(theme.Label.Render(i18n.T("learn.essay_structure")) + "\n")
		for _, p := range [][2]string{
			{"learn.essay_intro", st.Introduction},
			{"learn.essay_arguments", st.ArgumentsFor},
			{"learn.essay_conclusion", st.Conclusion},
		} {
			if p[1] != "" {
				b.WriteString("• " + i18n.T(p[0]) + ": " + p[1] + "\n")
			}
		}
		b.WriteString("\n")
	}
	if len(c.Requirements) > 0 {
		b.WriteString(theme.Label.Render(i18n.T("learn.essay_requirements")) + "\n")
		b.WriteString(components.BulletList(c.Requirements, "•", theme.Hint, cw-6))
		b.WriteString("\n\n")
	}

	s.area.SetSize(cw-6, 8)
	b.WriteString(s.area.View())
	b.WriteString("\n")
	b.WriteString(wordCounter(ex, s.area.Value()))
	return b.String()
}

// wordCounter shows the count against min-max and how many words are
// still needed.
func wordCounter(ex *exercise.Exercise, text string) string {
	n := exercise.WordCount(text)
	limit := fmt.Sprintf("%d", ex.MinWords())
	if maxW := ex.MaxWords(); maxW > 0 {
		limit = fmt.Sprintf("%d-%d", ex.MinWords(), maxW)
	}
	line := i18n.Td("learn.word_count", map[string]any{"Count": n, "Limit": limit})

	style := lipgloss.NewStyle().Foreground(theme.Success)
	if missing := exercise.WordsToMinimum(ex, text); missing > 0 {
		style = lipgloss.NewStyle().Foreground(theme.Warning)
		line += "   " + i18n.Tp("learn.words_to_minimum", missing)
	} else if maxW := ex.MaxWords(); maxW > 0 && n > maxW {
		style = lipgloss.NewStyle().Foreground(theme.Error)
	}
	return style.Render(line)
}

// points formats a score without trailing zeros.
func points(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
