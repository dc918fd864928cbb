package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/theme"
)

// renderFeedback draws the result panel for a graded answer.
func renderFeedback(ex *exercise.Exercise, res *feedback.Result, cw int) string {
	rep := feedback.Interpret(ex, res)

	var heading string
	var accent lipgloss.Style
	switch rep.Outcome {
	case feedback.Correct:
		accent = theme.Correct
		heading = i18n.T("feedback.correct")
		if !rep.Closed {
			heading = i18n.T("feedback.great_answer")
		}
	case feedback.PartiallyCorrect:
		accent = theme.Partial
		heading = i18n.T("feedback.partial")
	default:
		accent = theme.Incorrect
		heading = i18n.T("feedback.incorrect")
	}

	score := "+" + points(rep.Score)
	if rep.MaxScore > 0 && !rep.Closed {
		score += "/" + points(rep.MaxScore)
	}
	heading += "   " + i18n.Td("feedback.score", map[string]any{"Score": score})

	inner := cw - 6
	var parts []string
	for _, sec := range rep.Sections {
		parts = append(parts, renderSection(sec, inner))
	}

	body := strings.Join(parts, "\n\n")
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent.GetForeground()).
		Width(cw).
		Padding(0, 1)
	if body == "" {
		return card.Render(accent.Render(heading))
	}
	return card.Render(accent.Render(heading) + "\n\n" + body)
}

func renderSection(sec feedback.Section, width int) string {
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	switch sec.Kind {
	case feedback.SectionCorrectAnswer:
		return theme.Label.Render(i18n.T("feedback.correct_answer")) + " " + theme.Correct.Render(sec.Text)
	case feedback.SectionExplanation:
		return theme.Label.Render(i18n.T("feedback.explanation")) + "\n" + text.Render(sec.Text)
	case feedback.SectionNarrative:
		return text.Render(sec.Text)
	case feedback.SectionCorrectElements:
		return theme.Correct.Render("✓ "+i18n.T("feedback.correct_elements")) + "\n" +
			components.BulletList(sec.Items, "•", theme.Correct, width)
	case feedback.SectionMissingElements:
		return theme.Incorrect.Render("✗ "+i18n.T("feedback.missing_elements")) + "\n" +
			components.BulletList(sec.Items, "•", theme.Incorrect, width)
	case feedback.SectionModelAnswer:
		return theme.Label.Render(i18n.T("feedback.model_answer")) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Width(width).Render(sec.Text)
	case feedback.SectionSuggestions:
		return theme.Label.Render("💡 "+i18n.T("feedback.suggestions")) + "\n" +
			components.BulletList(sec.Items, "•", theme.Hint, width)
	case feedback.SectionRubric:
		return renderRubric(sec.Rubric, width)
	}
	return ""
}

func renderRubric(items []feedback.RubricItem, width int) string {
	var b strings.Builder
	b.WriteString(theme.Label.Render(i18n.T("feedback.rubric")))
	for _, it := range items {
		label := i18n.T("feedback.rubric_" + it.Key)
		var pct float64
		if it.Max > 0 {
			pct = it.Score / it.Max
		}
		bar := components.NewProgressBar("", pct, false, 20)
		fmt.Fprintf(&b, "\n%-24s %s  %s/%s", label, bar.View(), points(it.Score), points(it.Max))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
