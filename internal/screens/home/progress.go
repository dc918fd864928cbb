package home

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screens/filters"
	"github.com/maturapolski/matura/internal/store"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/theme"
)

func (h *HomeScreen) viewProgress(cw int) string {
	if !h.loaded {
		return theme.Hint.Render(i18n.T("home.loading"))
	}

	var sections []string
	if st := h.stats; st != nil {
		sections = append(sections, components.StatRow(cw,
			[2]string{i18n.T("progress.total_exercises"), fmt.Sprintf("%d", st.TotalExercises)},
			[2]string{i18n.T("progress.total_sessions"), fmt.Sprintf("%d", st.TotalSessions)},
			[2]string{i18n.T("progress.correct_rate"), fmt.Sprintf("%.0f%%", st.CorrectRate)},
			[2]string{i18n.T("progress.avg_points"), strconv.FormatFloat(st.AvgPoints, 'f', 1, 64)},
		))

		streak := i18n.T("progress.streak_none")
		if st.Streak > 0 {
			streak = i18n.T("progress.streak_keep")
		}
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🔥 "+i18n.Tp("home.streak_days", st.Streak))+
				"\n"+theme.Hint.Render(streak)))
	}

	sections = append(sections, renderCategoryTotals(h.totals, cw))
	return strings.Join(sections, "\n\n")
}

// renderCategoryTotals lists the local journal per category with an
// accuracy bar.
func renderCategoryTotals(totals []store.CategoryTotal, cw int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(i18n.T("progress.by_category")))

	if len(totals) == 0 {
		return header + "\n" + theme.Hint.Render(i18n.T("progress.no_local"))
	}

	// Calculate column widths
	nameWidth := 26
	barWidth := cw - nameWidth - 24
	if barWidth < 8 {
		barWidth = 8
	}

	lines := []string{header}
	for _, t := range totals {
		name := filters.CategoryLabel(exercise.Category(t.Category))
		if len([]rune(name)) > nameWidth {
			name = string([]rune(name)[:nameWidth-1]) + "…"
		}

		var acc float64
		if t.Answered > 0 {
			acc = float64(t.Correct) / float64(t.Answered)
		}
		bar := components.NewProgressBar("", acc, false, barWidth)
		switch {
		case acc >= 0.75:
			bar.Fill = theme.Success
		case acc >= 0.5:
			bar.Fill = theme.Warning
		default:
			bar.Fill = theme.Error
		}

		lines = append(lines, fmt.Sprintf("%s %s %3.0f%%  %s",
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%-*s", nameWidth, name)),
			bar.View(),
			acc*100,
			theme.Hint.Render(i18n.Tp("progress.answered", t.Answered)),
		))
	}
	return strings.Join(lines, "\n")
}
