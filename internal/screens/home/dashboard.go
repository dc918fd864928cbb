package home

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/screens/filters"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/theme"
)

// Greeting picks the salutation for the hour of t: before noon, before
// 18:00, then evening.
func Greeting(t time.Time, name string) string {
	key := "home.greeting_evening"
	switch h := t.Hour(); {
	case h < 12:
		key = "home.greeting_morning"
	case h < 18:
		key = "home.greeting_day"
	}
	return i18n.Td(key, map[string]any{"Name": name})
}

func (h *HomeScreen) viewDashboard(cw int, compact bool) string {
	var sections []string

	name := ""
	if u, ok := h.deps.User(); ok {
		name = u.Username
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(Greeting(h.deps.Clock(), name)))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.stats), cw))
	}

	if !h.loaded {
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(i18n.T("home.loading")))
		return strings.Join(sections, "\n\n")
	}

	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if h.progress != nil && h.progress.CurrentMaxDifficulty > 0 {
		sections = append(sections, renderDifficulty(h.progress.CurrentMaxDifficulty, cw))
	}
	return strings.Join(sections, "\n\n")
}

// renderDifficulty shows the unlocked difficulty as stars out of the maximum.
func renderDifficulty(level, cw int) string {
	if level > filters.MaxDifficulty {
		level = filters.MaxDifficulty
	}
	stars := strings.Repeat("★", level) + strings.Repeat("☆", filters.MaxDifficulty-level)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Label.Render(i18n.T("home.difficulty")) + " " +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(stars) +
			theme.Hint.Render(fmt.Sprintf(" (%d/%d)", level, filters.MaxDifficulty)))
}

func (h *HomeScreen) viewLearn(cw int, compact bool) string {
	var current string
	if h.deps.Session != nil {
		current = filters.Summary(h.deps.Session.Snapshot().Filters)
	}
	head := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Label.Render(i18n.T("home.active_filters")) + " " + theme.Body.Render(current))

	labels, disabled := h.menu.Labels(), h.menu.DisabledSet()
	var menu string
	if compact {
		menu = renderArcadeMenuCompact(labels, h.menu.Selected, cw, disabled)
	} else {
		menu = renderArcadeMenu(labels, h.menu.Selected, cw, disabled)
	}
	return head + "\n\n" + components.Card(menu, cw-4)
}
