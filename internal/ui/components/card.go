package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked cards so
// they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// TitledCard is a Card with a bold heading line.
func TitledCard(title, content string, cw int, accent lipgloss.Style) string {
	return Card(accent.Render(title)+"\n"+content, cw)
}

// StatTile renders a small labelled value used in stat grids.
func StatTile(label, value string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(value) + "\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(label),
		)
}

// StatRow lays tiles side by side, splitting cw evenly.
func StatRow(cw int, pairs ...[2]string) string {
	if len(pairs) == 0 {
		return ""
	}
	w := cw/len(pairs) - 2
	if w < 8 {
		w = 8
	}
	tiles := make([]string, 0, len(pairs))
	for _, p := range pairs {
		tiles = append(tiles, StatTile(p[0], p[1], w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// TabBar renders tab labels with the active one highlighted.
func TabBar(labels []string, active int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		if i == active {
			parts = append(parts, theme.TabActive.Render(l))
		} else {
			parts = append(parts, theme.Tab.Render(l))
		}
	}
	return strings.Join(parts, " ")
}

// BulletList renders items one per line with a leading marker.
func BulletList(items []string, marker string, style lipgloss.Style, width int) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(style.Render(marker + " "))
		b.WriteString(lipgloss.NewStyle().Width(width - 3).Render(it))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormCard centers a titled form with optional error and notice lines.
func FormCard(title, subtitle, body, errMsg, notice string, width, height int) string {
	cw := ContentWidth(width)
	if cw > 64 {
		cw = 64
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	if subtitle != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(subtitle))
	}
	b.WriteString("\n\n")
	b.WriteString(body)
	if errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Width(cw - 2).Render(errMsg))
	}
	if notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Width(cw - 2).Render(notice))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, Card(b.String(), cw))
}
