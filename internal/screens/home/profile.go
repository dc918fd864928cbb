package home

import (
	"strings"

	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/ui/components"
	"github.com/maturapolski/matura/internal/ui/theme"
)

func (h *HomeScreen) viewProfile(cw int) string {
	u, _ := h.deps.User()

	row := func(label, value string) string {
		return theme.Label.Render(label+":") + " " + theme.Body.Render(value)
	}
	lines := []string{
		row(i18n.T("auth.username"), u.Username),
		row(i18n.T("auth.email"), u.Email),
		row(i18n.T("profile.version"), h.deps.Version),
	}
	if h.update != nil {
		status := i18n.T("profile.up_to_date")
		if h.update.UpdateAvailable {
			status = i18n.Td("home.update_available", map[string]any{"Version": h.update.LatestVersion})
		}
		lines = append(lines, theme.Hint.Render(status))
	}

	logout := components.Button{Label: i18n.T("profile.logout"), Danger: true}.Centered(cw - 8)

	return components.Card(strings.Join(lines, "\n")+"\n\n"+logout, cw-4)
}
