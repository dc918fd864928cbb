package home

import (
	"charm.land/lipgloss/v2"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default blue
	MascotCelebrating                      // Amber, star eyes: long streak
	MascotAlert                            // Yellow, exclamation: nothing done today
)

const mascotIdle = ` ,___,
 (O,O)
 /)_)
  ""`

const mascotCelebrating = ` ,___,
 (*,*)  ✦
 /)_)\
  ""`

const mascotAlert = ` ,___,
 (O,O) !
 /)_)
  ""`

// mascotFor picks the variant for the dashboard counters.
func mascotFor(st *api.LearningStats) MascotVariant {
	switch {
	case st == nil:
		return MascotIdle
	case st.Streak >= session.HotStreak:
		return MascotCelebrating
	case st.TodayExercises == 0:
		return MascotAlert
	}
	return MascotIdle
}

// RenderMascot returns the owl art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotAlert:
		art = mascotAlert
		fg = theme.Warning
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
