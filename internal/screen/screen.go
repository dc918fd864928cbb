package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/maturapolski/matura/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler is implemented by screens that handle Esc themselves, for
// example to confirm before leaving. The app pops the screen otherwise.
type BackHandler interface {
	HandlesBack() bool
}

// Resumer is implemented by screens that reload when they become active
// again after the screen above them was popped.
type Resumer interface {
	Resume() tea.Cmd
}

// StreakReporter is implemented by messages that carry the learner's day
// streak, which the app shows in the header.
type StreakReporter interface {
	StreakDays() (int, bool)
}
