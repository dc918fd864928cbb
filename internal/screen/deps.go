package screen

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/selfupdate"
	"github.com/maturapolski/matura/internal/session"
	"github.com/maturapolski/matura/internal/store"
)

// StatsSource serves the dashboard counters.
type StatsSource interface {
	Stats(ctx context.Context) (*api.LearningStats, error)
	DifficultyProgress(ctx context.Context) (*api.DifficultyProgress, error)
}

// History reads the local session journal.
type History interface {
	RecentSessions(ctx context.Context, opts store.QueryOpts) ([]store.SessionEntry, error)
	SessionAnswers(ctx context.Context, sessionID string) ([]store.AnswerEntry, error)
	CategoryTotals(ctx context.Context, opts store.QueryOpts) ([]store.CategoryTotal, error)
}

// FilterStore persists the last used session filters.
type FilterStore interface {
	SaveFilters(ctx context.Context, f session.Filters) error
	LastFilters(ctx context.Context) (session.Filters, error)
}

// UpdateChecker looks up the latest published release.
type UpdateChecker interface {
	Check(ctx context.Context, input *selfupdate.CheckInput) (*selfupdate.CheckResult, error)
}

// Deps are the services screens share. Nil History, Filters or Updates
// disable the features that need them.
type Deps struct {
	Auth    *auth.Service
	Stats   StatsSource
	Session *session.Controller
	History History
	Filters FilterStore
	Updates UpdateChecker
	Log     zerolog.Logger
	Now     func() time.Time
	Version string
	Screens Factory
}

// Clock returns d.Now or time.Now.
func (d *Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// User returns the signed-in user, if any.
func (d *Deps) User() (api.User, bool) {
	if d.Auth == nil {
		return api.User{}, false
	}
	c, ok := d.Auth.Store().Current()
	if !ok {
		return api.User{}, false
	}
	return c.User, true
}

// Factory builds screens without the caller importing every screen package.
// It is filled in by the app package.
type Factory struct {
	Home   func() Screen
	Login  func() Screen
	Verify func(email string) Screen
	Learn  func() Screen
}
