package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // ended/answered at >= From
	To    time.Time // ended/answered at <= To
}

// SessionEntry is one finished session in the journal.
type SessionEntry struct {
	Sequence  int64
	SessionID string
	Completed int
	Correct   int
	MaxStreak int
	Points    float64
	TimeSpent int
	StartedAt time.Time
	EndedAt   time.Time
}

// AnswerEntry is one submitted answer in the journal.
type AnswerEntry struct {
	Sequence   int64
	SessionID  string
	ExerciseID string
	Kind       string
	Category   string
	Score      float64
	Outcome    string
	AnsweredAt time.Time
}

// CategoryTotal aggregates journaled answers per exercise category.
type CategoryTotal struct {
	Category string
	Answered int
	Correct  int
	Points   float64
}

// SnapshotData is the client state carried between runs.
type SnapshotData struct {
	Version int `json:"version"`
	// LastFilters are the session filters in use when the app last exited.
	LastFilters *FiltersData `json:"lastFilters,omitempty"`
}

// FiltersData mirrors the session filter fields.
type FiltersData struct {
	Type       string `json:"type,omitempty"`
	Category   string `json:"category,omitempty"`
	Epoch      string `json:"epoch,omitempty"`
	Difficulty []int  `json:"difficulty,omitempty"`
}

// Snapshot represents a point-in-time capture of client state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages client state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
