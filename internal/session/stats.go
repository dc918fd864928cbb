package session

import "github.com/maturapolski/matura/internal/exercise"

// SessionLimit is the number of submissions that completes a session.
const SessionLimit = 20

// Stats are the running counters of one session.
type Stats struct {
	Completed int     `json:"completed"`
	Correct   int     `json:"correct"`
	Streak    int     `json:"streak"`
	MaxStreak int     `json:"maxStreak"`
	Points    float64 `json:"points"`
	TimeSpent int     `json:"timeSpent"`
}

// Apply returns the stats after one submission scored score. Any positive
// score counts as correct.
func (s Stats) Apply(score float64) Stats {
	s.Completed++
	if score > 0 {
		s.Correct++
		s.Streak++
	} else {
		s.Streak = 0
	}
	s.MaxStreak = max(s.MaxStreak, s.Streak)
	s.Points += score
	return s
}

// Accuracy is the rounded share of correct submissions in percent.
func (s Stats) Accuracy() int {
	if s.Completed == 0 {
		return 0
	}
	return int(float64(s.Correct)/float64(s.Completed)*100 + 0.5)
}

// CompletedExercise is one ledger entry sent when the session closes.
type CompletedExercise struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Filters narrow the exercises the server hands out. Zero fields are unset.
type Filters struct {
	Type       exercise.Kind     `json:"type,omitempty"`
	Category   exercise.Category `json:"category,omitempty"`
	Epoch      string            `json:"epoch,omitempty"`
	Difficulty []int             `json:"difficulty,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f.Type == "" && f.Category == "" && f.Epoch == "" && len(f.Difficulty) == 0
}

// ActiveSession is a session the server still considers open.
type ActiveSession struct {
	ID                 string              `json:"id"`
	Completed          int                 `json:"completed"`
	Correct            int                 `json:"correct"`
	MaxStreak          int                 `json:"maxStreak"`
	Points             float64             `json:"points"`
	CompletedExercises []CompletedExercise `json:"completedExercises"`
}

// CloseRequest is the final report that closes a session.
type CloseRequest struct {
	SessionID          string              `json:"sessionId"`
	Stats              Stats               `json:"stats"`
	CompletedExercises []CompletedExercise `json:"completedExercises"`
}
