package session

// Grade is the band a finished session falls into by accuracy.
type Grade int

const (
	GradeKeepGoing Grade = iota
	GradeGood
	GradeGreat
	GradeExcellent
)

// HotStreak is the streak length the UI highlights.
const HotStreak = 5

// Summary holds the data displayed when a session completes.
type Summary struct {
	Stats    Stats
	Accuracy int
	Grade    Grade
	// HotStreak is set when the best streak reached HotStreak.
	HotStreak bool
}

// BuildSummary derives the completion summary from final stats.
func BuildSummary(s Stats) Summary {
	acc := s.Accuracy()
	return Summary{
		Stats:     s,
		Accuracy:  acc,
		Grade:     GradeFor(acc),
		HotStreak: s.MaxStreak >= HotStreak,
	}
}

// GradeFor maps an accuracy percentage to a grade band.
func GradeFor(accuracy int) Grade {
	switch {
	case accuracy >= 90:
		return GradeExcellent
	case accuracy >= 75:
		return GradeGreat
	case accuracy >= 60:
		return GradeGood
	default:
		return GradeKeepGoing
	}
}
