package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsApply_StreakMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var s Stats
	for i := 0; i < SessionLimit; i++ {
		score := float64(rng.Intn(3)) * 5
		before := s
		s = s.Apply(score)

		if score > 0 {
			assert.Equal(t, before.Streak+1, s.Streak)
			assert.Equal(t, before.Correct+1, s.Correct)
		} else {
			assert.Zero(t, s.Streak)
			assert.Equal(t, before.Correct, s.Correct)
		}
		assert.Equal(t, max(before.MaxStreak, s.Streak), s.MaxStreak)
		assert.GreaterOrEqual(t, s.MaxStreak, before.MaxStreak)
		assert.LessOrEqual(t, s.Correct, s.Completed)
		assert.Equal(t, before.Points+score, s.Points)
	}
}

func TestAccuracyAndGrade(t *testing.T) {
	tests := []struct {
		stats Stats
		acc   int
		grade Grade
	}{
		{Stats{}, 0, GradeKeepGoing},
		{Stats{Completed: 20, Correct: 18}, 90, GradeExcellent},
		{Stats{Completed: 3, Correct: 2}, 67, GradeGood},
		{Stats{Completed: 4, Correct: 3}, 75, GradeGreat},
		{Stats{Completed: 10, Correct: 5}, 50, GradeKeepGoing},
	}
	for _, tt := range tests {
		sum := BuildSummary(tt.stats)
		assert.Equal(t, tt.acc, sum.Accuracy)
		assert.Equal(t, tt.grade, sum.Grade)
	}

	assert.True(t, BuildSummary(Stats{MaxStreak: 5}).HotStreak)
	assert.False(t, BuildSummary(Stats{MaxStreak: 4}).HotStreak)
}

func TestFiltersIsEmpty(t *testing.T) {
	assert.True(t, Filters{}.IsEmpty())
	assert.True(t, Filters{Difficulty: []int{}}.IsEmpty())
	assert.False(t, Filters{Difficulty: []int{1}}.IsEmpty())
	assert.False(t, Filters{Epoch: "BAROQUE"}.IsEmpty())
}
