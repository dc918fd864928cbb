package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/feedback"
	"github.com/maturapolski/matura/internal/session"
)

var _ session.RemoteAPI = (*Client)(nil)

// ActiveSessions lists sessions the server still holds open for the user.
func (c *Client) ActiveSessions(ctx context.Context) ([]session.ActiveSession, error) {
	var out []session.ActiveSession
	if err := c.get(ctx, "/api/learning/active-sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CloseSession sends the final stats of a session.
func (c *Client) CloseSession(ctx context.Context, req session.CloseRequest) error {
	if req.CompletedExercises == nil {
		req.CompletedExercises = []session.CompletedExercise{}
	}
	return c.post(ctx, "/api/learning/session/complete", req, nil)
}

// StartSession opens a new session and returns its id.
func (c *Client) StartSession(ctx context.Context) (string, error) {
	var out struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.post(ctx, "/api/learning/session/start", nil, &out); err != nil {
		return "", err
	}
	if out.SessionID == "" {
		return "", fmt.Errorf("start session: empty session id")
	}
	return out.SessionID, nil
}

// PushFilters stores the filters for subsequent next-exercise calls.
func (c *Client) PushFilters(ctx context.Context, f session.Filters) error {
	return c.post(ctx, "/api/learning/session/filters", f, nil)
}

// NextExercise fetches the next exercise, never returning excludeID when set.
func (c *Client) NextExercise(ctx context.Context, excludeID string) (*exercise.Exercise, error) {
	var q url.Values
	if excludeID != "" {
		q = url.Values{"excludeId": {excludeID}}
	}
	var raw json.RawMessage
	if err := c.get(ctx, "/api/learning/next", q, &raw); err != nil {
		return nil, err
	}
	return exercise.Decode(raw)
}

// SubmitAnswer sends an answer for grading.
func (c *Client) SubmitAnswer(ctx context.Context, exerciseID string, answer exercise.Answer) (*feedback.Result, error) {
	body := struct {
		Answer exercise.Answer `json:"answer"`
	}{answer}

	var out feedback.Result
	path := "/api/exercises/" + url.PathEscape(exerciseID) + "/submit"
	if err := c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordCompletion adds one graded exercise to the session on the server.
func (c *Client) RecordCompletion(ctx context.Context, sessionID, exerciseID string, score float64) error {
	body := struct {
		SessionID  string  `json:"sessionId"`
		ExerciseID string  `json:"exerciseId"`
		Score      float64 `json:"score"`
	}{sessionID, exerciseID, score}
	return c.post(ctx, "/api/learning/session/update-completed", body, nil)
}

// LearningStats are the aggregate counters shown on the dashboard.
type LearningStats struct {
	Streak         int     `json:"streak"`
	TodayExercises int     `json:"todayExercises"`
	TotalExercises int     `json:"totalExercises"`
	TotalSessions  int     `json:"totalSessions"`
	CorrectRate    float64 `json:"correctRate"`
	AvgPoints      float64 `json:"avgPoints"`
}

// Stats fetches the user's learning statistics.
func (c *Client) Stats(ctx context.Context) (*LearningStats, error) {
	var out LearningStats
	if err := c.get(ctx, "/api/learning/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DifficultyProgress is the highest difficulty unlocked for the user.
type DifficultyProgress struct {
	CurrentMaxDifficulty int `json:"currentMaxDifficulty"`
}

// DifficultyProgress fetches the unlocked difficulty level.
func (c *Client) DifficultyProgress(ctx context.Context) (*DifficultyProgress, error) {
	var out DifficultyProgress
	if err := c.get(ctx, "/api/learning/difficulty-progress", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
