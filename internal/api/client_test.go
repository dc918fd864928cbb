package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/exercise"
	"github.com/maturapolski/matura/internal/session"
)

type memCreds struct {
	mu      sync.Mutex
	token   string
	refresh string
	cleared bool
}

func (m *memCreds) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memCreds) RefreshToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, nil
}

func (m *memCreds) UpdateToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memCreds) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.refresh, m.cleared = "", "", true
	return nil
}

func newTestClient(t *testing.T, h http.Handler, creds Credentials) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithCredentials(creds))
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var m map[string]any
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestBearerAndRequestID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "/api/learning/session/start", r.URL.Path)
		_, _ = w.Write([]byte(`{"sessionId":"s-42"}`))
	}), &memCreds{token: "tok"})

	id, err := c.StartSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s-42", id)
}

func TestNextExercise(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ex-1", r.URL.Query().Get("excludeId"))
		_, _ = w.Write([]byte(`{"id":"ex-2","type":"CLOSED_MULTIPLE","category":"LANGUAGE_USE","difficulty":3,"points":2,"question":"?","content":{"options":["a","b","c"]}}`))
	}), &memCreds{token: "tok"})

	ex, err := c.NextExercise(context.Background(), "ex-1")
	require.NoError(t, err)
	assert.Equal(t, "ex-2", ex.ID)
	assert.Equal(t, exercise.KindClosedMultiple, ex.Kind)
	assert.Len(t, ex.Options(), 3)
}

func TestNextExercise_NoExclude(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"id":"ex-1","type":"SHORT_ANSWER","difficulty":1,"points":1,"question":"?"}`))
	}), &memCreds{token: "tok"})

	_, err := c.NextExercise(context.Background(), "")
	require.NoError(t, err)
}

func TestSubmitAndRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/exercises/ex-7/submit", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, []any{float64(0), float64(2)}, body["answer"])
		_, _ = w.Write([]byte(`{"score":2,"feedback":{"explanation":"ok"}}`))
	})
	mux.HandleFunc("POST /api/learning/session/update-completed", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "s-1", body["sessionId"])
		assert.Equal(t, "ex-7", body["exerciseId"])
		assert.Equal(t, float64(2), body["score"])
	})
	c := newTestClient(t, mux, &memCreds{token: "tok"})

	res, err := c.SubmitAnswer(context.Background(), "ex-7", exercise.MultiChoiceAnswer{Indices: []int{0, 2}})
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Score)
	assert.Equal(t, "ok", res.Details().Explanation)

	require.NoError(t, c.RecordCompletion(context.Background(), "s-1", "ex-7", 2))
}

func TestCloseSession(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "s-1", body["sessionId"])
		assert.Equal(t, []any{}, body["completedExercises"])
		stats := body["stats"].(map[string]any)
		assert.Equal(t, float64(3), stats["completed"])
		assert.Contains(t, stats, "timeSpent")
	}), &memCreds{token: "tok"})

	err := c.CloseSession(context.Background(), session.CloseRequest{
		SessionID: "s-1",
		Stats:     session.Stats{Completed: 3, Correct: 1},
	})
	require.NoError(t, err)
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"EMAIL_NOT_VERIFIED","message":"Zweryfikuj email"}`))
	}), nil)

	_, err := c.Login(context.Background(), "a@b.pl", "secret")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.True(t, apiErr.EmailNotVerified())
	assert.Equal(t, "Zweryfikuj email", apiErr.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestRefreshOnUnauthorized(t *testing.T) {
	creds := &memCreds{token: "old", refresh: "r-1"}
	var statsCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/learning/stats", func(w http.ResponseWriter, r *http.Request) {
		statsCalls++
		if r.Header.Get("Authorization") != "Bearer new" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"streak":4,"correctRate":81.5}`))
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "r-1", decodeBody(t, r)["refreshToken"])
		_, _ = w.Write([]byte(`{"token":"new"}`))
	})
	c := newTestClient(t, mux, creds)

	st, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, st.Streak)
	assert.Equal(t, 2, statsCalls)
	assert.Equal(t, "new", creds.token)
}

func TestRefreshFailureClearsCredentials(t *testing.T) {
	creds := &memCreds{token: "old", refresh: "r-1"}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/learning/active-sessions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c := newTestClient(t, mux, creds)

	_, err := c.ActiveSessions(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, creds.cleared)
}

func TestRetriesOnlyOnce(t *testing.T) {
	creds := &memCreds{token: "old", refresh: "r-1"}
	var calls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/learning/difficulty-progress", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"new"}`))
	})
	c := newTestClient(t, mux, creds)

	_, err := c.DifficultyProgress(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 2, calls)
}

func TestRequestPasswordReset(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "a@b.pl", body["email"])
		assert.Equal(t, MobileRecaptchaToken, body["recaptchaToken"])
	}), nil)

	require.NoError(t, c.RequestPasswordReset(context.Background(), "a@b.pl"))
}

func TestWithTimeoutLeavesSharedClient(t *testing.T) {
	before := http.DefaultClient.Timeout
	c := New("http://example.invalid", WithHTTPClient(http.DefaultClient), WithTimeout(time.Second))

	assert.Equal(t, before, http.DefaultClient.Timeout)
	assert.Equal(t, time.Second, c.httpClient.Timeout)
	assert.NotSame(t, http.DefaultClient, c.httpClient)
}
