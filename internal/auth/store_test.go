package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/api"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	s := NewStore(path)
	require.NoError(t, s.Init())

	_, err := s.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	creds := Credentials{User: api.User{ID: "u1", Username: "ania"}, Token: "opaque", RefreshToken: "r"}
	require.NoError(t, s.Set(context.Background(), creds))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Init())
	got, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, creds, got)

	tok, err := reloaded.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque", tok)
	assert.True(t, reloaded.LoggedIn())
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewStore(path)
	require.NoError(t, s.Set(context.Background(), Credentials{Token: "t"}))

	require.NoError(t, s.Clear(context.Background()))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.False(t, s.LoggedIn())

	// Clearing twice is fine.
	require.NoError(t, s.Clear(context.Background()))
}

func TestStore_ExpiredToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expiredTok := signedToken(t, now.Add(-time.Minute))

	s := NewStore(filepath.Join(t.TempDir(), "c.json"))
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(context.Background(), Credentials{Token: expiredTok}))
	_, err := s.Token(context.Background())
	assert.ErrorIs(t, err, ErrTokenExpired)

	// With a refresh token the stale token is handed out for a 401 refresh.
	require.NoError(t, s.Set(context.Background(), Credentials{Token: expiredTok, RefreshToken: "r"}))
	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expiredTok, tok)

	fresh := signedToken(t, now.Add(time.Hour))
	require.NoError(t, s.UpdateToken(context.Background(), fresh))
	got, _ := s.Current()
	assert.Equal(t, fresh, got.Token)
	assert.Equal(t, "r", got.RefreshToken)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	assert.False(t, expired("not-a-jwt", now))
	assert.False(t, expired(signedToken(t, now.Add(time.Hour)), now))
	assert.True(t, expired(signedToken(t, now.Add(-time.Hour)), now))
}

func TestStore_InitCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o600))
	assert.Error(t, NewStore(path).Init())
}
