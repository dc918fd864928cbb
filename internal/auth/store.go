package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/maturapolski/matura/internal/api"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrTokenExpired = errors.New("session expired, log in again")
)

// Credentials is the persisted login state.
type Credentials struct {
	User         api.User `json:"user"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken,omitempty"`
}

// Store keeps credentials in a JSON file readable only by the owner.
type Store struct {
	path string
	now  func() time.Time

	mu    sync.Mutex
	creds *Credentials
}

// DefaultPath is $XDG_CONFIG_HOME/matura/credentials.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "matura", "credentials.json"), nil
}

// NewStore creates a store backed by path. Call Init to load it.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the credential file location.
func (s *Store) Path() string { return s.path }

// Init loads credentials from disk. A missing file means logged out.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.creds = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}

	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse credentials %s: %w", s.path, err)
	}
	if c.Token == "" {
		s.creds = nil
		return nil
	}
	s.creds = &c
	return nil
}

// Set persists new credentials.
func (s *Store) Set(_ context.Context, c Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeLocked(&c); err != nil {
		return err
	}
	s.creds = &c
	return nil
}

// Current returns a copy of the loaded credentials.
func (s *Store) Current() (Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return Credentials{}, false
	}
	return *s.creds, true
}

// LoggedIn reports whether a usable token is held.
func (s *Store) LoggedIn() bool {
	_, err := s.Token(context.Background())
	return err == nil
}

// Token returns the bearer token. An expired token is still returned while a
// refresh token exists so the client can refresh on 401.
func (s *Store) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil || s.creds.Token == "" {
		return "", ErrNotLoggedIn
	}
	if expired(s.creds.Token, s.now()) && s.creds.RefreshToken == "" {
		return "", ErrTokenExpired
	}
	return s.creds.Token, nil
}

// RefreshToken returns the refresh token, empty when none is held.
func (s *Store) RefreshToken(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return "", nil
	}
	return s.creds.RefreshToken, nil
}

// UpdateToken replaces the access token after a refresh.
func (s *Store) UpdateToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ErrNotLoggedIn
	}
	next := *s.creds
	next.Token = token
	if err := s.writeLocked(&next); err != nil {
		return err
	}
	s.creds = &next
	return nil
}

// Clear forgets the credentials and removes the file.
func (s *Store) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

func (s *Store) writeLocked(c *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod credentials: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close credentials: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("install credentials: %w", err)
	}
	return nil
}

// expired reads the exp claim without verifying the signature. Tokens that
// are not JWTs or carry no exp never expire client-side.
func expired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
