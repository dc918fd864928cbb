package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maturapolski/matura/internal/api"
)

// Client is the part of the API client the auth flows use.
type Client interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, email, username, password string) error
	VerifyEmail(ctx context.Context, code string) (*api.AuthResponse, error)
	ResendVerification(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
}

// Service validates auth forms, calls the API and persists the result.
type Service struct {
	client Client
	store  *Store
	log    zerolog.Logger
}

// NewService creates an auth service.
func NewService(client Client, store *Store, log zerolog.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// Store returns the credential store.
func (s *Service) Store() *Store { return s.store }

// Login signs in and stores the returned tokens. An *api.APIError with
// EmailNotVerified set means the caller should route to verification.
func (s *Service) Login(ctx context.Context, form LoginForm) (*api.User, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := Validate(form); err != nil {
		return nil, err
	}

	resp, err := s.client.Login(ctx, form.Email, form.Password)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}
	s.log.Info().Str("user", resp.User.Username).Msg("logged in")
	return &resp.User, nil
}

// Register creates an account; the user must verify the email next.
func (s *Service) Register(ctx context.Context, form RegisterForm) error {
	form.Email = strings.TrimSpace(form.Email)
	form.Username = strings.TrimSpace(form.Username)
	if err := Validate(form); err != nil {
		return err
	}
	if err := s.client.Register(ctx, form.Email, form.Username, form.Password); err != nil {
		return err
	}
	s.log.Info().Str("email", form.Email).Msg("registered")
	return nil
}

// Verify confirms the email with a 6-digit code and logs in.
func (s *Service) Verify(ctx context.Context, code string) (*api.User, error) {
	form := VerifyForm{Code: strings.TrimSpace(code)}
	if err := Validate(form); err != nil {
		return nil, err
	}
	resp, err := s.client.VerifyEmail(ctx, form.Code)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ResendVerification asks for a new code.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	form := EmailForm{Email: strings.TrimSpace(email)}
	if err := Validate(form); err != nil {
		return err
	}
	return s.client.ResendVerification(ctx, form.Email)
}

// RequestPasswordReset asks for a reset email. Callers show the same
// confirmation whether or not the address exists.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	form := EmailForm{Email: strings.TrimSpace(email)}
	if err := Validate(form); err != nil {
		return err
	}
	if err := s.client.RequestPasswordReset(ctx, form.Email); err != nil {
		s.log.Warn().Err(err).Msg("password reset request")
		return err
	}
	return nil
}

// Logout forgets the stored credentials.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *Service) persist(ctx context.Context, resp *api.AuthResponse) error {
	if resp.Token == "" {
		return fmt.Errorf("auth response carried no token")
	}
	return s.store.Set(ctx, Credentials{
		User:         resp.User,
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
	})
}
