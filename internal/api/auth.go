package api

import (
	"context"
	"net/http"
)

// User is the account returned by the auth endpoints.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Picture  string `json:"picture,omitempty"`
}

// AuthResponse is returned by login and email verification.
type AuthResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// MobileRecaptchaToken stands in for a captcha on non-browser clients.
const MobileRecaptchaToken = "MOBILE_DEV"

func (c *Client) anonPost(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body, anonymous: true}, out)
}

// Login exchanges email and password for tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.anonPost(ctx, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. The address must be verified before login.
func (c *Client) Register(ctx context.Context, email, username, password string) error {
	body := map[string]string{"email": email, "username": username, "password": password}
	return c.anonPost(ctx, "/api/auth/register", body, nil)
}

// VerifyEmail confirms an address with the emailed code and logs in.
func (c *Client) VerifyEmail(ctx context.Context, code string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.anonPost(ctx, "/api/auth/verify-email", map[string]string{"token": code}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendVerification emails a new verification code.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	return c.anonPost(ctx, "/api/auth/resend-verification", map[string]string{"email": email}, nil)
}

// RequestPasswordReset emails a reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email, "recaptchaToken": MobileRecaptchaToken}
	return c.anonPost(ctx, "/api/auth/request-password-reset", body, nil)
}
