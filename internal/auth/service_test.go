package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maturapolski/matura/internal/api"
)

type fakeClient struct {
	loginErr error
	calls    []string
	lastCode string
}

func (f *fakeClient) Login(_ context.Context, email, _ string) (*api.AuthResponse, error) {
	f.calls = append(f.calls, "login")
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &api.AuthResponse{User: api.User{Email: email, Username: "ola"}, Token: "tok", RefreshToken: "ref"}, nil
}

func (f *fakeClient) Register(context.Context, string, string, string) error {
	f.calls = append(f.calls, "register")
	return nil
}

func (f *fakeClient) VerifyEmail(_ context.Context, code string) (*api.AuthResponse, error) {
	f.calls = append(f.calls, "verify")
	f.lastCode = code
	return &api.AuthResponse{User: api.User{Username: "ola"}, Token: "vtok"}, nil
}

func (f *fakeClient) ResendVerification(context.Context, string) error {
	f.calls = append(f.calls, "resend")
	return nil
}

func (f *fakeClient) RequestPasswordReset(context.Context, string) error {
	f.calls = append(f.calls, "reset")
	return nil
}

func newTestService(t *testing.T, c *fakeClient) *Service {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, store.Init())
	return NewService(c, store, zerolog.Nop())
}

func TestServiceLogin(t *testing.T) {
	c := &fakeClient{}
	svc := newTestService(t, c)

	user, err := svc.Login(context.Background(), LoginForm{Email: " ola@example.pl ", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ola@example.pl", user.Email)

	creds, ok := svc.Store().Current()
	require.True(t, ok)
	assert.Equal(t, "tok", creds.Token)
	assert.Equal(t, "ref", creds.RefreshToken)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.Store().LoggedIn())
}

func TestServiceLogin_InvalidFormSkipsAPI(t *testing.T) {
	c := &fakeClient{}
	svc := newTestService(t, c)

	_, err := svc.Login(context.Background(), LoginForm{Email: "bad"})
	var inv *ErrInvalidForm
	assert.ErrorAs(t, err, &inv)
	assert.Empty(t, c.calls)
}

func TestServiceLogin_Unverified(t *testing.T) {
	c := &fakeClient{loginErr: &api.APIError{Status: 403, Code: api.CodeEmailNotVerified}}
	svc := newTestService(t, c)

	_, err := svc.Login(context.Background(), LoginForm{Email: "a@b.pl", Password: "x"})
	apiErr, ok := api.AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.EmailNotVerified())
	assert.False(t, svc.Store().LoggedIn())
}

func TestServiceVerify(t *testing.T) {
	c := &fakeClient{}
	svc := newTestService(t, c)

	_, err := svc.Verify(context.Background(), "12")
	assert.Error(t, err)

	user, err := svc.Verify(context.Background(), " 654321 ")
	require.NoError(t, err)
	assert.Equal(t, "ola", user.Username)
	assert.Equal(t, "654321", c.lastCode)
	assert.True(t, svc.Store().LoggedIn())
}

func TestServiceOtherFlows(t *testing.T) {
	c := &fakeClient{}
	svc := newTestService(t, c)

	require.NoError(t, svc.Register(context.Background(), RegisterForm{
		Username: "ola", Email: "a@b.pl", Password: "Matura2026!", ConfirmPassword: "Matura2026!",
	}))
	require.NoError(t, svc.ResendVerification(context.Background(), "a@b.pl"))
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "a@b.pl"))
	assert.Equal(t, []string{"register", "resend", "reset"}, c.calls)
}
