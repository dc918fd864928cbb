package errtext

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/session"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unverified", &api.APIError{Status: 403, Code: api.CodeEmailNotVerified, Message: "nope"}, i18n.T("errors.email_not_verified")},
		{"bad credentials", &api.APIError{Status: 401, Code: api.CodeInvalidCredentials}, i18n.T("errors.invalid_credentials")},
		{"unauthorized", fmt.Errorf("fetch: %w", &api.APIError{Status: 401}), i18n.T("errors.auth_missing")},
		{"no token", session.ErrAuthMissing, i18n.T("errors.auth_missing")},
		{"busy", session.ErrBusy, i18n.T("errors.busy")},
		{"timeout", fmt.Errorf("submit: %w", context.DeadlineExceeded), i18n.T("errors.timeout")},
		{"server message", &api.APIError{Status: 400, Message: "Brak zadań"}, "Brak zadań"},
		{"rate limit", &api.APIError{Status: 429}, i18n.T("errors.rate_limit")},
		{"bare status", &api.APIError{Status: 502}, i18n.Td("errors.http", map[string]any{"Status": 502})},
		{"plain", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.err))
		})
	}
}

func TestFields(t *testing.T) {
	err := &auth.ErrInvalidForm{Fields: []auth.FieldError{
		{Field: "email", Tag: "required"},
		{Field: "email", Tag: "email"},
		{Field: "password", Tag: "min", Param: "8"},
	}}

	got := Fields(err)
	assert.Equal(t, i18n.T("validation.required"), got["email"])
	assert.Equal(t, i18n.Td("validation.min", map[string]any{"Param": "8"}), got["password"])
	assert.Equal(t, i18n.T("validation.required"), Of(err))

	assert.Nil(t, Fields(errors.New("other")))
}

func TestFieldFallsBackToMessage(t *testing.T) {
	assert.Equal(t, "custom", Field(auth.FieldError{Tag: "unknown", Message: "custom"}))
}
