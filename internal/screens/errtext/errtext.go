// Package errtext turns validation and API errors into localized copy.
package errtext

import (
	"context"
	"errors"
	"net"

	"github.com/maturapolski/matura/internal/api"
	"github.com/maturapolski/matura/internal/auth"
	"github.com/maturapolski/matura/internal/i18n"
	"github.com/maturapolski/matura/internal/session"
)

// Field localizes one failed validation rule.
func Field(fe auth.FieldError) string {
	switch fe.Tag {
	case "required":
		return i18n.T("validation.required")
	case "email":
		return i18n.T("validation.email")
	case "min":
		return i18n.Td("validation.min", map[string]any{"Param": fe.Param})
	case "max":
		return i18n.Td("validation.max", map[string]any{"Param": fe.Param})
	case "len":
		return i18n.Td("validation.len", map[string]any{"Param": fe.Param})
	case "numeric":
		return i18n.T("validation.numeric")
	case "username":
		return i18n.T("validation.username")
	case "strongpassword":
		return i18n.T("validation.strongpassword")
	case "eqfield":
		return i18n.T("validation.eqfield")
	}
	return fe.Message
}

// Fields maps each invalid field to its first localized message.
func Fields(err error) map[string]string {
	var inv *auth.ErrInvalidForm
	if !errors.As(err, &inv) {
		return nil
	}
	out := make(map[string]string, len(inv.Fields))
	for _, fe := range inv.Fields {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = Field(fe)
		}
	}
	return out
}

// Of returns a one-line message for err, preferring the server's own text.
func Of(err error) string {
	if err == nil {
		return ""
	}

	apiErr, isAPI := api.AsAPIError(err)
	if isAPI {
		switch {
		case apiErr.EmailNotVerified():
			return i18n.T("errors.email_not_verified")
		case apiErr.InvalidCredentials():
			return i18n.T("errors.invalid_credentials")
		}
	}

	switch {
	case errors.Is(err, session.ErrAuthMissing),
		errors.Is(err, auth.ErrNotLoggedIn),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, api.ErrUnauthorized):
		return i18n.T("errors.auth_missing")
	case errors.Is(err, session.ErrBusy):
		return i18n.T("errors.busy")
	case errors.Is(err, context.DeadlineExceeded):
		return i18n.T("errors.timeout")
	}

	if isAPI {
		switch {
		case apiErr.Message != "":
			return apiErr.Message
		case apiErr.RateLimited():
			return i18n.T("errors.rate_limit")
		}
		return i18n.Td("errors.http", map[string]any{"Status": apiErr.Status})
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return i18n.T("errors.network")
	}

	var inv *auth.ErrInvalidForm
	if errors.As(err, &inv) && len(inv.Fields) > 0 {
		return Field(inv.Fields[0])
	}
	return err.Error()
}
