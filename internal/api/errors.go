package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned when a request is rejected with 401 and the
// credential could not be refreshed.
var ErrUnauthorized = errors.New("unauthorized")

// Service error codes the client reacts to.
const (
	CodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	CodeRateLimit          = "RATE_LIMIT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.Code != "":
		return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("api %d: %s", e.Status, e.Message)
	case e.Code != "":
		return fmt.Sprintf("api %d %s", e.Status, e.Code)
	default:
		return fmt.Sprintf("api %d %s", e.Status, http.StatusText(e.Status))
	}
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// EmailNotVerified reports whether the login was refused for an unverified address.
func (e *APIError) EmailNotVerified() bool { return e.Code == CodeEmailNotVerified }

// RateLimited reports whether the service throttled the request.
func (e *APIError) RateLimited() bool {
	return e.Code == CodeRateLimit || e.Status == http.StatusTooManyRequests
}

// InvalidCredentials reports a rejected email/password pair.
func (e *APIError) InvalidCredentials() bool { return e.Code == CodeInvalidCredentials }

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
