package session

import (
	"errors"
	"fmt"
)

var (
	ErrAuthMissing      = errors.New("no usable credential, log in again")
	ErrBusy             = errors.New("another session request is in flight")
	ErrNoSession        = errors.New("no active session")
	ErrStale            = errors.New("session was reset while the request was in flight")
	ErrAnswerIncomplete = errors.New("answer is incomplete")
	ErrAnswerLocked     = errors.New("answer is read-only while feedback is shown")
)

// RemoteError wraps a failed call to the learning API with the name of the
// operation that issued it.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func remote(op string, err error) error {
	return &RemoteError{Op: op, Err: err}
}
