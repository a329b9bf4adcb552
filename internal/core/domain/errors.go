package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrUnauthorizedRole = errors.New("unauthorized role")
var ErrBackendUnreachable = errors.New("backend unreachable")
var ErrBackendRejected = errors.New("backend rejected request")
var ErrEmployeeNotFound = errors.New("employee not found")
var ErrIncompleteProfile = errors.New("incomplete employee payload")
var ErrSessionNotFound = errors.New("session not found")
var ErrAssistantUnavailable = errors.New("assistant unavailable")

// BackendError is a non-2xx backend response. Detail carries the response
// body text verbatim when the backend sent one, so validation messages are
// never swallowed on the way to the user.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
}

func (e *BackendError) Unwrap() error { return ErrBackendRejected }
