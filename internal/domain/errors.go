package domain

import (
	"errors"
	"net/http"
)

// StatusError defines errors that carry an HTTP status code, either because the
// backend responded with one or because the client maps a local failure onto one.
type StatusError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a requested document, summary or conversation
	// could not be located.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input caught before a request is sent.
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates the session is missing, expired, or was
	// rejected by the backend after the one-shot refresh attempt. Expired is
	// set when the refresh itself failed and the local session was dropped.
	UnauthorizedError struct {
		Message string
		Expired bool
	}

	// TransientError indicates a network or server failure that the user may
	// retry; the client never retries these automatically.
	TransientError struct {
		Message string
		Status  int
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *TransientError) Error() string    { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

func (e *TransientError) StatusCode() int {
	if e.Status == 0 {
		return http.StatusServiceUnavailable
	}
	return e.Status
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")
)

// Is implementations let errors.Is() match typed errors against the sentinels.
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *UnauthorizedError) Is(target error) bool {
	if target == ErrSessionExpired {
		return e.Expired
	}
	return target == ErrUnauthorized
}
