package githubapi

import (
	"errors"
	"fmt"
)

// ErrExhaustedRetries is returned after every attempt for a request has
// failed. Callers treat it as "no data for this stage", not a hard abort.
var ErrExhaustedRetries = errors.New("all retry attempts failed")

// AuthorizationError represents a terminal 401/403 response. Retrying
// cannot help: the credential is invalid or insufficient.
type AuthorizationError struct {
	URL        string
	StatusCode int
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization rejected for %s: HTTP status %d", e.URL, e.StatusCode)
}

// RequestError represents a transport- or protocol-level failure for one
// attempt.
type RequestError struct {
	URL     string
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("request error for %s: %s", e.URL, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}
