package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIdempotencyConflict means a key was reused for a different action or product.
	ErrIdempotencyConflict = errors.New("idempotency key already used for another request")
	ErrSubmissionInFlight  = errors.New("a submission with this idempotency key is still in progress")
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists every failing field of a form.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// RemoteError carries a user-facing message for a failed product API call.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
