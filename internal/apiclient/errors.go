package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrConstructionForbidden is returned by every operation on a Client
	// that was not handed out by a Provider.
	ErrConstructionForbidden = errors.New("apiclient: client must be obtained from a Provider")
	ErrNotFound              = errors.New("apiclient: resource not found")
)

// APIError is a non-2xx answer from the product API.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("product api: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("product api: %d %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
