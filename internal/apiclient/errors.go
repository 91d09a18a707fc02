package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx reply from the upstream assessment API. Message holds
// the server's own `error` field when present, so it can be surfaced to the
// user verbatim; otherwise a generic fallback describing the status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream API returned status %d", e.StatusCode)
}

// IsNotFound reports whether err is an upstream rejection for a token or
// result id that does not resolve (invalid, expired or already consumed).
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusGone
	}
	return false
}
